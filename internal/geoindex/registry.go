package geoindex

import "sort"

// Registry holds every index the service queries: one zone index per
// sector plus the freguesia index. It is populated once at startup and
// passed by reference into the enrichment use case; nothing mutates it
// afterwards, so reads need no synchronization. Rebuilding means
// restarting the process.
type Registry struct {
	Zones      map[string]*Index
	Freguesias *Index
}

// NewRegistry wires the built indexes together. A nil zones map is
// normalized to empty so lookups stay nil-safe.
func NewRegistry(zones map[string]*Index, freguesias *Index) *Registry {
	if zones == nil {
		zones = make(map[string]*Index)
	}
	return &Registry{
		Zones:      zones,
		Freguesias: freguesias,
	}
}

// Zone returns the zone index for a sector, if one was built.
func (r *Registry) Zone(sector string) (*Index, bool) {
	idx, ok := r.Zones[sector]
	return idx, ok
}

// Sectors lists the sectors with a built zone index, sorted for stable
// presentation in health output.
func (r *Registry) Sectors() []string {
	sectors := make([]string, 0, len(r.Zones))
	for sector := range r.Zones {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)
	return sectors
}
