// Package geoindex implements the point-location engine: bulk-loaded
// R-tree indexes over labeled polygons with boundary-inclusive
// containment lookups.
package geoindex

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	dimensions  = 2
	minChildren = 25
	maxChildren = 50

	// Extent of the degenerate rectangle used for point queries and as
	// a floor for flat bounding boxes; rtreego rejects zero lengths.
	minExtent = 1e-9
)

// entry ties a tree node to a position in the parallel polygon/label
// slices. The position is the sole contract between the R-tree and the
// resolver; labels are never resolved by object identity.
type entry struct {
	pos  int
	rect *rtreego.Rect
}

func (e *entry) Bounds() *rtreego.Rect {
	return e.rect
}

// Index is an immutable spatial index over a fixed set of labeled
// polygons. Once built it has no writers, so any number of goroutines
// may call Lookup concurrently without locking.
type Index struct {
	tree     *rtreego.Rtree
	polygons []orb.Polygon
	labels   []string
}

// New bulk-loads an Index over the given polygons. Positions align:
// labels[i] belongs to polygons[i]. A length mismatch is a programming
// error and panics. An empty input yields a valid index that matches
// nothing.
func New(polygons []orb.Polygon, labels []string) *Index {
	if len(polygons) != len(labels) {
		panic(fmt.Sprintf("geoindex: %d polygons with %d labels", len(polygons), len(labels)))
	}

	entries := make([]rtreego.Spatial, 0, len(polygons))
	for i, poly := range polygons {
		entries = append(entries, &entry{pos: i, rect: boundRect(poly.Bound())})
	}

	return &Index{
		tree:     rtreego.NewTree(dimensions, minChildren, maxChildren, entries...),
		polygons: polygons,
		labels:   labels,
	}
}

// Lookup resolves a point to the label of the first candidate polygon
// that covers it. Coverage is boundary-inclusive: a point exactly on an
// edge or vertex counts as contained. Candidates come pre-filtered by
// bounding box, in the tree's iteration order, which is stable for a
// fixed build; the first hit wins and scanning stops. ok is false when
// no polygon covers the point.
func (idx *Index) Lookup(lat, lon float64) (label string, ok bool) {
	point := orb.Point{lon, lat}
	query := rtreego.Point{lon, lat}.ToRect(minExtent)

	for _, candidate := range idx.tree.SearchIntersect(query) {
		e := candidate.(*entry)
		if planar.PolygonContains(idx.polygons[e.pos], point) {
			return idx.labels[e.pos], true
		}
	}
	return "", false
}

// Len reports the number of indexed polygons.
func (idx *Index) Len() int {
	return len(idx.polygons)
}

// boundRect converts an orb bounding box to an rtreego rectangle,
// padding flat extents up to minExtent so degenerate boxes stay legal.
func boundRect(b orb.Bound) *rtreego.Rect {
	lengths := []float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}
	for i := range lengths {
		if lengths[i] < minExtent {
			lengths[i] = minExtent
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, lengths)
	if err != nil {
		// Unreachable with positive lengths.
		panic(err)
	}
	return rect
}
