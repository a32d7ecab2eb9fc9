package geoindex_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zone-enrichment/internal/geoindex"
)

func ring(points ...orb.Point) orb.Polygon {
	r := make(orb.Ring, 0, len(points)+1)
	r = append(r, points...)
	if !r.Closed() {
		r = append(r, r[0])
	}
	return orb.Polygon{r}
}

func TestIndexLookup_Triangle(t *testing.T) {
	triangle := ring(orb.Point{0, 0}, orb.Point{2, 0}, orb.Point{1, 2})
	idx := geoindex.New([]orb.Polygon{triangle}, []string{"Retail - A"})

	tests := []struct {
		name  string
		lat   float64
		lon   float64
		label string
		ok    bool
	}{
		{
			name:  "interior point",
			lat:   1,
			lon:   1,
			label: "Retail - A",
			ok:    true,
		},
		{
			name:  "point on edge resolves to the polygon",
			lat:   0,
			lon:   1,
			label: "Retail - A",
			ok:    true,
		},
		{
			name:  "point on vertex resolves to the polygon",
			lat:   0,
			lon:   2,
			label: "Retail - A",
			ok:    true,
		},
		{
			name: "outside point has no match",
			lat:  5,
			lon:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := idx.Lookup(tt.lat, tt.lon)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestIndexLookup_TwoPolygons(t *testing.T) {
	north := ring(orb.Point{0, 10}, orb.Point{10, 10}, orb.Point{10, 20}, orb.Point{0, 20})
	south := ring(orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{10, 5}, orb.Point{0, 5})

	idx := geoindex.New(
		[]orb.Polygon{north, south},
		[]string{"Office - North", "Office - South"},
	)

	label, ok := idx.Lookup(2, 5)
	require.True(t, ok)
	assert.Equal(t, "Office - South", label)

	label, ok = idx.Lookup(15, 5)
	require.True(t, ok)
	assert.Equal(t, "Office - North", label)
}

func TestIndexLookup_Empty(t *testing.T) {
	idx := geoindex.New(nil, nil)

	assert.Equal(t, 0, idx.Len())
	label, ok := idx.Lookup(38.7, -9.1)
	assert.False(t, ok)
	assert.Empty(t, label)
}

func TestIndexLookup_Deterministic(t *testing.T) {
	// Two overlapping squares in one index: the pick is arbitrary but
	// must be stable across repeated lookups of the same built index.
	a := ring(orb.Point{0, 0}, orb.Point{4, 0}, orb.Point{4, 4}, orb.Point{0, 4})
	b := ring(orb.Point{2, 2}, orb.Point{6, 2}, orb.Point{6, 6}, orb.Point{2, 6})

	idx := geoindex.New([]orb.Polygon{a, b}, []string{"A", "B"})

	first, ok := idx.Lookup(3, 3)
	require.True(t, ok)
	for i := 0; i < 50; i++ {
		label, ok := idx.Lookup(3, 3)
		require.True(t, ok)
		require.Equal(t, first, label)
	}
}

func TestIndexLookup_SharedLabel(t *testing.T) {
	// Multi-part geometry for one named area: both parts carry the same
	// label.
	west := ring(orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{0, 1})
	east := ring(orb.Point{5, 0}, orb.Point{6, 0}, orb.Point{6, 1}, orb.Point{5, 1})

	idx := geoindex.New([]orb.Polygon{west, east}, []string{"Retail - Split", "Retail - Split"})

	for _, lon := range []float64{0.5, 5.5} {
		label, ok := idx.Lookup(0.5, lon)
		require.True(t, ok)
		assert.Equal(t, "Retail - Split", label)
	}
}

func TestNew_MismatchedLengthsPanics(t *testing.T) {
	square := ring(orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{0, 1})
	assert.Panics(t, func() {
		geoindex.New([]orb.Polygon{square}, []string{"a", "b"})
	})
}

func TestIndexLookup_BulkLoadedLargeSet(t *testing.T) {
	// Enough polygons to force the bulk-loading path rather than plain
	// inserts: a grid of unit squares, each labeled by its cell.
	var polygons []orb.Polygon
	var labels []string
	for x := 0; x < 12; x++ {
		for y := 0; y < 12; y++ {
			fx, fy := float64(x*2), float64(y*2)
			polygons = append(polygons, ring(
				orb.Point{fx, fy},
				orb.Point{fx + 1, fy},
				orb.Point{fx + 1, fy + 1},
				orb.Point{fx, fy + 1},
			))
			labels = append(labels, cellLabel(x, y))
		}
	}

	idx := geoindex.New(polygons, labels)
	require.Equal(t, 144, idx.Len())

	label, ok := idx.Lookup(6.5, 4.5) // lat 6.5 -> y cell 3, lon 4.5 -> x cell 2
	require.True(t, ok)
	assert.Equal(t, cellLabel(2, 3), label)

	_, ok = idx.Lookup(1.5, 1.5) // gap between cells
	assert.False(t, ok)
}

func cellLabel(x, y int) string {
	return string(rune('a'+x)) + "/" + string(rune('a'+y))
}

func TestRegistry(t *testing.T) {
	square := ring(orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{0, 1})
	retail := geoindex.New([]orb.Polygon{square}, []string{"Retail - A"})
	freg := geoindex.New([]orb.Polygon{square}, []string{"Alvalade"})

	reg := geoindex.NewRegistry(map[string]*geoindex.Index{"Retail": retail}, freg)

	idx, ok := reg.Zone("Retail")
	require.True(t, ok)
	assert.Same(t, retail, idx)

	_, ok = reg.Zone("Office")
	assert.False(t, ok)

	assert.Equal(t, []string{"Retail"}, reg.Sectors())
}

func TestRegistry_NilZones(t *testing.T) {
	reg := geoindex.NewRegistry(nil, geoindex.New(nil, nil))

	_, ok := reg.Zone("Retail")
	assert.False(t, ok)
	assert.Empty(t, reg.Sectors())
}
