// Package kml extracts polygon geometry and metadata from KML documents
// and builds the spatial indexes the service queries. Documents are
// decoded placemark by placemark so very large files never need to be
// resident in memory at once.
package kml

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Placemark is one KML feature node. Polygons may sit directly under
// the placemark or inside a MultiGeometry; only outer boundaries are
// kept, inner boundaries (holes) are intentionally not extracted.
type Placemark struct {
	Name          string       `xml:"name"`
	Polygons      []Polygon    `xml:"Polygon"`
	MultiPolygons []Polygon    `xml:"MultiGeometry>Polygon"`
	SimpleData    []SimpleData `xml:"ExtendedData>SchemaData>SimpleData"`
}

// Polygon carries the raw coordinate text of a KML polygon's outer ring.
type Polygon struct {
	OuterCoordinates string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

// SimpleData is one typed key-value metadata field of a placemark.
type SimpleData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// SimpleDataValue returns the trimmed value of the named metadata field,
// or "" when the placemark does not carry it.
func (p *Placemark) SimpleDataValue(name string) string {
	for _, sd := range p.SimpleData {
		if sd.Name == name {
			return strings.TrimSpace(sd.Value)
		}
	}
	return ""
}

// Geometries returns every valid closed ring the placemark contains, as
// single-ring polygons. Malformed rings (too few vertices, degenerate
// geometry) are dropped, not repaired; a placemark may legitimately
// contribute zero polygons.
func (p *Placemark) Geometries() []orb.Polygon {
	elems := make([]Polygon, 0, len(p.Polygons)+len(p.MultiPolygons))
	elems = append(elems, p.Polygons...)
	elems = append(elems, p.MultiPolygons...)

	var polygons []orb.Polygon
	for _, elem := range elems {
		if ring, ok := parseRing(elem.OuterCoordinates); ok {
			polygons = append(polygons, orb.Polygon{ring})
		}
	}
	return polygons
}

// parseRing reads a KML coordinate string (whitespace-separated
// "lon,lat[,alt]" tokens, altitude ignored) into a closed ring. Returns
// ok=false for rings that cannot form a polygon: fewer than three
// parsed vertices, or zero planar area after closure.
func parseRing(text string) (orb.Ring, bool) {
	tokens := strings.Fields(text)
	ring := make(orb.Ring, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.SplitN(token, ",", 3)
		if len(parts) < 2 {
			continue
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		ring = append(ring, orb.Point{lon, lat})
	}

	if len(ring) < 3 {
		return nil, false
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	if planar.Area(ring) == 0 {
		return nil, false
	}
	return ring, true
}

// forEachPlacemark streams placemarks out of a KML document, invoking fn
// on each one. Decoded placemarks are not retained, so memory for
// consumed nodes is released as the document advances.
func forEachPlacemark(r io.Reader, fn func(*Placemark) error) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Placemark" {
			continue
		}

		var pm Placemark
		if err := dec.DecodeElement(&pm, &start); err != nil {
			return err
		}
		if err := fn(&pm); err != nil {
			return err
		}
	}
}
