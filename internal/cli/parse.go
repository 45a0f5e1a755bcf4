package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geomys/inscribe"
)

// geoJSON is the subset of GeoJSON the CLI understands: a bare Polygon
// geometry or a Feature wrapping one. Only the outer ring is used.
type geoJSON struct {
	Type        string          `json:"type"`
	Coordinates [][][2]float64  `json:"coordinates"`
	Geometry    json.RawMessage `json:"geometry"`
}

// readPolygon decodes a polygon from r. Accepted formats are a bare JSON
// coordinate array [[x,y],...] and a GeoJSON Polygon (optionally wrapped in
// a Feature). GeoJSON rings repeat the first vertex at the end; the closing
// duplicate is dropped to obtain the solver's open representation.
func readPolygon(r io.Reader) (inscribe.Polygon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading polygon: %w", err)
	}

	var coords [][2]float64
	if err := json.Unmarshal(data, &coords); err == nil {
		return toPolygon(openRing(coords)), nil
	}

	var g geoJSON
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing polygon: %w", err)
	}
	if g.Type == "Feature" {
		if err := json.Unmarshal(g.Geometry, &g); err != nil {
			return nil, fmt.Errorf("parsing feature geometry: %w", err)
		}
	}
	if g.Type != "Polygon" {
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
	if len(g.Coordinates) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}
	return toPolygon(openRing(g.Coordinates[0])), nil
}

// openRing drops the closing duplicate vertex of a ring, if present,
// yielding the solver's open representation.
func openRing(ring [][2]float64) [][2]float64 {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

func toPolygon(coords [][2]float64) inscribe.Polygon {
	poly := make(inscribe.Polygon, len(coords))
	for i, c := range coords {
		poly[i] = inscribe.Pt(c[0], c[1])
	}
	return poly
}

// parsePoint parses an "x,y" pair, as used by the --origin flag.
func parsePoint(s string) (inscribe.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return inscribe.Point{}, fmt.Errorf("origin %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return inscribe.Point{}, fmt.Errorf("origin %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return inscribe.Point{}, fmt.Errorf("origin %q: %w", s, err)
	}
	return inscribe.Pt(x, y), nil
}
