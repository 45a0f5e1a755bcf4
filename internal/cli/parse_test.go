package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/geomys/inscribe"
)

func TestReadPolygonCoordinateArray(t *testing.T) {
	got, err := readPolygon(strings.NewReader(`[[0,0],[1,0],[1,1],[0,1]]`))
	if err != nil {
		t.Fatal(err)
	}
	want := inscribe.Polygon{
		inscribe.Pt(0, 0), inscribe.Pt(1, 0),
		inscribe.Pt(1, 1), inscribe.Pt(0, 1),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestReadPolygonGeoJSON(t *testing.T) {
	// The closing duplicate vertex must be dropped.
	const in = `{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,4],[0,0]]]}`
	got, err := readPolygon(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := inscribe.Polygon{
		inscribe.Pt(0, 0), inscribe.Pt(4, 0),
		inscribe.Pt(4, 4), inscribe.Pt(0, 4),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestReadPolygonFeature(t *testing.T) {
	const in = `{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[1,2],[0,0]]]}}`
	got, err := readPolygon(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := inscribe.Polygon{
		inscribe.Pt(0, 0), inscribe.Pt(2, 0), inscribe.Pt(1, 2),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestReadPolygonUnsupported(t *testing.T) {
	if _, err := readPolygon(strings.NewReader(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`)); err == nil {
		t.Error("expected an error for non-Polygon geometry")
	}
	if _, err := readPolygon(strings.NewReader(`not json`)); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestParsePoint(t *testing.T) {
	got, err := parsePoint("0.5, 1.25")
	if err != nil {
		t.Fatal(err)
	}
	if got != inscribe.Pt(0.5, 1.25) {
		t.Errorf("got %v, want (0.5, 1.25)", got)
	}

	for _, bad := range []string{"", "1", "a,b", "1;2"} {
		if _, err := parsePoint(bad); err == nil {
			t.Errorf("parsePoint(%q): expected an error", bad)
		}
	}
}
