package inscribe

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSimplifyDropsSmallDeviations(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(0.5, 0.001), Pt(1, 0), Pt(1, 1), Pt(0, 1)}

	got := p.Simplify(0.01)
	diff(t, unitSquare(), got)

	// A tolerance below the deviation keeps the vertex.
	got = p.Simplify(0.0001)
	diff(t, p, got)
}

func TestSimplifyKeepsEndpoints(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(5, 0.1), Pt(10, 0), Pt(5, 5)}
	got := p.Simplify(1)
	if got[0] != p[0] || got[len(got)-1] != p[len(p)-1] {
		t.Errorf("first and last vertex must survive, got %v", got)
	}
}

func TestSimplifyDegenerate(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(1, 1)}
	diff(t, p, p.Simplify(10))

	diff(t, Polygon{}, Polygon{}.Simplify(10), cmpopts.EquateEmpty())
}

func TestSimplifyReturnsCopy(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	got := p.Simplify(0.5)
	got[0] = Pt(99, 99)
	if p[0] != Pt(0, 0) {
		t.Error("Simplify must not alias the input")
	}
}
