package inscribe

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCastRayThroughSquare(t *testing.T) {
	sq := unitSquare()

	ri := sq.CastRay(Pt(0.5, 0.5), 0)
	if !ri.Both() {
		t.Fatal("expected hits on both sides")
	}
	diff(t, Pt(1, 0.5), ri.Forward, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0, 0.5), ri.Backward, cmpopts.EquateApprox(0, 1e-12))

	ri = sq.CastRay(Pt(0.5, 0.5), math.Pi/2)
	if !ri.Both() {
		t.Fatal("expected hits on both sides")
	}
	diff(t, Pt(0.5, 1), ri.Forward, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0.5, 0), ri.Backward, cmpopts.EquateApprox(0, 1e-12))
}

func TestCastRayDiagonal(t *testing.T) {
	sq := unitSquare()
	ri := sq.CastRay(Pt(0.5, 0.5), math.Pi/4)
	if !ri.Both() {
		t.Fatal("expected hits on both sides")
	}
	diff(t, Pt(1, 1), ri.Forward, cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(0, 0), ri.Backward, cmpopts.EquateApprox(0, 1e-9))
}

func TestCastRayOutsideOrigin(t *testing.T) {
	// From an origin right of the square, the positive x direction never
	// meets the boundary.
	ri := unitSquare().CastRay(Pt(2, 0.5), 0)
	if ri.HasForward {
		t.Errorf("unexpected forward hit at %v", ri.Forward)
	}
	if !ri.HasBackward {
		t.Fatal("expected a backward hit")
	}
	diff(t, Pt(1, 0.5), ri.Backward, cmpopts.EquateApprox(0, 1e-12))
}

func TestCastRayParallelEdge(t *testing.T) {
	// The edge from (2, 0.5) to (3, 0.5) is collinear with the ray and
	// must not register tangential hits; the nearest true crossings win.
	p := Polygon{Pt(0, 0), Pt(2, 0), Pt(2, 0.5), Pt(3, 0.5), Pt(3, 1), Pt(0, 1)}
	ri := p.CastRay(Pt(1, 0.5), 0)
	if !ri.Both() {
		t.Fatal("expected hits on both sides")
	}
	diff(t, Pt(2, 0.5), ri.Forward, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0, 0.5), ri.Backward, cmpopts.EquateApprox(0, 1e-12))
}
