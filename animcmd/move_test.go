package animcmd

import (
	"testing"

	"github.com/bdwalton/ccanim/geom"
)

func TestMoveStepRoundTrip(t *testing.T) {
	m := NewMove(8, geom.FromSteps(4, -4), 0)
	pt := geom.Coord{}
	m.Begin(&pt)

	start := pt
	for i := 0; i < 8; i++ {
		m.NextBeat(&pt)
	}
	if x, y := pt.Steps(); x != 4 || y != -4 {
		t.Fatalf("after 8 NextBeat: got (%v,%v), want (4,-4)", x, y)
	}
	for i := 0; i < 8; i++ {
		m.PrevBeat(&pt)
	}
	if !pt.Equal(start) {
		t.Fatalf("round trip: got %+v, want %+v", pt, start)
	}
}

func TestMoveApplyForwardBackward(t *testing.T) {
	m := NewMove(4, geom.FromSteps(2, 3), 0)
	pt := geom.FromSteps(10, 10)
	orig := pt

	m.ApplyForward(&pt)
	m.ApplyBackward(&pt)
	if !pt.Equal(orig) {
		t.Fatalf("apply forward/backward: got %+v, want %+v", pt, orig)
	}
}

func TestMoveZeroBeatAppliesDisplacement(t *testing.T) {
	m := NewMove(0, geom.FromSteps(1, 1), 0)
	pt := geom.Coord{}
	if ok := m.Begin(&pt); ok {
		t.Fatalf("Begin on a zero-beat move should return false")
	}
	m.ApplyForward(&pt)
	if x, y := pt.Steps(); x != 1 || y != 1 {
		t.Fatalf("zero-beat ApplyForward: got (%v,%v), want (1,1)", x, y)
	}
}

func TestHoldDoesNotMove(t *testing.T) {
	h := NewHold(4, geom.DirE)
	pt := geom.FromSteps(5, 5)
	orig := pt
	h.Begin(&pt)
	for i := 0; i < 4; i++ {
		h.NextBeat(&pt)
	}
	if !pt.Equal(orig) {
		t.Fatalf("Hold moved pt: got %+v, want %+v", pt, orig)
	}
}
