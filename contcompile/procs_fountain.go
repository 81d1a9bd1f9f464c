package contcompile

import (
	"math"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/geom"
)

const fountainDeterminantEpsilon = 1e-6

// compileFountain solves the 2x2 system decomposing the displacement
// to P into t1 steps along u(d1,s1) and t2 steps along u(d2,s2); when
// the two directions are colinear the system is singular and a
// single-leg fallback is tried before giving up with INVALID_FNTN.
func (st *state) compileFountain(p *contast.Procedure) {
	d1 := st.Eval(p.Dir1)
	d2 := st.Eval(p.Dir2)
	s1, s2 := 1.0, 1.0
	if p.Steps1 != nil {
		s1 = st.Eval(p.Steps1)
	}
	if p.Steps2 != nil {
		s2 = st.Eval(p.Steps2)
	}

	target := st.point(p.P)
	delta := target.Sub(st.pos)
	dx, dy := delta.Steps()

	u1x, u1y := geom.CreateVector(d1, s1).Steps()
	u2x, u2y := geom.CreateVector(d2, s2).Steps()

	det := u1x*u2y - u2x*u1y
	if math.Abs(det) < fountainDeterminantEpsilon {
		st.compileFountainColinear(p, delta, d1, d2, s1, s2)
		return
	}

	t1 := (dx*u2y - u2x*dy) / det
	t2 := (u1x*dy - dx*u1y) / det

	beats1 := st.roundBeats(t1, p.Span)
	beats2 := st.roundBeats(t2, p.Span)
	vec1 := geom.CreateVector(d1, s1*float64(beats1))
	vec2 := geom.CreateVector(d2, s2*float64(beats2))

	st.Append(animcmd.NewMove(beats1, vec1, d1), p.Span)
	st.Append(animcmd.NewMove(beats2, vec2, d2), p.Span)
}

func (st *state) compileFountainColinear(p *contast.Procedure, delta geom.Coord, d1, d2, s1, s2 float64) {
	if delta.IsZero() {
		return
	}
	dirDelta := delta.Direction()
	mag := delta.DMMagnitude()

	closeAngle := func(a, b float64) bool {
		return math.Abs(geom.Normalize180(a-b)) < 1e-3
	}

	switch {
	case closeAngle(dirDelta, d1) || closeAngle(dirDelta, geom.Normalize360(d1+180)):
		beats := st.roundBeats(mag/s1, p.Span)
		st.Append(animcmd.NewMove(beats, delta, dirDelta), p.Span)
	case closeAngle(dirDelta, d2) || closeAngle(dirDelta, geom.Normalize360(d2+180)):
		beats := st.roundBeats(mag/s2, p.Span)
		st.Append(animcmd.NewMove(beats, delta, dirDelta), p.Span)
	default:
		st.record(anim.ErrInvalidFountain, p.Span)
	}
}
