package contcompile

import (
	"math"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
)

// compileRotate implements ROTATE angle n P: sweep through angle
// degrees around P over |n| beats, backwards (n < 0) reversing the
// facing convention. The start angle is the direction from P to the
// marcher's current position, falling back to DOH when the marcher
// is standing exactly on the pivot.
func (st *state) compileRotate(p *contast.Procedure) {
	angle := st.Eval(p.Angle)
	n := st.signedRound(p.N)
	beats := int(math.Abs(float64(n)))
	backwards := n < 0

	center := st.point(p.P)
	fromCenter := st.pos.Sub(center)

	var theta0 float64
	if fromCenter.IsZero() {
		doh := &st.vars[contast.VarDOH]
		if doh.set {
			theta0 = doh.val
		} else {
			st.record(anim.ErrUndefined, p.Span)
		}
	} else {
		theta0 = fromCenter.Direction()
	}

	radius := fromCenter.Magnitude()
	st.Append(animcmd.NewRotate(beats, center, radius, theta0, theta0+angle, backwards), p.Span)
}
