package contcompile

import (
	"math"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/geom"
)

// compileMagic is a zero-beat instantaneous jump straight to P. Its
// .cpp body is #if 0'd out in the source this was distilled from (an
// undefined-in-original directive); this spells out the one sensible
// reading of its header declaration.
func (st *state) compileMagic(p *contast.Procedure) {
	target := st.point(p.P)
	delta := target.Sub(st.pos)
	st.Append(animcmd.NewMove(0, delta, delta.Direction()), p.Span)
}

// compileGrid snaps the marcher's current position to the nearest
// multiple of a grid spacing, in zero beats. Also undefined in the
// original .cpp; see compileMagic.
func (st *state) compileGrid(p *contast.Procedure) {
	g := st.Eval(p.N)
	if math.Abs(g) < divisionZeroEpsilon {
		st.record(anim.ErrDivisionZero, p.Span)
		return
	}
	x, y := st.pos.Steps()
	snapped := geom.FromSteps(math.Round(x/g)*g, math.Round(y/g)*g)
	delta := snapped.Sub(st.pos)
	st.Append(animcmd.NewMove(0, delta, delta.Direction()), p.Span)
}
