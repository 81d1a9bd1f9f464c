package contcompile

import (
	"math"

	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/geom"
)

// compileBlam spends every remaining beat on a single straight move
// to the marcher's position on the next sheet.
func (st *state) compileBlam(p *contast.Procedure) {
	delta := st.nextPos.Sub(st.pos)
	st.Append(animcmd.NewMove(st.beatsRem, delta, delta.Direction()), p.Span)
}

func (st *state) compileMT(p *contast.Procedure) {
	n := st.beatsOf(p.N)
	d := st.Eval(p.Dir)
	st.Append(animcmd.NewHold(n, d), p.Span)
}

func (st *state) compileMTRM(p *contast.Procedure) {
	d := st.Eval(p.Dir)
	st.Append(animcmd.NewHold(st.beatsRem, d), p.Span)
}

// compileFM implements "forward march n steps in direction d"; a
// negative n is a backwards march: the same displacement, but facing
// the opposite of the direction of travel.
func (st *state) compileFM(p *contast.Procedure) {
	n := st.signedRound(p.N)
	d := st.Eval(p.Dir)
	beats := int(math.Abs(float64(n)))
	vec := geom.CreateVector(d, float64(beats))
	facing := d
	if n < 0 {
		facing = geom.Normalize360(d + 180)
	}
	st.Append(animcmd.NewMove(beats, vec, facing), p.Span)
}

func (st *state) compileFMTO(p *contast.Procedure) {
	target := st.point(p.P)
	delta := target.Sub(st.pos)
	beats := st.roundBeats(delta.DMMagnitude(), p.Span)
	st.Append(animcmd.NewMove(beats, delta, delta.Direction()), p.Span)
}

// compileAxisMoves implements EWNS (ewFirst == true) and NSEW: two
// axis-aligned legs covering the displacement to P, in the order the
// keyword names them. North/South runs along the Coord X axis; East/
// West runs along the Coord Y axis, per geom.CreateVector's
// direction convention.
func (st *state) compileAxisMoves(p *contast.Procedure, ewFirst bool) {
	target := st.point(p.P)
	delta := target.Sub(st.pos)
	nsComponent, ewComponent := delta.Steps()

	nsDir := geom.DirN
	if nsComponent < 0 {
		nsDir = geom.DirS
	}
	ewDir := geom.DirE
	if ewComponent < 0 {
		ewDir = geom.DirW
	}

	nsBeats := st.roundBeats(math.Abs(nsComponent), p.Span)
	ewBeats := st.roundBeats(math.Abs(ewComponent), p.Span)
	nsVec := geom.CreateVector(nsDir, math.Abs(nsComponent))
	ewVec := geom.CreateVector(ewDir, math.Abs(ewComponent))

	if ewFirst {
		st.Append(animcmd.NewMove(ewBeats, ewVec, ewDir), p.Span)
		st.Append(animcmd.NewMove(nsBeats, nsVec, nsDir), p.Span)
	} else {
		st.Append(animcmd.NewMove(nsBeats, nsVec, nsDir), p.Span)
		st.Append(animcmd.NewMove(ewBeats, ewVec, ewDir), p.Span)
	}
}

// diagonalDirFor maps the signs of a displacement's axes to the one
// of the four diagonals that moves in that quadrant, per
// geom.CreateVector's own sign convention.
func diagonalDirFor(dx, dy float64) float64 {
	switch {
	case dx >= 0 && dy < 0:
		return geom.DirNW
	case dx < 0 && dy < 0:
		return geom.DirSW
	case dx < 0 && dy >= 0:
		return geom.DirSE
	default:
		return geom.DirNE
	}
}

// compileDiagOrtho implements DMHS (diagFirst == true) and HSDM: a
// diagonal leg covering the shorter axis component, and an
// orthogonal leg covering the remainder of the longer one.
func (st *state) compileDiagOrtho(p *contast.Procedure, diagFirst bool) {
	target := st.point(p.P)
	delta := target.Sub(st.pos)
	dx, dy := delta.Steps()

	diagMag := math.Min(math.Abs(dx), math.Abs(dy))
	orthoMag := math.Max(math.Abs(dx), math.Abs(dy)) - diagMag
	diagDir := diagonalDirFor(dx, dy)
	diagBeats := st.roundBeats(diagMag, p.Span)
	diagVec := geom.CreateVector(diagDir, diagMag)

	var orthoDir float64
	if math.Abs(dx) >= math.Abs(dy) {
		orthoDir = geom.DirN
		if dx < 0 {
			orthoDir = geom.DirS
		}
	} else {
		orthoDir = geom.DirE
		if dy < 0 {
			orthoDir = geom.DirW
		}
	}
	orthoBeats := st.roundBeats(orthoMag, p.Span)
	orthoVec := geom.CreateVector(orthoDir, orthoMag)

	diag := animcmd.NewMove(diagBeats, diagVec, diagDir)
	if diagFirst {
		st.Append(diag, p.Span)
		if orthoBeats > 0 {
			st.Append(animcmd.NewMove(orthoBeats, orthoVec, orthoDir), p.Span)
		}
		return
	}
	if orthoBeats > 0 {
		st.Append(animcmd.NewMove(orthoBeats, orthoVec, orthoDir), p.Span)
	}
	st.Append(diag, p.Span)
}

func (st *state) compileEven(p *contast.Procedure) {
	n := st.signedRound(p.N)
	target := st.point(p.P)
	delta := target.Sub(st.pos)
	beats := int(math.Abs(float64(n)))
	facing := delta.Direction()
	if n < 0 {
		facing = geom.Normalize360(facing + 180)
	}
	st.Append(animcmd.NewMove(beats, delta, facing), p.Span)
}

func (st *state) compileMarch(p *contast.Procedure) {
	size := st.Eval(p.Size)
	n := st.signedRound(p.N)
	dir := st.Eval(p.Dir)
	beats := int(math.Abs(float64(n)))
	mag := size * math.Abs(float64(n))
	vec := geom.CreateVector(dir, mag)
	facing := dir
	if n < 0 {
		facing = geom.Normalize360(dir + 180)
	}
	if p.Face != nil {
		facing = st.Eval(p.Face)
	}
	st.Append(animcmd.NewMove(beats, vec, facing), p.Span)
}
