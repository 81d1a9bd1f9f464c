package contcompile

import (
	"math"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/geom"
)

// coordDecimal is how close a float must be to an integer to count
// as one for beat-count coercion purposes.
const coordDecimal = 0.02

// divisionZeroEpsilon is the |b| threshold below which a/b registers
// DIVISION_ZERO rather than computing (possibly huge) a result.
const divisionZeroEpsilon = 1e-5

// Eval evaluates v against st, registering any advisory error kind v
// triggers (UNDEFINED, DIVISION_ZERO) rather than returning a Go
// error — compile errors never propagate as exceptions (§7).
func (st *state) Eval(v *contast.Value) float64 {
	switch v.Kind {
	case contast.ValLiteral, contast.ValNamedConst:
		return v.Num
	case contast.ValAdd:
		return st.Eval(v.Left) + st.Eval(v.Right)
	case contast.ValSub:
		return st.Eval(v.Left) - st.Eval(v.Right)
	case contast.ValMult:
		return st.Eval(v.Left) * st.Eval(v.Right)
	case contast.ValDiv:
		num := st.Eval(v.Left)
		den := st.Eval(v.Right)
		if math.Abs(den) < divisionZeroEpsilon {
			st.record(anim.ErrDivisionZero, v.Span)
			return 0
		}
		return num / den
	case contast.ValNeg:
		return -st.Eval(v.Left)
	case contast.ValREM:
		return float64(st.beatsRem)
	case contast.ValVariable:
		cv := &st.vars[v.Var]
		if !cv.set {
			st.record(anim.ErrUndefined, v.Span)
			return 0
		}
		return cv.val
	case contast.ValFunction:
		return st.evalFunc(v.Func)
	}
	return 0
}

func (st *state) evalFunc(f *contast.Function) float64 {
	switch f.Kind {
	case contast.FuncDir:
		p := st.point(f.P1)
		if p.Equal(st.pos) {
			st.record(anim.ErrUndefined, f.Span)
			return 0
		}
		return p.Sub(st.pos).Direction()
	case contast.FuncDirFrom:
		p1, p2 := st.point(f.P1), st.point(f.P2)
		if p1.Equal(p2) {
			st.record(anim.ErrUndefined, f.Span)
			return 0
		}
		return p2.Sub(p1).Direction()
	case contast.FuncDist:
		p := st.point(f.P1)
		return p.Sub(st.pos).DMMagnitude()
	case contast.FuncDistFrom:
		p1, p2 := st.point(f.P1), st.point(f.P2)
		return p2.Sub(p1).Magnitude()
	case contast.FuncEither:
		d1 := st.Eval(f.V1)
		d2 := st.Eval(f.V2)
		p := st.point(f.P1)
		toP := p.Sub(st.pos).Direction()
		t1 := math.Abs(geom.Normalize180(d1 - toP))
		t2 := math.Abs(geom.Normalize180(d2 - toP))
		// Ties favour d1, matching the original implementation.
		if t1 <= t2 {
			return d1
		}
		return d2
	case contast.FuncOpp:
		return geom.Normalize360(st.Eval(f.V1) + 180)
	case contast.FuncStep:
		beats := st.Eval(f.V1)
		blockSize := st.Eval(f.V2)
		p := st.point(f.P1)
		if math.Abs(blockSize) < divisionZeroEpsilon {
			st.record(anim.ErrDivisionZero, f.Span)
			return 0
		}
		return p.Sub(st.pos).DMMagnitude() * beats / blockSize
	}
	return 0
}

// roundBeats rounds f to the nearest integer, registering NONINT if
// f wasn't within coordDecimal of one, and NEGINT (clamping to 0) if
// the result is negative.
func (st *state) roundBeats(f float64, span contast.Span) int {
	r := math.Round(f)
	if math.Abs(f-r) > coordDecimal {
		st.record(anim.ErrNonInt, span)
	}
	if r < 0 {
		st.record(anim.ErrNegInt, span)
		return 0
	}
	return int(r)
}

// beatsOf evaluates v and coerces it to a non-negative beat count.
func (st *state) beatsOf(v *contast.Value) int {
	return st.roundBeats(st.Eval(v), v.Span)
}

// signedRound evaluates v and rounds it to an integer without forcing
// non-negativity — used where the sign itself is meaningful (e.g.
// FM's backwards-march flag).
func (st *state) signedRound(v *contast.Value) int {
	f := st.Eval(v)
	r := math.Round(f)
	if math.Abs(f-r) > coordDecimal {
		st.record(anim.ErrNonInt, v.Span)
	}
	return int(r)
}
