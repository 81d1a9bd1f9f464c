package contcompile

import (
	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/geom"
)

// Compile lowers procs into a command chain for one marcher on one
// sheet. It returns the chain, the marcher's position once every
// command has run, and the advisory errors this pass produced.
//
// A marcher whose continuity id names no record on this sheet is
// handed an empty procs slice by the caller (calchart.Compile) — an
// empty chain then falls straight through to the terminal-alignment
// step below, exactly as if it had run a no-op program.
func Compile(show Show, sheet, marcher int, procs []contast.Procedure) (*animcmd.Chain, geom.Coord, ErrorSet) {
	st := &state{
		show:     show,
		sheet:    sheet,
		marcher:  marcher,
		pos:      show.Position(sheet, marcher, 0),
		startPos: show.Position(sheet, marcher, 0),
		beatsRem: show.Beats(sheet),
	}
	st.nextPos = st.pos
	if sheet+1 < show.NumSheets() {
		st.nextPos = show.Position(sheet+1, marcher, 0)
	}

	for i := range procs {
		if st.beatsRem <= 0 {
			// The sheet's beats are used up while procedures remain.
			st.record(anim.ErrExtraTime, procs[i].Span)
		}
		st.compileOne(&procs[i])
	}

	finalSpan := contast.Span{}
	if len(procs) > 0 {
		finalSpan = procs[len(procs)-1].Span
	}

	if !st.pos.Equal(st.nextPos) {
		delta := st.nextPos.Sub(st.pos)
		beats := st.roundBeats(delta.DMMagnitude(), finalSpan)
		st.Append(animcmd.NewMove(beats, delta, delta.Direction()), finalSpan)
		if !st.pos.Equal(st.nextPos) {
			st.record(anim.ErrWrongPlace, finalSpan)
		}
	}
	if st.beatsRem > 0 {
		st.Append(animcmd.NewHold(st.beatsRem, geom.DirE), finalSpan)
		st.record(anim.ErrExtraTime, finalSpan)
	}

	return &st.chain, st.pos, st.errs
}

func (st *state) compileOne(p *contast.Procedure) {
	switch p.Kind {
	case contast.ProcSet:
		st.compileSet(p)
	case contast.ProcBlam:
		st.compileBlam(p)
	case contast.ProcMT:
		st.compileMT(p)
	case contast.ProcMTRM:
		st.compileMTRM(p)
	case contast.ProcFM:
		st.compileFM(p)
	case contast.ProcFMTO:
		st.compileFMTO(p)
	case contast.ProcEWNS:
		st.compileAxisMoves(p, true)
	case contast.ProcNSEW:
		st.compileAxisMoves(p, false)
	case contast.ProcDMHS:
		st.compileDiagOrtho(p, true)
	case contast.ProcHSDM:
		st.compileDiagOrtho(p, false)
	case contast.ProcEven:
		st.compileEven(p)
	case contast.ProcMarch:
		st.compileMarch(p)
	case contast.ProcRotate:
		st.compileRotate(p)
	case contast.ProcFountain:
		st.compileFountain(p)
	case contast.ProcCM:
		st.compileCM(p)
	case contast.ProcHSCM:
		st.compileHSCM(p)
	case contast.ProcDMCM:
		st.compileDMCM(p)
	case contast.ProcMagic:
		st.compileMagic(p)
	case contast.ProcGrid:
		st.compileGrid(p)
	}
}
