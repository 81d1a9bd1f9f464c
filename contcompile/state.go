// Package contcompile lowers a parsed continuity program into a
// doubly linked chain of animcmd.Commands for one marcher on one
// sheet (§4.2).
package contcompile

import (
	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/geom"
)

// Show is the minimal view of a show the compiler needs to resolve
// points and a sheet's beat budget. A calchart.Show value satisfies
// this interface structurally — contcompile never imports calchart,
// which in turn imports contcompile, to keep the dependency graph
// acyclic.
type Show interface {
	// Position returns marcher's position on sheet. ref == 0 is the
	// primary position; 1..3 select a reference point.
	Position(sheet, marcher, ref int) geom.Coord
	// Beats returns sheet's beat budget.
	Beats(sheet int) int
	// NumSheets returns the total number of sheets in the show.
	NumSheets() int
}

type contVar struct {
	val float64
	set bool
}

// state is the compiler's working state for one marcher on one
// sheet — exactly the fields §4.2 lists.
type state struct {
	show    Show
	sheet   int
	marcher int

	pos      geom.Coord // pt.pos
	startPos geom.Coord
	nextPos  geom.Coord

	chain    animcmd.Chain
	beatsRem int
	vars     [contast.NumVariables]contVar
	errs     ErrorSet
}

func (st *state) record(kind anim.ErrorKind, span contast.Span) {
	st.errs.Record(kind, span)
}

// point resolves an AST Point reference against this compile state.
func (st *state) point(p *contast.Point) geom.Coord {
	switch p.Kind {
	case contast.StartPoint:
		return st.startPos
	case contast.NextPoint:
		return st.nextPos
	case contast.RefPoint:
		return st.show.Position(st.sheet, st.marcher, p.Num)
	default: // contast.CurrentPoint
		return st.pos
	}
}

// Append is the chain-building primitive, §4.2's five numbered steps.
func (st *state) Append(cmd animcmd.Command, span contast.Span) {
	if st.beatsRem <= 0 {
		return
	}
	nb := cmd.NumBeats()
	if nb > st.beatsRem {
		cmd = cmd.Clip(st.beatsRem)
		st.record(anim.ErrOutOfTime, span)
		nb = st.beatsRem
	}
	st.chain.Append(cmd)
	st.beatsRem -= nb
	cmd.ApplyForward(&st.pos)
}
