package calchart

import (
	"golang.org/x/sync/errgroup"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/contcompile"
	"github.com/bdwalton/ccanim/contparse"
	"github.com/bdwalton/ccanim/geom"
)

// showAdapter narrows a ShowSource down to the minimal view contcompile
// needs, so contcompile never has to import this package.
type showAdapter struct{ show ShowSource }

func (a showAdapter) Position(sheet, marcher, ref int) geom.Coord {
	return a.show.Position(sheet, marcher, ref)
}
func (a showAdapter) Beats(sheet int) int { return a.show.Beats(sheet) }
func (a showAdapter) NumSheets() int      { return a.show.NumSheets() }

type marcherResult struct {
	chain *animcmd.Chain
	pos   geom.Coord
	errs  contcompile.ErrorSet
}

// Compile parses and lowers every marcher's continuity on every
// animated sheet of show, producing a playable Animation plus the
// advisory errors the compile pass accumulated (§6's "out" contract).
//
// Sheets are compiled in declaration order; within a sheet, marchers
// are compiled concurrently via errgroup since §5 guarantees their
// outputs are independent and their AnimateSheet write slots are
// disjoint.
func Compile(show ShowSource) (*anim.Animation, *anim.ErrorTable) {
	cshow := showAdapter{show}
	n := show.NumMarchers()
	nsheets := show.NumSheets()

	sheets := make([]*anim.AnimateSheet, 0, nsheets)
	startPos := make([][]geom.Coord, 0, nsheets)
	table := anim.NewErrorTable()

	for s := 0; s < nsheets; s++ {
		if !show.IsAnimated(s) {
			continue
		}

		sheet := anim.NewAnimateSheet(n, show.Beats(s))
		pos := make([]geom.Coord, n)
		for i := 0; i < n; i++ {
			pos[i] = show.Position(s, i, 0)
		}
		sheets = append(sheets, sheet)
		startPos = append(startPos, pos)

		lib := textByID(show.Continuities(s))
		results := make([]marcherResult, n)

		var g errgroup.Group
		for i := 0; i < n; i++ {
			i := i
			contID := show.ContinuityID(s, i)
			g.Go(func() error {
				results[i] = compileOneMarcher(cshow, lib, s, i, contID)
				return nil
			})
		}
		g.Wait()

		for i := range results {
			r := &results[i]
			sheet.SetMarcher(i, r.chain, r.pos)
			for _, k := range r.errs.Kinds() {
				table.Record(k, i, r.errs.Span(k))
			}
		}
	}

	return anim.NewAnimation(sheets, startPos, n), table
}

func compileOneMarcher(show contcompile.Show, lib map[int]string, sheet, marcher, contID int) marcherResult {
	text, hasText := lib[contID]
	var procs []contast.Procedure
	var syntaxErr *contast.Span
	if hasText {
		p, err := contparse.Parse(text)
		if err != nil {
			span := contast.Span{}
			if se, ok := err.(*contparse.SyntaxError); ok {
				span = se.Span
			}
			syntaxErr = &span
		} else {
			procs = p
		}
	}

	chain, pos, errs := contcompile.Compile(show, sheet, marcher, procs)
	if syntaxErr != nil {
		errs.Record(anim.ErrSyntax, *syntaxErr)
	}
	return marcherResult{chain: chain, pos: pos, errs: errs}
}

func textByID(recs []ContinuityRecord) map[int]string {
	m := make(map[int]string, len(recs))
	for _, r := range recs {
		m[r.ID] = r.Text
	}
	return m
}
