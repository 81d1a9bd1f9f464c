package calchart_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/calchart"
	"github.com/bdwalton/ccanim/geom"
)

type CalchartSuite struct {
	suite.Suite
}

func (s *CalchartSuite) TestCompileEndToEnd() {
	show := &calchart.Show{
		Marchers: 1,
		Sheets: []calchart.Sheet{
			{
				SheetName:  "opener",
				SheetBeats: 16,
				Marchers: []calchart.Marcher{
					{Sym: "open", ContID: 1, Pos: geom.FromSteps(0, 0)},
				},
				ContLibrary: []calchart.ContinuityRecord{
					{ID: 1, Name: "all", Text: "MT 8 E\nEWNS NP\n"},
				},
			},
			{
				SheetName:  "closer",
				SheetBeats: 0,
				Marchers: []calchart.Marcher{
					{Sym: "open", ContID: 0, Pos: geom.FromSteps(4, -4)},
				},
			},
		},
	}

	animation, errTable := calchart.Compile(show)
	require.NotNil(s.T(), animation)
	require.True(s.T(), errTable.Empty())

	for i := 0; i < 16; i++ {
		require.True(s.T(), animation.NextBeat())
	}
	snap := animation.Current()
	require.Equal(s.T(), geom.FromSteps(4, -4), snap.Marchers[0].Position)
}

// An unmatched continuity ID falls back to an empty program rather
// than a SYNTAX error; any unconsumed beats still surface as
// EXTRATIME, exactly as a genuine no-op program would.
func (s *CalchartSuite) TestUnmatchedContinuityIDIsNotASyntaxError() {
	show := &calchart.Show{
		Marchers: 1,
		Sheets: []calchart.Sheet{
			{
				SheetName:  "only",
				SheetBeats: 4,
				Marchers: []calchart.Marcher{
					{Sym: "open", ContID: 99, Pos: geom.FromSteps(1, 1)},
				},
			},
		},
	}

	_, errTable := calchart.Compile(show)
	require.Empty(s.T(), errTable.Marchers(anim.ErrSyntax))
	require.Contains(s.T(), errTable.Marchers(anim.ErrExtraTime), 0)
}

func (s *CalchartSuite) TestSyntaxErrorRecordsPerMarcher() {
	show := &calchart.Show{
		Marchers: 1,
		Sheets: []calchart.Sheet{
			{
				SheetName:  "bad",
				SheetBeats: 4,
				Marchers: []calchart.Marcher{
					{Sym: "open", ContID: 1, Pos: geom.FromSteps(0, 0)},
				},
				ContLibrary: []calchart.ContinuityRecord{
					{ID: 1, Name: "broken", Text: "MT 4\n"},
				},
			},
		},
	}

	_, errTable := calchart.Compile(show)
	require.False(s.T(), errTable.Empty())
	require.Equal(s.T(), []int{0}, errTable.Marchers(anim.ErrSyntax))
}

func TestCalchartSuite(t *testing.T) {
	suite.Run(t, new(CalchartSuite))
}
