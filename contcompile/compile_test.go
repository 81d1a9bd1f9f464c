package contcompile_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/contast"
	"github.com/bdwalton/ccanim/contcompile"
	"github.com/bdwalton/ccanim/contparse"
	"github.com/bdwalton/ccanim/geom"
)

// fakeShow is a minimal contcompile.Show backing the scenarios in
// spec.md's "Testable properties" section.
type fakeShow struct {
	pos   map[int]map[int][4]geom.Coord // sheet -> marcher -> [pos, ref1, ref2, ref3]
	beats map[int]int
	n     int
}

func (f *fakeShow) Position(sheet, marcher, ref int) geom.Coord {
	return f.pos[sheet][marcher][ref]
}
func (f *fakeShow) Beats(sheet int) int { return f.beats[sheet] }
func (f *fakeShow) NumSheets() int      { return f.n }

func mustParse(t require.TestingT, src string) []contast.Procedure {
	procs, err := contparse.Parse(src)
	require.NoError(t, err)
	return procs
}

type CompileSuite struct {
	suite.Suite
}

// TestPoints exercises scenario 1: a marcher with no continuity
// program still gets auto-moved onto its next-sheet position.
func (s *CompileSuite) TestPoints() {
	show := &fakeShow{
		pos: map[int]map[int][4]geom.Coord{
			0: {0: [4]geom.Coord{geom.FromSteps(2, 2), {}, geom.FromSteps(4, 4), {}}},
			1: {0: [4]geom.Coord{geom.FromSteps(6, 6), {}, {}, {}}},
		},
		beats: map[int]int{0: 8, 1: 8},
		n:     2,
	}
	chain, pos, _ := contcompile.Compile(show, 0, 0, nil)
	require.NotNil(s.T(), chain)
	require.Equal(s.T(), geom.FromSteps(6, 6), pos)
}

// TestMTPlusEWNS exercises scenario 4 exactly: MT 8 E then EWNS NP
// compiles to Hold(8,E), Move(4,(0,-4)), Move(4,(4,0)).
func (s *CompileSuite) TestMTPlusEWNS() {
	show := &fakeShow{
		pos: map[int]map[int][4]geom.Coord{
			0: {0: [4]geom.Coord{geom.FromSteps(0, 0), {}, {}, {}}},
			1: {0: [4]geom.Coord{geom.FromSteps(4, -4), {}, {}, {}}},
		},
		beats: map[int]int{0: 16, 1: 16},
		n:     2,
	}
	procs := mustParse(s.T(), "MT 8 E\nEWNS NP\n")
	chain, pos, errs := contcompile.Compile(show, 0, 0, procs)
	require.False(s.T(), errs.Has(anim.ErrWrongPlace))
	require.Equal(s.T(), geom.FromSteps(4, -4), pos)

	var beatsList []int
	for node := chain.Head(); node != nil; node = node.Next() {
		beatsList = append(beatsList, node.Cmd.NumBeats())
	}
	require.Equal(s.T(), []int{8, 4, 4}, beatsList)

	hold, ok := chain.Head().Cmd.(*animcmd.Hold)
	require.True(s.T(), ok)
	require.Equal(s.T(), geom.DirE, hold.Direction())
}

// TestBeatConservation checks the universal invariant: summed numbeats
// across a chain equals the sheet's beat budget.
func (s *CompileSuite) TestBeatConservation() {
	show := &fakeShow{
		pos: map[int]map[int][4]geom.Coord{
			0: {0: [4]geom.Coord{geom.FromSteps(0, 0), {}, {}, {}}},
			1: {0: [4]geom.Coord{geom.FromSteps(0, 0), {}, {}, {}}},
		},
		beats: map[int]int{0: 10, 1: 10},
		n:     2,
	}
	procs := mustParse(s.T(), "MT 4 N\n")
	chain, _, _ := contcompile.Compile(show, 0, 0, procs)
	total := 0
	for node := chain.Head(); node != nil; node = node.Next() {
		total += node.Cmd.NumBeats()
	}
	require.Equal(s.T(), 10, total)
}

// TestOutOfTimeClips exercises scenario 6: a move exceeding beats_rem
// is clipped and flagged OUTOFTIME.
func (s *CompileSuite) TestOutOfTimeClips() {
	show := &fakeShow{
		pos: map[int]map[int][4]geom.Coord{
			0: {0: [4]geom.Coord{geom.FromSteps(0, 0), {}, {}, {}}},
			1: {0: [4]geom.Coord{geom.FromSteps(0, 0), {}, {}, {}}},
		},
		beats: map[int]int{0: 2, 1: 2},
		n:     2,
	}
	procs := mustParse(s.T(), "FM 3 E\n")
	_, _, errs := contcompile.Compile(show, 0, 0, procs)
	require.True(s.T(), errs.Has(anim.ErrOutOfTime))
}

func TestCompileSuite(t *testing.T) {
	suite.Run(t, new(CompileSuite))
}
