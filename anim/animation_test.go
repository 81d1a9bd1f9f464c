package anim_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/geom"
)

// buildSheet gives marcher i the single command chain chains[i], over
// a sheet of the given beat length.
func buildSheet(beats int, chains []*animcmd.Chain, post []geom.Coord) *anim.AnimateSheet {
	sheet := anim.NewAnimateSheet(len(chains), beats)
	for i, c := range chains {
		sheet.SetMarcher(i, c, post[i])
	}
	return sheet
}

type AnimationSuite struct {
	suite.Suite
}

// TestSingleSheetWalk steps one marcher's single 4-beat Move forward
// and back, checking the cursor lands on the expected position each
// time (§4.4).
func (s *AnimationSuite) TestSingleSheetWalk() {
	chain := &animcmd.Chain{}
	chain.Append(animcmd.NewMove(4, geom.FromSteps(4, 0), geom.DirN))

	sheet := buildSheet(4, []*animcmd.Chain{chain}, []geom.Coord{geom.FromSteps(4, 0)})
	a := anim.NewAnimation([]*anim.AnimateSheet{sheet}, [][]geom.Coord{{geom.Coord{}}}, 1)

	for i := 0; i < 4; i++ {
		ok := a.NextBeat()
		require.True(s.T(), ok)
	}
	snap := a.Current()
	require.Equal(s.T(), geom.FromSteps(4, 0), snap.Marchers[0].Position)

	for i := 0; i < 4; i++ {
		ok := a.PrevBeat()
		require.True(s.T(), ok)
	}
	snap = a.Current()
	require.Equal(s.T(), geom.Coord{}, snap.Marchers[0].Position)
}

// TestNextSheetRollover checks that advancing past a sheet's last beat
// rolls the cursor onto the next sheet at beat 0.
func (s *AnimationSuite) TestNextSheetRollover() {
	c0 := &animcmd.Chain{}
	c0.Append(animcmd.NewMove(2, geom.FromSteps(2, 0), geom.DirN))
	c1 := &animcmd.Chain{}
	c1.Append(animcmd.NewMove(2, geom.FromSteps(0, 2), geom.DirE))

	sheet0 := buildSheet(2, []*animcmd.Chain{c0}, []geom.Coord{geom.FromSteps(2, 0)})
	sheet1 := buildSheet(2, []*animcmd.Chain{c1}, []geom.Coord{geom.FromSteps(2, 2)})
	a := anim.NewAnimation(
		[]*anim.AnimateSheet{sheet0, sheet1},
		[][]geom.Coord{{geom.Coord{}}, {geom.FromSteps(2, 0)}},
		1,
	)

	require.True(s.T(), a.NextBeat())
	require.True(s.T(), a.NextBeat()) // reaches sheet 0's final frame (beat 2)
	require.True(s.T(), a.NextBeat()) // rolls onto sheet 1, beat 0
	snap := a.Current()
	require.Equal(s.T(), 1, snap.Sheet)
	require.Equal(s.T(), 0, snap.Beat)
	require.Equal(s.T(), geom.FromSteps(2, 0), snap.Marchers[0].Position)
}

// TestPrevSheetRollback checks that PrevBeat at beat 0 lands on the
// previous sheet's last beat, restoring position from its cached
// post-chain position.
func (s *AnimationSuite) TestPrevSheetRollback() {
	c0 := &animcmd.Chain{}
	c0.Append(animcmd.NewMove(2, geom.FromSteps(2, 0), geom.DirN))
	c1 := &animcmd.Chain{}
	c1.Append(animcmd.NewMove(2, geom.FromSteps(0, 2), geom.DirE))

	sheet0 := buildSheet(2, []*animcmd.Chain{c0}, []geom.Coord{geom.FromSteps(2, 0)})
	sheet1 := buildSheet(2, []*animcmd.Chain{c1}, []geom.Coord{geom.FromSteps(2, 2)})
	a := anim.NewAnimation(
		[]*anim.AnimateSheet{sheet0, sheet1},
		[][]geom.Coord{{geom.Coord{}}, {geom.FromSteps(2, 0)}},
		1,
	)
	a.GotoSheet(1)
	require.True(s.T(), a.PrevBeat())
	snap := a.Current()
	require.Equal(s.T(), 0, snap.Sheet)
	require.Equal(s.T(), 2, snap.Beat)
	require.Equal(s.T(), geom.FromSteps(2, 0), snap.Marchers[0].Position)
}

// TestCollisionDetection checks pairwise proximity flagging under the
// SHOW policy (§4.5).
func (s *AnimationSuite) TestCollisionDetection() {
	c0 := &animcmd.Chain{}
	c0.Append(animcmd.NewHold(4, geom.DirN))
	c1 := &animcmd.Chain{}
	c1.Append(animcmd.NewHold(4, geom.DirN))

	sheet := buildSheet(4, []*animcmd.Chain{c0, c1}, []geom.Coord{geom.Coord{}, geom.Coord{}})
	a := anim.NewAnimation(
		[]*anim.AnimateSheet{sheet},
		[][]geom.Coord{{geom.Coord{}, geom.Coord{}}},
		2,
	)
	a.EnableCollisions(anim.CollisionShow)
	snap := a.Current()
	require.True(s.T(), snap.Marchers[0].Colliding)
	require.True(s.T(), snap.Marchers[1].Colliding)
}

// TestNoCollisionWhenPolicyNone checks CollisionNone suppresses the
// flag even when marchers coincide.
func (s *AnimationSuite) TestNoCollisionWhenPolicyNone() {
	c0 := &animcmd.Chain{}
	c0.Append(animcmd.NewHold(4, geom.DirN))
	c1 := &animcmd.Chain{}
	c1.Append(animcmd.NewHold(4, geom.DirN))

	sheet := buildSheet(4, []*animcmd.Chain{c0, c1}, []geom.Coord{geom.Coord{}, geom.Coord{}})
	a := anim.NewAnimation(
		[]*anim.AnimateSheet{sheet},
		[][]geom.Coord{{geom.Coord{}, geom.Coord{}}},
		2,
	)
	snap := a.Current()
	require.False(s.T(), snap.Marchers[0].Colliding)
}

func TestAnimationSuite(t *testing.T) {
	suite.Run(t, new(AnimationSuite))
}
