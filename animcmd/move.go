package animcmd

import "github.com/bdwalton/ccanim/geom"

// Move is a straight-line displacement of delta over numbeats beats.
// facing is the facing direction to report; it equals the vector's
// own direction for an ordinary march but is overridden (typically to
// the opposite) for a backwards march — see MotionDirection.
type Move struct {
	numbeats int
	beat     int
	delta    geom.Coord
	facing   float64
}

// NewMove builds a Move of numbeats beats displacing by delta, facing
// in direction facing degrees.
func NewMove(numbeats int, delta geom.Coord, facing float64) *Move {
	return &Move{numbeats: numbeats, delta: delta, facing: geom.Normalize360(facing)}
}

func (m *Move) NumBeats() int { return m.numbeats }
func (m *Move) Beat() int     { return m.beat }

func (m *Move) Begin(pt *geom.Coord) bool {
	m.beat = 0
	return m.numbeats != 0
}

func (m *Move) End(pt *geom.Coord) bool {
	m.beat = m.numbeats
	return m.numbeats != 0
}

func (m *Move) posAt(beat int) geom.Coord {
	return geom.Coord{
		X: interpStep(beat, m.numbeats, m.delta.X),
		Y: interpStep(beat, m.numbeats, m.delta.Y),
	}
}

func (m *Move) NextBeat(pt *geom.Coord) bool {
	if m.beat >= m.numbeats {
		return false
	}
	d := m.posAt(m.beat + 1).Sub(m.posAt(m.beat))
	m.beat++
	*pt = pt.Add(d)
	return m.beat < m.numbeats
}

func (m *Move) PrevBeat(pt *geom.Coord) bool {
	if m.beat <= 0 {
		return false
	}
	d := m.posAt(m.beat - 1).Sub(m.posAt(m.beat))
	m.beat--
	*pt = pt.Add(d)
	return m.beat > 0
}

func (m *Move) ApplyForward(pt *geom.Coord) {
	*pt = pt.Add(m.delta)
}

func (m *Move) ApplyBackward(pt *geom.Coord) {
	*pt = pt.Sub(m.delta)
}

// Clip truncates the move to its first beats beats, scaling delta to
// the partial displacement actually covered in that time (not the
// full displacement compressed into fewer beats).
func (m *Move) Clip(beats int) Command {
	return NewMove(beats, m.posAt(beats), m.facing)
}

func (m *Move) Direction() float64     { return geom.Direction8(m.facing) }
func (m *Move) RealDirection() float64 { return m.facing }

// MotionDirection is the vector's own direction of travel, which for
// a backwards march is the opposite of the facing direction.
func (m *Move) MotionDirection() float64 { return m.delta.Direction() }
