package animcmd

import "github.com/bdwalton/ccanim/geom"

// Hold is "mark time": stand still, keeping the beat, facing dir.
type Hold struct {
	numbeats int
	beat     int
	dir      float64
}

// NewHold builds a Hold of numbeats beats, facing dir degrees.
func NewHold(numbeats int, dir float64) *Hold {
	return &Hold{numbeats: numbeats, dir: geom.Normalize360(dir)}
}

func (h *Hold) NumBeats() int { return h.numbeats }
func (h *Hold) Beat() int     { return h.beat }

func (h *Hold) Begin(pt *geom.Coord) bool {
	h.beat = 0
	return h.numbeats != 0
}

func (h *Hold) End(pt *geom.Coord) bool {
	h.beat = h.numbeats
	return h.numbeats != 0
}

func (h *Hold) NextBeat(pt *geom.Coord) bool {
	if h.beat >= h.numbeats {
		return false
	}
	h.beat++
	return h.beat < h.numbeats
}

func (h *Hold) PrevBeat(pt *geom.Coord) bool {
	if h.beat <= 0 {
		return false
	}
	h.beat--
	return h.beat > 0
}

func (h *Hold) ApplyForward(pt *geom.Coord)  {}
func (h *Hold) ApplyBackward(pt *geom.Coord) {}

func (h *Hold) Clip(beats int) Command { return NewHold(beats, h.dir) }

func (h *Hold) Direction() float64       { return geom.Direction8(h.dir) }
func (h *Hold) RealDirection() float64   { return h.dir }
func (h *Hold) MotionDirection() float64 { return h.dir }
