package animcmd

import (
	"math"

	"github.com/bdwalton/ccanim/geom"
)

// Rotate sweeps a marcher along an arc of radius (in steps) centred
// on center, from angStart to angEnd degrees, over numbeats beats.
// backwards marks the marcher as rotating tail-first (facing away
// from, rather than into, the direction of travel).
type Rotate struct {
	numbeats           int
	beat               int
	center             geom.Coord
	radius             float64
	angStart, angEnd   float64
	backwards          bool
}

// NewRotate builds a Rotate command.
func NewRotate(numbeats int, center geom.Coord, radius, angStart, angEnd float64, backwards bool) *Rotate {
	return &Rotate{
		numbeats:  numbeats,
		center:    center,
		radius:    radius,
		angStart:  angStart,
		angEnd:    angEnd,
		backwards: backwards,
	}
}

func (r *Rotate) NumBeats() int { return r.numbeats }
func (r *Rotate) Beat() int     { return r.beat }

func (r *Rotate) Begin(pt *geom.Coord) bool {
	r.beat = 0
	return r.numbeats != 0
}

func (r *Rotate) End(pt *geom.Coord) bool {
	r.beat = r.numbeats
	return r.numbeats != 0
}

// thetaAt returns the interpolated angle, in degrees, at the given
// beat.
func (r *Rotate) thetaAt(beat int) float64 {
	if r.numbeats == 0 {
		return r.angStart
	}
	f := float64(beat) / float64(r.numbeats)
	return r.angStart + f*(r.angEnd-r.angStart)
}

func (r *Rotate) posAt(beat int) geom.Coord {
	th := r.thetaAt(beat) * math.Pi / 180
	x, y := r.center.Steps()
	x += r.radius * math.Cos(th)
	y -= r.radius * math.Sin(th)
	return geom.FromSteps(x, y)
}

func (r *Rotate) NextBeat(pt *geom.Coord) bool {
	if r.beat >= r.numbeats {
		return false
	}
	d := r.posAt(r.beat + 1).Sub(r.posAt(r.beat))
	r.beat++
	*pt = pt.Add(d)
	return r.beat < r.numbeats
}

func (r *Rotate) PrevBeat(pt *geom.Coord) bool {
	if r.beat <= 0 {
		return false
	}
	d := r.posAt(r.beat - 1).Sub(r.posAt(r.beat))
	r.beat--
	*pt = pt.Add(d)
	return r.beat > 0
}

func (r *Rotate) ApplyForward(pt *geom.Coord) {
	*pt = pt.Add(r.posAt(r.numbeats).Sub(r.posAt(0)))
}

func (r *Rotate) ApplyBackward(pt *geom.Coord) {
	*pt = pt.Sub(r.posAt(r.numbeats).Sub(r.posAt(0)))
}

// Clip truncates the rotation to its first beats beats, stopping the
// sweep at the angle actually reached in that time.
func (r *Rotate) Clip(beats int) Command {
	return NewRotate(beats, r.center, r.radius, r.angStart, r.thetaAt(beats), r.backwards)
}

// tangentDirection returns the direction of travel along the arc at
// the command's current beat.
func (r *Rotate) tangentDirection() float64 {
	sign := 1.0
	if r.angEnd < r.angStart {
		sign = -1.0
	}
	th := r.thetaAt(r.beat) * math.Pi / 180
	vx := -sign * math.Sin(th)
	vy := -sign * math.Cos(th)
	return geom.DirectionOf(vx, vy)
}

// Direction is the 8-way facing: the tangent direction, or its
// opposite for a backwards (tail-first) rotation.
func (r *Rotate) Direction() float64 { return geom.Direction8(r.RealDirection()) }

// RealDirection is the tangent direction of travel along the arc,
// flipped 180° when the marcher rotates tail-first — the same
// facing-override relationship Move.RealDirection has to
// Move.MotionDirection.
func (r *Rotate) RealDirection() float64 {
	td := r.tangentDirection()
	if r.backwards {
		return geom.Normalize360(td + 180)
	}
	return td
}

func (r *Rotate) MotionDirection() float64 { return r.tangentDirection() }
