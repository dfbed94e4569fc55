package physics

import (
	"cityscape/internal/geom"
	"github.com/chewxy/math32"
)

// MoveResult says which candidate position TryMove committed.
type MoveResult int

const (
	MoveFull MoveResult = iota
	MoveSlideX
	MoveSlideZ
	MoveBlocked
)

func (r MoveResult) String() string {
	switch r {
	case MoveFull:
		return "full"
	case MoveSlideX:
		return "slide-x"
	case MoveSlideZ:
		return "slide-z"
	default:
		return "blocked"
	}
}

// TryMove resolves one displacement of a player sphere against the occupancy list.
// Order: full delta, then X only, then Z only, then stay put. The Y component of
// delta only travels with the full move.
func (o *Occupancy) TryMove(pos, delta geom.Vec3, radius float32) (geom.Vec3, MoveResult) {
	if p := geom.Add(pos, delta); !o.Blocked(p, radius) {
		return p, MoveFull
	}
	if p := (geom.Vec3{pos[0] + delta[0], pos[1], pos[2]}); !o.Blocked(p, radius) {
		return p, MoveSlideX
	}
	if p := (geom.Vec3{pos[0], pos[1], pos[2] + delta[2]}); !o.Blocked(p, radius) {
		return p, MoveSlideZ
	}
	return pos, MoveBlocked
}

// Sweep applies delta in sub-steps no longer than maxStep, resolving each with TryMove.
// Sub-stepping keeps a fast player from skipping over thin volumes in one frame.
// The result is the outcome of the last sub-step.
func (o *Occupancy) Sweep(pos, delta geom.Vec3, radius, maxStep float32) (geom.Vec3, MoveResult) {
	length := geom.Length(delta)
	if length == 0 {
		return pos, MoveFull
	}
	steps := 1
	if maxStep > 0 && length > maxStep {
		steps = int(math32.Ceil(length / maxStep))
	}
	step := geom.Scale(delta, 1/float32(steps))
	res := MoveFull
	for i := 0; i < steps; i++ {
		pos, res = o.TryMove(pos, step, radius)
		if res == MoveBlocked {
			break
		}
	}
	return pos, res
}
