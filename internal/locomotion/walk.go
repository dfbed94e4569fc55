package locomotion

import (
	"cityscape/internal/geom"
	"cityscape/internal/input"
	"cityscape/internal/physics"
	"github.com/chewxy/math32"
)

// State is the player pose. Position is the eye.
type State struct {
	Position geom.Vec3
	Yaw      float32
	Pitch    float32
}

// Basis returns the horizontal forward and right vectors of the current heading.
func (s State) Basis() (forward, right geom.Vec3) {
	return geom.Basis(s.Yaw)
}

// View returns the unit look direction including pitch.
func (s State) View() geom.Vec3 {
	fwd, _ := s.Basis()
	c := math32.Cos(s.Pitch)
	return geom.Vec3{fwd[0] * c, math32.Sin(s.Pitch), fwd[2] * c}
}

// ClampDt bounds a frame delta to [0, MaxDt].
func (p Params) ClampDt(dt float32) float32 {
	if !(dt > 0) {
		return 0
	}
	return math32.Min(dt, p.MaxDt)
}

// Turn applies the heading input: keyboard turn scaled by dt plus pointer look.
// Pitch only changes through look input and stays within the pitch limit.
func (p Params) Turn(s *State, f input.Frame, dt float32) {
	s.Yaw += p.TurnRate*dt*f.Turn + f.LookYaw
	s.Pitch = math32.Max(-p.PitchLimit, math32.Min(p.PitchLimit, s.Pitch+f.LookPitch))
}

// Delta returns the displacement requested by f for this frame. Combined inputs
// longer than one are normalized so diagonals are not faster; analog input below
// full deflection keeps its magnitude.
func (p Params) Delta(s State, f input.Frame, dt float32) geom.Vec3 {
	fwd, right := s.Basis()
	dir := geom.Add(geom.Scale(fwd, f.Forward), geom.Scale(right, f.Strafe))
	if geom.Length(dir) > 1 {
		dir = geom.Normalize(dir)
	}
	return geom.Scale(dir, p.Speed*dt)
}

// Move resolves the frame's displacement against occ with sliding.
func (p Params) Move(s *State, occ *physics.Occupancy, f input.Frame, dt float32) physics.MoveResult {
	delta := p.Delta(*s, f, dt)
	var res physics.MoveResult
	s.Position, res = occ.Sweep(s.Position, delta, p.PlayerRadius, p.PlayerRadius)
	return res
}

// Floor keeps the eye at or above MinHeight.
func (p Params) Floor(s *State) {
	if s.Position[1] < p.MinHeight {
		s.Position[1] = p.MinHeight
	}
}

// Wrap folds x and z into [-limit, limit) once the player is farther than
// limit*WrapHysteresis from every box center. It never wraps with an empty list.
func (p Params) Wrap(s *State, occ *physics.Occupancy, limit float32) bool {
	if limit <= 0 {
		return false
	}
	nearest, ok := occ.NearestCenter2D(s.Position)
	if !ok || nearest <= limit*p.WrapHysteresis {
		return false
	}
	s.Position[0] = geom.Wrap(s.Position[0], limit)
	s.Position[2] = geom.Wrap(s.Position[2], limit)
	return true
}

// Step runs heading, movement, floor clamp and wrap for one frame.
// Callers that need per-subsystem fault isolation call the parts themselves.
func (p Params) Step(s *State, occ *physics.Occupancy, limit float32, f input.Frame, dt float32) physics.MoveResult {
	dt = p.ClampDt(dt)
	p.Turn(s, f, dt)
	res := p.Move(s, occ, f, dt)
	p.Floor(s)
	p.Wrap(s, occ, limit)
	return res
}
