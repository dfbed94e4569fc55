// Package scene ties the engine together for one viewer: the frozen layout, the
// player, the fireflies and the gaze overlay. Update is the per-frame step; every
// subsystem runs guarded so a fault in one skips it for that frame only.
package scene

import (
	"fmt"

	"cityscape/internal/haiku"
	"cityscape/internal/input"
	"cityscape/internal/locomotion"
	"cityscape/internal/logger"
	"cityscape/internal/mapgen"
	"cityscape/internal/particles"
	"cityscape/internal/physics"
	"github.com/chewxy/math32"
)

// Overlay is the text shown next to the object under gaze. X/Y is the anchor in
// pixels, already lifted above the object's projected center.
type Overlay struct {
	Visible bool
	Text    string
	Target  int
	X, Y    float32
}

// Scene is the per-viewer state.
type Scene struct {
	Layout    *mapgen.Layout
	Params    locomotion.Params
	Player    locomotion.State
	Haiku     *haiku.Table
	Fireflies *particles.System
	FOV       float32

	Overlay Overlay
	Move    physics.MoveResult
	Wrapped bool
	Time    float32

	faults map[string]int
	log    *logger.Logger
}

// New places the player at the layout's spawn pose.
func New(layout *mapgen.Layout, params locomotion.Params, table *haiku.Table, flies *particles.System, log *logger.Logger) *Scene {
	s := &Scene{
		Params:    params.Sanitize(),
		Haiku:     table,
		Fireflies: flies,
		FOV:       70,
		faults:    make(map[string]int),
		log:       log,
	}
	s.Reset(layout)
	return s
}

// Reset swaps in a new layout and moves the player to its spawn.
func (s *Scene) Reset(layout *mapgen.Layout) {
	s.Layout = layout
	s.Player = locomotion.State{Position: layout.Spawn, Yaw: layout.SpawnYaw}
	s.Overlay = Overlay{Target: -1}
}

// Camera returns the camera for the current player pose.
func (s *Scene) Camera(aspect float32) Camera {
	return Camera{Eye: s.Player.Position, Yaw: s.Player.Yaw, Pitch: s.Player.Pitch, FOV: s.FOV, Aspect: aspect}
}

// Update advances one frame. width and height are the viewport size used to
// place the overlay; pass zero when there is no screen projection.
func (s *Scene) Update(dt float32, f input.Frame, width, height float32) {
	p := s.Params
	dt = p.ClampDt(dt)
	s.Time += dt

	s.guard("heading", func() { p.Turn(&s.Player, f, dt) })
	s.guard("movement", func() { s.Move = p.Move(&s.Player, s.Layout.Occupancy, f, dt) })
	s.guard("floor", func() { p.Floor(&s.Player) })
	s.guard("wrap", func() { s.Wrapped = p.Wrap(&s.Player, s.Layout.Occupancy, s.Layout.WrapLimit) })
	s.guard("fireflies", func() { s.Fireflies.Update(dt, s.Player.Position) })
	s.guard("gaze", func() { s.gaze(width, height) })
}

// gaze recomputes the overlay from scratch.
func (s *Scene) gaze(width, height float32) {
	s.Overlay = Overlay{Target: -1}
	fwd, _ := s.Player.Basis()
	target, ok := s.Params.Select(s.Player.Position, fwd, s.Layout.Objects)
	if !ok {
		return
	}
	s.Overlay.Target = target.Index
	text, ok := s.Haiku.Lookup(s.Layout.Objects[target.Index].Key)
	if !ok {
		return
	}
	s.Overlay.Text = text
	s.Overlay.Visible = true
	if width <= 0 || height <= 0 {
		return
	}
	x, y, inFront := s.Camera(width / height).Project(target.Center)
	if !inFront {
		s.Overlay.Visible = false
		return
	}
	sx, sy := ToScreen(x, y, width, height)
	s.Overlay.X, s.Overlay.Y = sx, sy-s.Params.AnchorLift
}

// guard runs fn and turns a panic into a logged fault for that subsystem.
func (s *Scene) guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.faults[name]++
			if n := s.faults[name]; n == 1 || n%300 == 0 {
				s.log.Logf("scene: %s skipped (%d faults): %v", name, n, r)
			}
		}
	}()
	fn()
}

// Faults returns how many frames each subsystem has skipped.
func (s *Scene) Faults() map[string]int {
	out := make(map[string]int, len(s.faults))
	for k, v := range s.faults {
		out[k] = v
	}
	return out
}

// Status is a one-line position readout for overlays and the terminal viewer.
func (s *Scene) Status() string {
	p := s.Player.Position
	return fmt.Sprintf("x %.1f  z %.1f  yaw %.0f°  %s", p[0], p[2], s.Player.Yaw*180/math32.Pi, s.Move)
}
