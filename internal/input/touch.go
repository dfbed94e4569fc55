package input

import "github.com/chewxy/math32"

// TouchOptions tunes the gesture translator.
type TouchOptions struct {
	LookSpeed float32 `yaml:"look_speed"` // radians per pixel of one-finger drag
	MoveScale float32 `yaml:"move_scale"` // axis units per pixel of two-finger drag
	Deadzone  float32 `yaml:"deadzone"`   // axis magnitude below which movement is zero
}

// DefaultTouchOptions returns the phone tuning: 0.0025 rad/px look, a full axis
// after 120 px of two-finger drag and a 0.03 deadzone.
func DefaultTouchOptions() TouchOptions {
	return TouchOptions{LookSpeed: 0.0025, MoveScale: 1.0 / 120, Deadzone: 0.03}
}

type pointer struct {
	id   int
	x, y float32
}

// Touch translates pointer events into look deltas and move axes.
// One pointer drags the view. Two pointers move: each event maps the change of
// their midpoint to strafe/forward axes, so faster drags walk faster.
// Releasing every pointer stops movement.
type Touch struct {
	opts     TouchOptions
	pointers []pointer // in press order

	midX, midY float32
	hasMid     bool

	lookYaw   float32
	lookPitch float32
	moveX     float32 // strafe axis
	moveZ     float32 // forward axis
}

// NewTouch returns a translator. Zero option fields take defaults.
func NewTouch(opts TouchOptions) *Touch {
	d := DefaultTouchOptions()
	if opts.LookSpeed <= 0 {
		opts.LookSpeed = d.LookSpeed
	}
	if opts.MoveScale <= 0 {
		opts.MoveScale = d.MoveScale
	}
	if opts.Deadzone < 0 {
		opts.Deadzone = d.Deadzone
	}
	return &Touch{opts: opts}
}

// Down registers a new pointer.
func (t *Touch) Down(id int, x, y float32) {
	if t.find(id) >= 0 {
		return
	}
	t.pointers = append(t.pointers, pointer{id: id, x: x, y: y})
	if len(t.pointers) == 2 {
		t.midX, t.midY = t.mid()
		t.hasMid = true
	}
}

// Move updates a pointer position and emits look or move input.
func (t *Touch) Move(id int, x, y float32) {
	i := t.find(id)
	if i < 0 {
		return
	}
	p := &t.pointers[i]
	dx, dy := x-p.x, y-p.y
	p.x, p.y = x, y

	if len(t.pointers) == 1 {
		t.lookYaw -= dx * t.opts.LookSpeed
		t.lookPitch -= dy * t.opts.LookSpeed
		return
	}
	mx, my := t.mid()
	if t.hasMid {
		t.moveX = t.axis(mx - t.midX)
		t.moveZ = t.axis(-(my - t.midY))
	}
	t.midX, t.midY = mx, my
	t.hasMid = true
}

// Up removes a pointer. With no pointers left the move axes reset to zero.
func (t *Touch) Up(id int) {
	i := t.find(id)
	if i < 0 {
		return
	}
	t.pointers = append(t.pointers[:i], t.pointers[i+1:]...)
	if len(t.pointers) == 0 {
		t.moveX, t.moveZ = 0, 0
		t.hasMid = false
	}
}

// Active returns the number of pointers currently down.
func (t *Touch) Active() int {
	return len(t.pointers)
}

// Frame returns the accumulated intent and clears the look deltas.
// The move axes persist until the next two-finger event or full release.
func (t *Touch) Frame() Frame {
	f := Frame{
		Forward:   t.moveZ,
		Strafe:    t.moveX,
		LookYaw:   t.lookYaw,
		LookPitch: t.lookPitch,
	}
	t.lookYaw, t.lookPitch = 0, 0
	return f
}

func (t *Touch) axis(px float32) float32 {
	v := clampUnit(px * t.opts.MoveScale)
	if math32.Abs(v) < t.opts.Deadzone {
		return 0
	}
	return v
}

// mid is the midpoint of the first two pointers.
func (t *Touch) mid() (float32, float32) {
	a, b := t.pointers[0], t.pointers[1]
	return (a.x + b.x) / 2, (a.y + b.y) / 2
}

func (t *Touch) find(id int) int {
	for i := range t.pointers {
		if t.pointers[i].id == id {
			return i
		}
	}
	return -1
}

// Point is one pointer as reported by a platform that polls touch state.
type Point struct {
	ID   int
	X, Y float32
}

// Sync turns a polled pointer snapshot into Down/Move/Up events: pointers that
// disappeared are released, new ones pressed and those that moved are moved.
// A pointer that did not move emits nothing, so held two-finger drags keep
// their last axes.
func (t *Touch) Sync(points []Point) {
	for i := len(t.pointers) - 1; i >= 0; i-- {
		id := t.pointers[i].id
		if !containsPoint(points, id) {
			t.Up(id)
		}
	}
	for _, p := range points {
		i := t.find(p.ID)
		switch {
		case i < 0:
			t.Down(p.ID, p.X, p.Y)
		case t.pointers[i].x != p.X || t.pointers[i].y != p.Y:
			t.Move(p.ID, p.X, p.Y)
		}
	}
}

func containsPoint(points []Point, id int) bool {
	for _, p := range points {
		if p.ID == id {
			return true
		}
	}
	return false
}
