package viewer

import (
	"cityscape/internal/input"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// keys reads the movement keys: arrows or WASD walk and turn, Q/E strafe.
func keys() input.Keys {
	down := rl.IsKeyDown
	return input.Keys{
		Up:          down(rl.KeyUp) || down(rl.KeyW),
		Down:        down(rl.KeyDown) || down(rl.KeyS),
		Left:        down(rl.KeyLeft) || down(rl.KeyA),
		Right:       down(rl.KeyRight) || down(rl.KeyD),
		StrafeLeft:  down(rl.KeyQ),
		StrafeRight: down(rl.KeyE),
	}
}

// touches polls raylib's touch points.
func touches() []input.Point {
	n := rl.GetTouchPointCount()
	if n == 0 {
		return nil
	}
	out := make([]input.Point, 0, n)
	for i := int32(0); i < n; i++ {
		p := rl.GetTouchPosition(i)
		out = append(out, input.Point{ID: int(rl.GetTouchPointId(i)), X: p.X, Y: p.Y})
	}
	return out
}

// mouseLook turns the view with the mouse while the cursor is captured.
func mouseLook(speed float32) input.Frame {
	if !rl.IsCursorHidden() {
		return input.Frame{}
	}
	d := rl.GetMouseDelta()
	return input.Frame{LookYaw: -d.X * speed, LookPitch: -d.Y * speed}
}
