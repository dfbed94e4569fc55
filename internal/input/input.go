// Package input turns raw key state and touch pointers into a per-frame intent
// for the locomotion loop. It holds no platform types; the viewers feed it.
package input

import "github.com/chewxy/math32"

// Frame is the movement intent for one frame.
// Turn: +1 turns left, -1 right. Forward: +1 walks ahead. Strafe: +1 steps right.
// LookYaw/LookPitch are angle deltas in radians accumulated from pointer look.
type Frame struct {
	Turn      float32
	Forward   float32
	Strafe    float32
	LookYaw   float32
	LookPitch float32
}

// Idle reports whether the frame carries no input at all.
func (f Frame) Idle() bool {
	return f == Frame{}
}

// Keys is the held state of the movement keys.
type Keys struct {
	Up, Down, Left, Right bool
	StrafeLeft            bool
	StrafeRight           bool
}

// Frame maps held keys to an intent: up/down walk, left/right turn,
// strafe keys step sideways. Opposite keys cancel.
func (k Keys) Frame() Frame {
	var f Frame
	if k.Up {
		f.Forward++
	}
	if k.Down {
		f.Forward--
	}
	if k.Left {
		f.Turn++
	}
	if k.Right {
		f.Turn--
	}
	if k.StrafeRight {
		f.Strafe++
	}
	if k.StrafeLeft {
		f.Strafe--
	}
	return f
}

// Merge adds the intent of o to f, clamping the axes to [-1, 1].
func (f Frame) Merge(o Frame) Frame {
	return Frame{
		Turn:      clampUnit(f.Turn + o.Turn),
		Forward:   clampUnit(f.Forward + o.Forward),
		Strafe:    clampUnit(f.Strafe + o.Strafe),
		LookYaw:   f.LookYaw + o.LookYaw,
		LookPitch: f.LookPitch + o.LookPitch,
	}
}

func clampUnit(v float32) float32 {
	return math32.Max(-1, math32.Min(1, v))
}
