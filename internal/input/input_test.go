package input

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestKeysFrame(t *testing.T) {
	cases := []struct {
		name string
		keys Keys
		want Frame
	}{
		{"idle", Keys{}, Frame{}},
		{"walk", Keys{Up: true}, Frame{Forward: 1}},
		{"opposite cancel", Keys{Up: true, Down: true}, Frame{}},
		{"turn right", Keys{Right: true}, Frame{Turn: -1}},
		{"strafe and back", Keys{Down: true, StrafeLeft: true}, Frame{Forward: -1, Strafe: -1}},
	}
	for _, c := range cases {
		if got := c.keys.Frame(); got != c.want {
			t.Fatalf("%s: got %+v want %+v", c.name, got, c.want)
		}
	}
}

func TestMergeClampsAxes(t *testing.T) {
	f := Frame{Forward: 1, LookYaw: 0.1}.Merge(Frame{Forward: 0.5, LookYaw: 0.2})
	if f.Forward != 1 || !approx(f.LookYaw, 0.3) {
		t.Fatalf("got %+v", f)
	}
}

func TestOneFingerLooks(t *testing.T) {
	tc := NewTouch(TouchOptions{})
	tc.Down(1, 100, 100)
	tc.Move(1, 140, 80)
	f := tc.Frame()
	if !approx(f.LookYaw, -40*0.0025) || !approx(f.LookPitch, 20*0.0025) {
		t.Fatalf("look = (%v, %v)", f.LookYaw, f.LookPitch)
	}
	if f.Forward != 0 || f.Strafe != 0 {
		t.Fatalf("one finger moved: %+v", f)
	}
	if again := tc.Frame(); again.LookYaw != 0 || again.LookPitch != 0 {
		t.Fatalf("look deltas not consumed: %+v", again)
	}
}

func TestTwoFingersMoveWithDeadzoneAndClamp(t *testing.T) {
	tc := NewTouch(TouchOptions{})
	tc.Down(1, 100, 300)
	tc.Down(2, 200, 300)

	// midpoint moves 1 px: 1/120 is inside the deadzone
	tc.Move(1, 102, 300)
	if f := tc.Frame(); f.Strafe != 0 || f.Forward != 0 {
		t.Fatalf("inside deadzone: %+v", f)
	}

	// midpoint moves up 60 px: half a forward axis
	tc.Move(2, 200, 180)
	if f := tc.Frame(); !approx(f.Forward, 0.5) || f.Strafe != 0 {
		t.Fatalf("got %+v want forward 0.5", f)
	}

	tc.Move(1, 102, -700)
	if f := tc.Frame(); f.Forward != 1 {
		t.Fatalf("forward not clamped: %v", f.Forward)
	}

	tc.Up(1)
	if f := tc.Frame(); f.Forward != 1 {
		t.Fatalf("one pointer left should keep moving: %+v", f)
	}
	tc.Up(2)
	if f := tc.Frame(); f.Forward != 0 || f.Strafe != 0 || tc.Active() != 0 {
		t.Fatalf("release did not stop: %+v", f)
	}
}

func TestSyncDiffsPolledPointers(t *testing.T) {
	tc := NewTouch(TouchOptions{})
	tc.Sync([]Point{{ID: 7, X: 10, Y: 10}})
	if tc.Active() != 1 {
		t.Fatalf("active = %d want 1", tc.Active())
	}
	tc.Sync([]Point{{ID: 7, X: 20, Y: 10}})
	if f := tc.Frame(); !approx(f.LookYaw, -10*0.0025) {
		t.Fatalf("look yaw = %v", f.LookYaw)
	}

	tc.Sync([]Point{{ID: 7, X: 20, Y: 10}, {ID: 8, X: 40, Y: 10}})
	// one finger moves 120 px up: the midpoint moves 60
	tc.Sync([]Point{{ID: 7, X: 20, Y: -110}, {ID: 8, X: 40, Y: 10}})
	if f := tc.Frame(); !approx(f.Forward, 0.5) {
		t.Fatalf("forward = %v want 0.5", f.Forward)
	}
	// unchanged snapshot keeps the axes
	tc.Sync([]Point{{ID: 7, X: 20, Y: -110}, {ID: 8, X: 40, Y: 10}})
	if f := tc.Frame(); !approx(f.Forward, 0.5) {
		t.Fatalf("held drag lost its axis: %v", f.Forward)
	}
	tc.Sync(nil)
	if f := tc.Frame(); f.Forward != 0 || tc.Active() != 0 {
		t.Fatalf("release did not stop: %+v", f)
	}
}
