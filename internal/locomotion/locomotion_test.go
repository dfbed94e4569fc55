package locomotion

import (
	"testing"

	"cityscape/internal/geom"
	"cityscape/internal/input"
	"cityscape/internal/mapgen"
	"cityscape/internal/physics"
	"github.com/chewxy/math32"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestWalkIntoWallStopsShortAndSlides(t *testing.T) {
	p := DefaultParams()
	occ := physics.NewOccupancy()
	_ = occ.Add(geom.Box{Min: geom.Vec3{-0.5, 0, -3}, Max: geom.Vec3{0.5, 4, -2}}, 0)
	occ.Freeze()

	s := State{Position: geom.Vec3{0, 1.8, 0}}
	var res physics.MoveResult
	for i := 0; i < 60; i++ {
		res = p.Step(&s, occ, 0, input.Frame{Forward: 1}, 1.0/60)
	}
	z := s.Position[2]
	if z < -2+p.PlayerRadius || z > -2+p.PlayerRadius+0.35 {
		t.Fatalf("z = %v, want within one step short of %v", z, -2+p.PlayerRadius)
	}
	if s.Position[0] != 0 {
		t.Fatalf("x drifted to %v", s.Position[0])
	}
	if res != physics.MoveSlideX {
		t.Fatalf("last move = %v want slide-x", res)
	}
}

func TestTurnScalesWithDtAndClampsPitch(t *testing.T) {
	p := DefaultParams()
	var s State
	p.Turn(&s, input.Frame{Turn: 1}, 0.5)
	if !near(s.Yaw, 0.9) {
		t.Fatalf("yaw = %v want 0.9", s.Yaw)
	}
	p.Turn(&s, input.Frame{LookPitch: 5}, 0)
	if s.Pitch != p.PitchLimit {
		t.Fatalf("pitch = %v want %v", s.Pitch, p.PitchLimit)
	}
	p.Turn(&s, input.Frame{LookPitch: -10}, 0)
	if s.Pitch != -p.PitchLimit {
		t.Fatalf("pitch = %v want %v", s.Pitch, -p.PitchLimit)
	}
}

func TestDiagonalIsNotFaster(t *testing.T) {
	p := DefaultParams()
	d := p.Delta(State{}, input.Frame{Forward: 1, Strafe: 1}, 1/p.Speed)
	if !near(geom.Length(d), 1) {
		t.Fatalf("diagonal length %v want 1", geom.Length(d))
	}
	half := p.Delta(State{}, input.Frame{Forward: 0.5}, 1/p.Speed)
	if !near(half[2], -0.5) {
		t.Fatalf("analog forward = %v want -0.5", half)
	}
}

func TestClampDt(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		in, want float32
	}{
		{0.016, 0.016},
		{0.5, 0.1},
		{-1, 0},
		{math32.NaN(), 0},
	}
	for _, c := range cases {
		if got := p.ClampDt(c.in); got != c.want {
			t.Fatalf("ClampDt(%v) = %v want %v", c.in, got, c.want)
		}
	}
}

func TestFloor(t *testing.T) {
	p := DefaultParams()
	s := State{Position: geom.Vec3{0, 0.2, 0}}
	p.Floor(&s)
	if s.Position[1] != p.MinHeight {
		t.Fatalf("y = %v want %v", s.Position[1], p.MinHeight)
	}
}

func TestWrapOnlyWhenIsolated(t *testing.T) {
	p := DefaultParams()
	occ := physics.NewOccupancy()
	_ = occ.Add(geom.BoxAt(geom.Vec3{0, 1, 0}, geom.Vec3{2, 2, 2}), 0)

	s := State{Position: geom.Vec3{50, 1.8, 0}}
	if p.Wrap(&s, occ, 60) {
		t.Fatalf("wrapped at distance 50 with hysteresis limit 54")
	}
	s.Position = geom.Vec3{70, 1.8, 10}
	if !p.Wrap(&s, occ, 60) {
		t.Fatalf("did not wrap at distance 70")
	}
	if s.Position[0] != -50 || s.Position[2] != 10 {
		t.Fatalf("wrapped to %v want (-50, _, 10)", s.Position)
	}

	empty := physics.NewOccupancy()
	s.Position = geom.Vec3{500, 1.8, 0}
	if p.Wrap(&s, empty, 60) || s.Position[0] != 500 {
		t.Fatalf("wrapped with an empty occupancy list")
	}
}

func cube(center geom.Vec3) mapgen.Object {
	return mapgen.Object{Box: geom.BoxAt(center, geom.Vec3{1, 1, 1})}
}

func TestSelectDistanceBoundary(t *testing.T) {
	p := DefaultParams()
	eye := geom.Vec3{0, 1.5, 0}
	fwd := geom.Vec3{0, 0, -1}

	if _, ok := p.Select(eye, fwd, []mapgen.Object{cube(geom.Vec3{0, 1.5, -6})}); !ok {
		t.Fatalf("object exactly at max distance was rejected")
	}
	if _, ok := p.Select(eye, fwd, []mapgen.Object{cube(geom.Vec3{0, 1.5, -6.01})}); ok {
		t.Fatalf("object beyond max distance was selected")
	}
}

func TestSelectConeBoundary(t *testing.T) {
	eye := geom.Vec3{}
	fwd := geom.Vec3{0, 0, -1}
	obj := cube(geom.Vec3{2, 0, -2.2})
	dot := geom.Dot(fwd, geom.Normalize(obj.Box.Center()))

	p := DefaultParams()
	p.MinDot = dot
	if _, ok := p.Select(eye, fwd, []mapgen.Object{obj}); !ok {
		t.Fatalf("object on the cone boundary was rejected")
	}
	p.MinDot = dot + 1e-4
	if _, ok := p.Select(eye, fwd, []mapgen.Object{obj}); ok {
		t.Fatalf("object outside the cone was selected")
	}
}

func TestSelectClosestAndTieKeepsFirst(t *testing.T) {
	p := DefaultParams()
	eye := geom.Vec3{}
	fwd := geom.Vec3{0, 0, -1}
	objects := []mapgen.Object{
		cube(geom.Vec3{0, 0, -5}),
		cube(geom.Vec3{1, 0, -3}),
		cube(geom.Vec3{-1, 0, -3}),
		cube(geom.Vec3{0, 0, 4}), // behind
		{Box: geom.Box{Min: geom.Vec3{0, 0, -1}, Max: geom.Vec3{math32.NaN(), 1, -0.5}}},
	}
	for i := 0; i < 3; i++ {
		got, ok := p.Select(eye, fwd, objects)
		if !ok || got.Index != 1 {
			t.Fatalf("run %d: got %+v, %v want index 1", i, got, ok)
		}
	}
}

func TestViewIncludesPitch(t *testing.T) {
	s := State{Pitch: math32.Pi / 2}
	v := s.View()
	if !near(v[1], 1) || !near(geom.Length(v), 1) {
		t.Fatalf("view = %v", v)
	}
}
