package mapgen

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"cityscape/internal/geom"
	"cityscape/internal/logger"
	"github.com/chewxy/math32"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func gridOptions() Options {
	o := DefaultOptions()
	o.Jitter = 0
	o.Panels.Count = 0
	return o
}

func TestBuildingsSkipRoadsAndShiftTowardThem(t *testing.T) {
	o := gridOptions()
	l := Generate(o, Sources{}, rand.New(rand.NewSource(3)), nil)

	if got := l.Count(KindBuilding); got != 81 {
		t.Fatalf("got %d buildings want 81", got)
	}
	shift := o.Spacing/2 - o.BuildingSize/2
	if !near(shift, 2.25) {
		t.Fatalf("shift = %v", shift)
	}
	for _, obj := range l.Objects {
		if obj.Kind != KindBuilding {
			continue
		}
		i := int(math32.Round(obj.Position[0]/o.Spacing + float32(o.Grid)/2))
		j := int(math32.Round(obj.Position[2]/o.Spacing + float32(o.Grid)/2))
		if ClassifyCell(i, j, o.RoadEvery).Road() {
			t.Fatalf("building %d on road cell (%d, %d)", obj.Index, i, j)
		}
		dx := obj.Position[0] - cellCenter(i, o.Grid, o.Spacing)
		dz := obj.Position[2] - cellCenter(j, o.Grid, o.Spacing)
		wx := RoadOffset(i%o.RoadEvery, o.RoadEvery, shift)
		wz := RoadOffset(j%o.RoadEvery, o.RoadEvery, shift)
		switch {
		case wx != 0 && wz != 0:
			xOnly := near(dx, wx) && near(dz, 0)
			zOnly := near(dx, 0) && near(dz, wz)
			if !xOnly && !zOnly {
				t.Fatalf("cell (%d, %d) shifted (%v, %v), want exactly one of (%v, %v)", i, j, dx, dz, wx, wz)
			}
		default:
			if !near(dx, wx) || !near(dz, wz) {
				t.Fatalf("cell (%d, %d) shifted (%v, %v) want (%v, %v)", i, j, dx, dz, wx, wz)
			}
		}
		if !near(obj.Position[1], o.BuildingSize/2) {
			t.Fatalf("building not resting on ground: y = %v", obj.Position[1])
		}
		if !near(obj.Box.Size()[0], o.BuildingSize+2*o.Margin) {
			t.Fatalf("box not expanded by margin: %v", obj.Box.Size())
		}
	}
}

func TestRoadOffset(t *testing.T) {
	cases := []struct {
		local int
		want  float32
	}{
		{1, -2.25},
		{2, 0},
		{3, 2.25},
	}
	for _, c := range cases {
		if got := RoadOffset(c.local, 4, 2.25); got != c.want {
			t.Fatalf("RoadOffset(%d) = %v want %v", c.local, got, c.want)
		}
	}
}

func TestScatterNeverOverlapsEarlierObjects(t *testing.T) {
	o := DefaultOptions()
	o.Panels.Count = 30
	src := Sources{
		Textures: []string{"images/a.png", "images/b.jpg"},
		Models: []ModelSource{
			{Source: "models/tree.glb", Min: geom.Vec3{-1, 0, -1}, Max: geom.Vec3{1, 5, 1}},
			{Source: "models/lamp.glb", Min: geom.Vec3{-0.2, -0.5, -0.2}, Max: geom.Vec3{0.2, 3, 0.2}},
		},
	}
	for seed := int64(1); seed <= 5; seed++ {
		l := Generate(o, src, rand.New(rand.NewSource(seed)), nil)
		if got := l.Count(KindModel) + l.Count(KindPanel); got != 34 {
			t.Fatalf("seed %d: got %d scattered objects want 34", seed, got)
		}
		for _, obj := range l.Objects {
			if obj.Kind == KindBuilding || obj.Fallback {
				continue
			}
			for _, prev := range l.Objects[:obj.Index] {
				if obj.Box.Overlaps(prev.Box) {
					t.Fatalf("seed %d: %s %d overlaps object %d", seed, obj.Kind, obj.Index, prev.Index)
				}
			}
		}
	}
}

func TestFallbackIsLogged(t *testing.T) {
	o := gridOptions()
	o.Scatter.Radius = 0.01
	o.Scatter.Retries = 3
	o.Panels.Count = 2
	log := logger.New("")
	l := Generate(o, Sources{Textures: []string{"a.png"}}, rand.New(rand.NewSource(9)), log)

	if l.Fallbacks != 2 {
		t.Fatalf("got %d fallbacks want 2", l.Fallbacks)
	}
	found := 0
	for _, line := range log.Lines() {
		if strings.Contains(line, "no free spot for panel") {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("got %d fallback diagnostics want 2: %v", found, log.Lines())
	}
	for _, obj := range l.Objects {
		if obj.Kind != KindPanel {
			continue
		}
		if !obj.Fallback || obj.Position[0] != 0 || obj.Position[2] != -60 {
			t.Fatalf("panel %d not at fallback: %+v", obj.Index, obj.Position)
		}
	}
	if l.Occupancy.Len() != len(l.Objects) {
		t.Fatalf("occupancy has %d bodies, registry %d", l.Occupancy.Len(), len(l.Objects))
	}
}

func TestNormalizeModel(t *testing.T) {
	mo := DefaultOptions().Models
	cases := []struct {
		name      string
		native    geom.Box
		wantScale float32
		wantLift  float32
	}{
		{"on ground", geom.Box{Min: geom.Vec3{-1, 0, -1}, Max: geom.Vec3{1, 4, 1}}, 0.75, 0.02},
		{"below ground", geom.Box{Min: geom.Vec3{-1, -2, -1}, Max: geom.Vec3{1, 2, 1}}, 0.75, 1.52},
		{"clamped", geom.Box{Max: geom.Vec3{1000, 1000, 1000}}, mo.ScaleMin, 0.02},
	}
	for _, c := range cases {
		scale, lift, bounds := NormalizeModel(c.native, 0, 1.2, mo)
		if !near(scale, c.wantScale) || !near(lift, c.wantLift) {
			t.Fatalf("%s: got scale %v lift %v want %v %v", c.name, scale, lift, c.wantScale, c.wantLift)
		}
		if c.name != "clamped" && !near(bounds.Size()[1], mo.TargetSize) {
			t.Fatalf("%s: height %v want %v", c.name, bounds.Size()[1], mo.TargetSize)
		}
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	o := DefaultOptions()
	o.Seed = 42
	src := Sources{Textures: []string{"a.png", "b.png"}, Video: "video/0001.mp4"}
	a := Generate(o, src, nil, nil)
	b := Generate(o, src, nil, nil)
	if !reflect.DeepEqual(a.Objects, b.Objects) {
		t.Fatalf("objects differ for the same seed")
	}
	if a.Spawn != b.Spawn || a.SpawnYaw != b.SpawnYaw {
		t.Fatalf("spawn differs: %v/%v vs %v/%v", a.Spawn, a.SpawnYaw, b.Spawn, b.SpawnYaw)
	}
}

func TestLayoutExtentsAndSpawn(t *testing.T) {
	l := Generate(DefaultOptions(), Sources{}, rand.New(rand.NewSource(5)), nil)
	if l.Extent != 104 {
		t.Fatalf("extent = %v want 104", l.Extent)
	}
	if l.WrapLimit != 58 {
		t.Fatalf("wrap limit = %v want 58", l.WrapLimit)
	}
	if len(l.Roads) != 6 {
		t.Fatalf("got %d roads want 6", len(l.Roads))
	}
	if !l.Occupancy.Frozen() {
		t.Fatalf("occupancy not frozen")
	}
	if l.Spawn[1] != 1.8 {
		t.Fatalf("spawn height = %v", l.Spawn[1])
	}
	if l.Occupancy.Blocked(l.Spawn, 0.45) {
		t.Fatalf("spawn %v is inside a box", l.Spawn)
	}
	fwd, _ := geom.Basis(l.SpawnYaw)
	toOrigin := geom.Normalize(geom.Vec3{-l.Spawn[0], 0, -l.Spawn[2]})
	if geom.Dot(fwd, toOrigin) < 0.999 {
		t.Fatalf("spawn yaw %v does not face the origin", l.SpawnYaw)
	}
}

func TestFacesWithoutTexturesAreDark(t *testing.T) {
	l := Generate(gridOptions(), Sources{}, rand.New(rand.NewSource(1)), nil)
	for _, obj := range l.Objects {
		for fi, f := range obj.Faces {
			if f.Kind != FaceDark {
				t.Fatalf("building %d face %d is %v without sources", obj.Index, fi, f.Kind)
			}
		}
		if obj.Key != "" {
			t.Fatalf("building %d has key %q without textures", obj.Index, obj.Key)
		}
	}
}
