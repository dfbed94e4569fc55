package tui

import (
	"strings"
	"testing"
	"time"

	"cityscape/internal/commands"
	"cityscape/internal/geom"
	"cityscape/internal/haiku"
	"cityscape/internal/locomotion"
	"cityscape/internal/logger"
	"cityscape/internal/mapgen"
	"cityscape/internal/physics"
	"cityscape/internal/scene"
	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
)

// lantern is a scene with one keyed cube 4 units ahead of the player.
func lantern(t *testing.T) *scene.Scene {
	t.Helper()
	box := geom.BoxAt(geom.Vec3{0, 1.8, -4}, geom.Vec3{1, 1, 1})
	occ := physics.NewOccupancy()
	if err := occ.Add(box, 0); err != nil {
		t.Fatal(err)
	}
	occ.Freeze()
	layout := &mapgen.Layout{
		Objects:   []mapgen.Object{{Index: 0, Kind: mapgen.KindBuilding, Box: box, Key: "lantern.png"}},
		Occupancy: occ,
		WrapLimit: 48,
		Spawn:     geom.Vec3{0, 1.8, 0},
	}
	tb, err := haiku.Parse([]byte("lantern.png: paper lantern glows\n"))
	if err != nil {
		t.Fatal(err)
	}
	return scene.New(layout, locomotion.DefaultParams(), tb, nil, logger.New(""))
}

func walker(t *testing.T, s *scene.Scene) (*Walker, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(30, 12)
	return New(screen, s, commands.NewRegistry(), logger.New(""), DefaultOptions()), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHeldExpires(t *testing.T) {
	h := NewHeld(250 * time.Millisecond)
	t0 := time.Unix(100, 0)
	h.Press("up", t0)
	if !h.Down("up", t0.Add(200*time.Millisecond)) {
		t.Fatalf("released too early")
	}
	if h.Down("up", t0.Add(250*time.Millisecond)) {
		t.Fatalf("still held after hold window")
	}
	if h.Down("left", t0) {
		t.Fatalf("never-pressed key is down")
	}
	h.Press("up", t0)
	h.Clear()
	if h.Down("up", t0) {
		t.Fatalf("Clear kept a key")
	}
}

func TestArrow(t *testing.T) {
	cases := []struct {
		yaw  float32
		want rune
	}{
		{0, '^'},
		{math32.Pi / 2, '<'},
		{math32.Pi, 'v'},
		{-math32.Pi / 2, '>'},
	}
	for _, c := range cases {
		if got := Arrow(c.yaw); got != c.want {
			t.Fatalf("Arrow(%v) = %q want %q", c.yaw, got, c.want)
		}
	}
}

func TestMinimapPlacesObjectsAroundPlayer(t *testing.T) {
	s := lantern(t)
	grid := Minimap(s, 21, 11, 1)
	if grid[5][10] != '^' {
		t.Fatalf("player glyph = %q", grid[5][10])
	}
	for _, rc := range [][2]int{{2, 9}, {2, 10}, {3, 9}, {3, 10}} {
		if g := grid[rc[0]][rc[1]]; g != GlyphBuilding {
			t.Fatalf("cell %v = %q want building", rc, g)
		}
	}
	if g := grid[8][10]; g != GlyphEmpty {
		t.Fatalf("empty cell behind the player = %q", g)
	}
}

func TestHeldKeyWalksThenStops(t *testing.T) {
	s := lantern(t)
	w, _ := walker(t, s)
	t0 := time.Unix(100, 0)
	w.Handle(key('w'), t0)
	w.Step(0.1, t0.Add(50*time.Millisecond))
	z := s.Player.Position[2]
	if math32.Abs(z+2.1) > 1e-3 {
		t.Fatalf("z = %v want -2.1", z)
	}
	w.Step(0.1, t0.Add(400*time.Millisecond))
	if s.Player.Position[2] != z {
		t.Fatalf("kept walking after the hold window: %v", s.Player.Position[2])
	}
	if !s.Overlay.Visible || s.Overlay.Text != "paper lantern glows" {
		t.Fatalf("overlay = %+v", s.Overlay)
	}
}

func TestPromptRunsCommands(t *testing.T) {
	w, _ := walker(t, lantern(t))
	now := time.Unix(100, 0)
	for _, r := range ":zoom in" {
		w.Handle(key(r), now)
	}
	w.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)
	if w.Opts.Scale != 0.5 {
		t.Fatalf("scale = %v want 0.5", w.Opts.Scale)
	}
	// typing never moves the player
	if w.Keys(now).Frame().Forward != 0 {
		t.Fatalf("prompt input leaked into movement")
	}

	for _, r := range ":nope" {
		w.Handle(key(r), now)
	}
	w.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)
	if !strings.Contains(w.log.Last(), "unknown command") {
		t.Fatalf("last log = %q", w.log.Last())
	}

	for _, r := range ":quit" {
		w.Handle(key(r), now)
	}
	w.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)
	if !w.Quit() {
		t.Fatalf(":quit did not stop the walker")
	}
}

func TestDrawShowsMapAndStatus(t *testing.T) {
	s := lantern(t)
	w, screen := walker(t, s)
	w.Step(0.016, time.Unix(100, 0))
	w.Draw()
	if r, _, _, _ := screen.GetContent(15, 4); r != '^' {
		t.Fatalf("player cell = %q", r)
	}
	var status []rune
	for x := 0; x < 6; x++ {
		r, _, _, _ := screen.GetContent(x, 10)
		status = append(status, r)
	}
	if !strings.HasPrefix(string(status), "x 0.0") {
		t.Fatalf("status row = %q", string(status))
	}
	var haikuRow []rune
	for x := 0; x < 5; x++ {
		r, _, _, _ := screen.GetContent(x, 9)
		haikuRow = append(haikuRow, r)
	}
	if string(haikuRow) != "paper" {
		t.Fatalf("overlay row = %q", string(haikuRow))
	}
}
