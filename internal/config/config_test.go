package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Layout.Grid != 12 || cfg.Player.Speed != 21 {
		t.Fatalf("defaults not applied: %+v", cfg.Layout)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
layout:
  grid: 16
  scatter:
    fallback: [1, 0, 2]
player:
  player_radius: 0.6
display:
  show_fps: true
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Layout.Grid != 16 || cfg.Layout.Spacing != 8 {
		t.Fatalf("layout = %+v", cfg.Layout)
	}
	if cfg.Layout.Scatter.Fallback != [3]float32{1, 0, 2} || cfg.Layout.Scatter.Retries != 50 {
		t.Fatalf("scatter = %+v", cfg.Layout.Scatter)
	}
	if cfg.Layout.Spawn.Radius != 0.6 {
		t.Fatalf("spawn radius %v not copied from player", cfg.Layout.Spawn.Radius)
	}
	if !cfg.Display.ShowFPS || cfg.Display.FPS != 60 {
		t.Fatalf("display = %+v", cfg.Display)
	}
}

func TestSchemaRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "layout:\n  gird: 3\n",
		"negative grid":   "layout:\n  grid: -1\n",
		"string spacing":  "layout:\n  spacing: wide\n",
		"short vector":    "layout:\n  scatter:\n    fallback: [1, 2]\n",
		"min_dot too big": "player:\n  min_dot: 2\n",
		"bad top level":   "colour: red\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}
}

func TestCheckRejectsOversizedBuildings(t *testing.T) {
	_, err := Parse([]byte("layout:\n  spacing: 3\n  building_size: 3.5\n"))
	if err == nil || !strings.Contains(err.Error(), "building_size") {
		t.Fatalf("err = %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "cityscape.yaml")
	cfg := Default()
	cfg.Layout.Seed = 99
	cfg.Paths.Assets = "media"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load saved file: %v", err)
	}
	if got.Layout.Seed != 99 || got.Paths.Assets != "media" {
		t.Fatalf("got %+v", got.Paths)
	}
}

func TestOverridesIgnoreZeroFields(t *testing.T) {
	cfg, err := Default().Apply(Overrides{Seed: 7, Grid: 20})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Layout.Seed != 7 || cfg.Layout.Grid != 20 || cfg.Layout.Spacing != 8 || cfg.Layout.RoadEvery != 4 {
		t.Fatalf("layout = %+v", cfg.Layout)
	}
	if _, err := Default().Apply(Overrides{Spacing: 2}); err == nil {
		t.Fatalf("expected spacing below building size to fail")
	}
}

func TestApplyEnvAndHaikuPath(t *testing.T) {
	t.Setenv(EnvAssets, filepath.Join("srv", "media"))
	cfg := Default().ApplyEnv()
	if cfg.Paths.Assets != filepath.Join("srv", "media") {
		t.Fatalf("assets = %q", cfg.Paths.Assets)
	}
	if cfg.HaikuPath() != filepath.Join("srv", "media", "haiku.yaml") {
		t.Fatalf("haiku path = %q", cfg.HaikuPath())
	}
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("layout: [1, 2]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("err = %v", err)
	}
}
