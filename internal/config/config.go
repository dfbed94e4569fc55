// Package config loads the cityscape settings file.
//
// The file is YAML, validated against an embedded JSON schema and decoded over
// Default(), so any key left out keeps its default. A missing file is not an error.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"cityscape/internal/input"
	"cityscape/internal/locomotion"
	"cityscape/internal/mapgen"
	"cityscape/internal/particles"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file, relative to the working directory.
const DefaultPath = "config/cityscape.yaml"

// Environment variables that override paths.
const (
	EnvConfig = "CITYSCAPE_CONFIG"
	EnvAssets = "CITYSCAPE_ASSETS"
)

// Config is everything the viewers read at startup.
type Config struct {
	Layout    mapgen.Options     `yaml:"layout"`
	Player    locomotion.Params  `yaml:"player"`
	Fireflies particles.Options  `yaml:"fireflies"`
	Touch     input.TouchOptions `yaml:"touch"`
	Display   Display            `yaml:"display"`
	Paths     Paths              `yaml:"paths"`
}

// Display holds window and overlay preferences. Width/Height 0 use the monitor size.
type Display struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Fullscreen   bool    `yaml:"fullscreen"`
	FPS          int     `yaml:"fps"`
	FOV          float32 `yaml:"fov"`
	ShowFPS      bool    `yaml:"show_fps"`
	ShowPosition bool    `yaml:"show_position"`
	Volume       float32 `yaml:"volume"`
	Sky          bool    `yaml:"sky"`
}

// Paths locates the asset root, the log file, the haiku table and an optional
// overlay stylesheet. Empty Haiku means <assets>/haiku.yaml.
type Paths struct {
	Assets     string `yaml:"assets"`
	Log        string `yaml:"log"`
	Haiku      string `yaml:"haiku"`
	Stylesheet string `yaml:"stylesheet"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Layout:    mapgen.DefaultOptions(),
		Player:    locomotion.DefaultParams(),
		Fireflies: particles.DefaultOptions(),
		Touch:     input.DefaultTouchOptions(),
		Display: Display{
			Width:  1280,
			Height: 720,
			FPS:    60,
			FOV:    70,
			Volume: 0.6,
			Sky:    true,
		},
		Paths: Paths{
			Assets: "assets",
			Log:    "logs/cityscape.txt",
		},
	}
}

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft7
		if err := c.AddResource("cityscape.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("cityscape.schema.json")
	})
	return schema, schemaErr
}

// Validate checks raw YAML against the schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if doc == nil {
		return nil
	}
	// The validator works on JSON values; round-trip so numbers become json.Number.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	sch, err := compiled()
	if err != nil {
		return fmt.Errorf("config: schema: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Parse validates data and decodes it over Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := Validate(data); err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return Default(), err
	}
	return cfg.Normalize(), nil
}

// Load reads path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default().Normalize(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Check reports combinations the schema cannot express.
func (c Config) Check() error {
	l := c.Layout
	if l.BuildingSize >= l.Spacing {
		return fmt.Errorf("config: layout.building_size %.2f must be smaller than layout.spacing %.2f", l.BuildingSize, l.Spacing)
	}
	if c.Fireflies.MaxY < c.Fireflies.MinY {
		return fmt.Errorf("config: fireflies.max_y below min_y")
	}
	if c.Player.MinHeight > c.Player.EyeHeight {
		return fmt.Errorf("config: player.min_height above eye_height")
	}
	return nil
}

// Normalize makes the spawn search use the player's collision sphere and eye
// height, so the start position is one the player can actually stand on.
func (c Config) Normalize() Config {
	c.Player = c.Player.Sanitize()
	c.Layout.Spawn.Radius = c.Player.PlayerRadius
	c.Layout.Spawn.EyeHeight = c.Player.EyeHeight
	return c
}

// ApplyEnv overrides the asset root from the environment.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv(EnvAssets); v != "" {
		c.Paths.Assets = v
	}
	return c
}

// HaikuPath returns the haiku table location.
func (c Config) HaikuPath() string {
	if c.Paths.Haiku != "" {
		return c.Paths.Haiku
	}
	return filepath.Join(c.Paths.Assets, "haiku.yaml")
}
