// Package app assembles a walkable city from the configuration: environment,
// settings, assets, haiku table, stylesheet, layout and scene. Both viewers and
// the layout command start here.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"cityscape/internal/assets"
	"cityscape/internal/config"
	"cityscape/internal/env"
	"cityscape/internal/haiku"
	"cityscape/internal/logger"
	"cityscape/internal/mapgen"
	"cityscape/internal/particles"
	"cityscape/internal/scene"
	"cityscape/internal/ui"
)

// Options selects the inputs. Empty ConfigPath reads CITYSCAPE_CONFIG, then
// config.DefaultPath. A nil Log writes to the configured log file.
type Options struct {
	EnvFile    string
	ConfigPath string
	Overrides  config.Overrides
	Log        *logger.Logger
}

// App is a loaded city ready for a viewer.
type App struct {
	Config   config.Config
	Log      *logger.Logger
	Catalog  assets.Catalog
	Textures []assets.Texture
	Sources  mapgen.Sources
	Haiku    *haiku.Table
	Sheet    *ui.Stylesheet
	Scene    *scene.Scene
	Seed     int64
}

// Load reads everything and generates the first layout. Only configuration
// problems are errors; missing or broken assets are logged and left out.
func Load(ctx context.Context, o Options) (*App, error) {
	var setKeys []string
	if o.EnvFile != "" {
		keys, err := env.Load(o.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		setKeys = keys
	}

	path := o.ConfigPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	cfg, err = cfg.ApplyEnv().Apply(o.Overrides)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	log := o.Log
	if log == nil {
		log = logger.New(cfg.Paths.Log)
	}
	if len(setKeys) > 0 {
		log.Logf("app: loaded %v from %s", setKeys, o.EnvFile)
	}

	a := &App{Config: cfg, Log: log}
	a.Catalog, err = assets.Discover(cfg.Paths.Assets, log)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	a.Textures, err = assets.LoadTextures(ctx, a.Catalog.Images, log).Await(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	a.Sources = mapgen.Sources{
		Textures: assets.Sources(a.Textures),
		Video:    a.Catalog.Video,
		Models:   a.Catalog.Models,
	}

	a.Haiku, err = haiku.Load(cfg.HaikuPath())
	if err != nil {
		log.Logf("app: %v, continuing without haiku", err)
		a.Haiku = &haiku.Table{}
	}
	a.Sheet = loadSheet(cfg.Paths.Stylesheet, log)

	a.Generate(cfg.Layout.Seed)
	return a, nil
}

// loadSheet layers the user stylesheet over the built-in one.
func loadSheet(path string, log *logger.Logger) *ui.Stylesheet {
	sheet := ui.Default()
	if path == "" {
		return sheet
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Logf("app: stylesheet %s not found, using defaults", path)
		return sheet
	}
	if err != nil {
		log.Logf("app: stylesheet: %v", err)
		return sheet
	}
	defer f.Close()
	user, err := ui.ParseCSS(f)
	if err != nil {
		log.Logf("app: stylesheet %s: %v", path, err)
	}
	return sheet.Merge(user)
}

// Generate builds a layout from seed (0 picks one from the clock) and puts the
// player at its spawn. The fireflies restart around the new spawn.
func (a *App) Generate(seed int64) *mapgen.Layout {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.Seed = seed
	opts := a.Config.Layout
	opts.Seed = seed
	a.Log.Logf("app: generating with seed %d", seed)
	layout := mapgen.Generate(opts, a.Sources, nil, a.Log)

	fo := a.Config.Fireflies
	flies := particles.New(fo, layout.Spawn, rand.New(rand.NewSource(int64(fo.Seed))))
	if a.Scene == nil {
		a.Scene = scene.New(layout, a.Config.Player, a.Haiku, flies, a.Log)
		a.Scene.FOV = a.Config.Display.FOV
		return layout
	}
	a.Scene.Fireflies = flies
	a.Scene.Reset(layout)
	return layout
}
