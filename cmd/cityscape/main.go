package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cityscape/internal/app"
	"cityscape/internal/commands"
	"cityscape/internal/config"
	"cityscape/internal/tui"
	"cityscape/internal/viewer"
	"github.com/gdamore/tcell/v2"
)

// cityFlags are the flags shared by every command that builds a city.
type cityFlags struct {
	env       string
	config    string
	seed      int64
	grid      int
	spacing   float64
	roadEvery int
}

func addCityFlags(fs *flag.FlagSet) *cityFlags {
	c := &cityFlags{}
	fs.StringVar(&c.env, "env", ".env", "KEY=VALUE file loaded before the config")
	fs.StringVar(&c.config, "config", "", "settings file (default $"+config.EnvConfig+" or "+config.DefaultPath+")")
	fs.Int64Var(&c.seed, "seed", 0, "layout seed; 0 uses the config or the clock")
	fs.IntVar(&c.grid, "grid", 0, "cells per side")
	fs.Float64Var(&c.spacing, "spacing", 0, "world size of one cell")
	fs.IntVar(&c.roadEvery, "roads", 0, "a road every n-th row and column")
	return c
}

func (c *cityFlags) load(ctx context.Context) (*app.App, error) {
	return app.Load(ctx, app.Options{
		EnvFile:    c.env,
		ConfigPath: c.config,
		Overrides: config.Overrides{
			Seed:      c.seed,
			Grid:      c.grid,
			Spacing:   float32(c.spacing),
			RoadEvery: c.roadEvery,
		},
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := commands.NewRegistry()

	runFlags := flag.NewFlagSet("run", flag.ExitOnError)
	runCity := addCityFlags(runFlags)
	reg.Register("run", "open the 3D viewer", runFlags, func([]string) error {
		a, err := runCity.load(ctx)
		if err != nil {
			return err
		}
		viewer.New(a.Scene, a.Config, a.Textures, a.Catalog.Music, a.Sheet, a.Commands(), a.Log).Run()
		return nil
	})

	walkFlags := flag.NewFlagSet("walk", flag.ExitOnError)
	walkCity := addCityFlags(walkFlags)
	scale := walkFlags.Float64("scale", 1, "world units per terminal column")
	reg.Register("walk", "walk the city in the terminal", walkFlags, func([]string) error {
		a, err := walkCity.load(ctx)
		if err != nil {
			return err
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("walk: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("walk: %w", err)
		}
		defer screen.Fini()
		opts := tui.DefaultOptions()
		opts.Scale = float32(*scale)
		err = tui.New(screen, a.Scene, a.Commands(), a.Log, opts).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	layoutFlags := flag.NewFlagSet("layout", flag.ExitOnError)
	layoutCity := addCityFlags(layoutFlags)
	objects := layoutFlags.Bool("objects", false, "list every placed object")
	reg.Register("layout", "print a layout summary as YAML", layoutFlags, func([]string) error {
		a, err := layoutCity.load(ctx)
		if err != nil {
			return err
		}
		return app.WriteSummary(os.Stdout, a.Summarize(*objects))
	})

	fetchFlags := flag.NewFlagSet("fetch", flag.ExitOnError)
	dest := fetchFlags.String("assets", "", "asset root (default from the config)")
	fetchConfig := fetchFlags.String("config", "", "settings file")
	family := fetchFlags.String("font", "", "download a Google Fonts family into <assets>/fonts instead of a pack")
	reg.Register("fetch", "download an asset pack or a font: fetch [-assets dir] <url> | fetch -font <family>", fetchFlags, func(args []string) error {
		if (*family == "") == (len(args) != 1) {
			return fmt.Errorf("fetch: %w: fetch [-assets dir] <url> | fetch -font <family>", commands.ErrUsage)
		}
		root := *dest
		if root == "" {
			cfg, err := loadConfig(*fetchConfig)
			if err != nil {
				return err
			}
			root = cfg.Paths.Assets
		}
		if *family != "" {
			return fetchFont(ctx, *family, root)
		}
		return fetchPack(ctx, args[0], root)
	})

	initFlags := flag.NewFlagSet("init", flag.ExitOnError)
	initPath := initFlags.String("config", config.DefaultPath, "where to write the settings file")
	force := initFlags.Bool("force", false, "overwrite an existing file")
	reg.Register("init", "write the default settings file", initFlags, func([]string) error {
		if _, err := os.Stat(*initPath); err == nil && !*force {
			return fmt.Errorf("init: %s exists (use -force)", *initPath)
		}
		if err := config.Save(*initPath, config.Default()); err != nil {
			return err
		}
		fmt.Println("wrote", *initPath)
		return nil
	})

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"run"}
	}
	if err := reg.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, "cityscape:", err)
		if errors.Is(err, commands.ErrUsage) {
			fmt.Fprintln(os.Stderr, "commands:")
			reg.Usage(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	return cfg.ApplyEnv(), nil
}
