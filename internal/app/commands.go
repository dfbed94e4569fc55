package app

import (
	"bytes"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"cityscape/internal/commands"
	"cityscape/internal/geom"
)

// Commands returns a registry with the console commands every viewer shares:
// seed, tp, spawn, where and help.
func (a *App) Commands() *commands.Registry {
	reg := commands.NewRegistry()

	seedFlags := flag.NewFlagSet("seed", flag.ContinueOnError)
	seedFlags.SetOutput(&bytes.Buffer{})
	seed := seedFlags.Int64("n", 0, "layout seed; 0 picks one")
	reg.Register("seed", "regenerate the city [-n seed]", seedFlags, func([]string) error {
		a.Generate(*seed)
		*seed = 0
		return nil
	})

	reg.Register("tp", "teleport to <x> <z>", nil, func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("tp: %w: tp <x> <z>", commands.ErrUsage)
		}
		x, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return fmt.Errorf("tp: %w", err)
		}
		z, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return fmt.Errorf("tp: %w", err)
		}
		s := a.Scene
		p := geom.Vec3{float32(x), s.Player.Position[1], float32(z)}
		if s.Layout.Occupancy.Blocked(p, s.Params.PlayerRadius) {
			return fmt.Errorf("tp: (%.1f, %.1f) is inside an object", x, z)
		}
		s.Player.Position = p
		return nil
	})

	reg.Register("spawn", "return to the spawn point", nil, func([]string) error {
		l := a.Scene.Layout
		a.Scene.Player.Position = l.Spawn
		a.Scene.Player.Yaw = l.SpawnYaw
		a.Scene.Player.Pitch = 0
		return nil
	})

	reg.Register("where", "log position and seed", nil, func([]string) error {
		a.Log.Logf("%s  seed %d", a.Scene.Status(), a.Seed)
		return nil
	})

	reg.Register("help", "list commands", nil, func([]string) error {
		var buf bytes.Buffer
		reg.Usage(&buf)
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			a.Log.Log(commands.Prefix + strings.TrimSpace(line))
		}
		return nil
	})
	return reg
}
