// Package viewer is the raylib front end: it wires the scene to a window,
// keyboard, mouse and touch input, the music player and the console.
package viewer

import (
	"fmt"
	"path/filepath"
	"strconv"

	"cityscape/internal/assets"
	"cityscape/internal/commands"
	"cityscape/internal/config"
	"cityscape/internal/debug"
	"cityscape/internal/fonts"
	"cityscape/internal/graphics"
	"cityscape/internal/input"
	"cityscape/internal/logger"
	"cityscape/internal/playlist"
	"cityscape/internal/render"
	"cityscape/internal/scene"
	"cityscape/internal/terminal"
	"cityscape/internal/ui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const hint = "WASD / arrows to walk, Q/E strafe, mouse or one finger to look, two fingers to walk, ESC console"

// Viewer owns the window-side state for one scene.
type Viewer struct {
	Scene    *scene.Scene
	Display  config.Display
	Touch    *input.Touch
	Sheet    *ui.Stylesheet
	Commands *commands.Registry
	// FontDir holds the font files that CSS font-family names resolve against.
	FontDir  string

	textures []assets.Texture
	list     *playlist.Playlist
	log      *logger.Logger

	city    *render.City
	overlay *render.Overlay
	fonts   *render.Fonts
	music   *render.Music
	debug   *debug.Debug
	console *terminal.Terminal

	lookSpeed float32
	hintLeft  float32
	quit      bool
}

// New prepares a viewer. reg receives the viewer's own console commands next
// to whatever the caller registered.
func New(s *scene.Scene, cfg config.Config, textures []assets.Texture, tracks []string, sheet *ui.Stylesheet, reg *commands.Registry, log *logger.Logger) *Viewer {
	v := &Viewer{
		Scene:     s,
		Display:   cfg.Display,
		Touch:     input.NewTouch(cfg.Touch),
		Sheet:     sheet,
		Commands:  reg,
		FontDir:   filepath.Join(cfg.Paths.Assets, fonts.Dir),
		textures:  textures,
		list:      playlist.New(tracks, cfg.Display.Volume),
		log:       log,
		lookSpeed: cfg.Touch.LookSpeed,
		hintLeft:  8,
	}
	if v.lookSpeed <= 0 {
		v.lookSpeed = input.DefaultTouchOptions().LookSpeed
	}
	v.debug = debug.New(sheet)
	v.debug.ShowFPS = cfg.Display.ShowFPS
	v.debug.ShowPosition = cfg.Display.ShowPosition
	v.debug.Status = s.Status
	v.console = terminal.New(log, reg, sheet)
	v.register()
	return v
}

// Run opens the window and blocks until it closes or :quit runs.
func (v *Viewer) Run() {
	graphics.Run(graphics.Window{
		Title:      "cityscape",
		Width:      v.Display.Width,
		Height:     v.Display.Height,
		Fullscreen: v.Display.Fullscreen,
		FPS:        v.Display.FPS,
	}, graphics.Hooks{
		Init:       v.init,
		Update:     v.update,
		Background: func(f graphics.Frame) { v.city.Background(f.Width, f.Height) },
		World:      func(graphics.Frame) { v.city.Draw(v.Scene) },
		Overlay:    v.drawOverlay,
		Close:      v.close,
	}, func() bool { return v.quit })
}

func (v *Viewer) init() {
	rl.InitAudioDevice()
	rl.DisableCursor()
	v.city = render.NewCity(v.textures, v.Display.Sky, v.log)
	v.fonts = render.NewFonts(v.FontDir, v.log)
	v.overlay = &render.Overlay{Sheet: v.Sheet, Fonts: v.fonts}
	v.debug.SetFont(v.fonts.Get(v.Sheet.Style(".debug").FontFamily))
	v.console.SetFont(v.fonts.Get(v.Sheet.Style(".console").FontFamily))
	v.music = render.NewMusic(v.list, v.log)
	if v.list.Len() > 0 {
		v.list.PlayIndex(0)
	}
}

func (v *Viewer) close() {
	v.music.Unload()
	v.city.Unload()
	v.fonts.Unload()
	rl.CloseAudioDevice()
}

func (v *Viewer) update(f graphics.Frame) {
	v.console.Update()
	v.Touch.Sync(touches())

	var in input.Frame
	if !v.console.IsOpen() {
		in = keys().Frame().Merge(mouseLook(v.lookSpeed))
		v.musicKeys()
	}
	in = in.Merge(v.Touch.Frame())
	if !in.Idle() {
		v.hintLeft = 0
	}
	if v.hintLeft > 0 {
		v.hintLeft -= f.Dt
	}
	v.Scene.Update(f.Dt, in, f.Width, f.Height)
	v.music.Update()
}

func (v *Viewer) musicKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyM):
		v.list.Toggle()
	case rl.IsKeyPressed(rl.KeyN):
		v.list.Next()
	case rl.IsKeyPressed(rl.KeyB):
		v.list.Prev()
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		v.list.SetVolume(v.list.Volume() + 0.1)
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		v.list.SetVolume(v.list.Volume() - 0.1)
	}
}

func (v *Viewer) drawOverlay(f graphics.Frame) {
	v.overlay.Haiku(v.Scene.Overlay, f.Width, f.Height)
	if lines := v.music.Lines(); len(lines) > 0 && !v.console.IsOpen() {
		sel := []string{".player"}
		if v.list.Playing() {
			sel = append(sel, ".player-active")
		}
		st := v.Sheet.Style(sel...)
		v.overlay.Block(lines, st.Padding, st.Padding, sel...)
	}
	if v.hintLeft > 0 && !v.console.IsOpen() {
		v.overlay.Hint(hint, f.Width, f.Height)
	}
	v.debug.Draw()
	v.console.Draw()
}

// register adds the console commands that only make sense with a window.
func (v *Viewer) register() {
	v.Commands.Register("fps", "toggle the FPS readout", nil, func([]string) error {
		v.debug.ShowFPS = !v.debug.ShowFPS
		return nil
	})
	v.Commands.Register("mem", "toggle the memory readout", nil, func([]string) error {
		v.debug.ShowMemAlloc = !v.debug.ShowMemAlloc
		return nil
	})
	v.Commands.Register("pos", "toggle the position readout", nil, func([]string) error {
		v.debug.ShowPosition = !v.debug.ShowPosition
		return nil
	})
	v.Commands.Register("music", "music play|pause|next|prev|vol <0-100>", nil, v.musicCommand)
	v.Commands.Register("quit", "close the viewer", nil, func([]string) error {
		v.quit = true
		return nil
	})
}

func (v *Viewer) musicCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("music: %w: play|pause|next|prev|vol <0-100>", commands.ErrUsage)
	}
	switch args[0] {
	case "play":
		if !v.list.Playing() {
			v.list.Toggle()
		}
	case "pause":
		if v.list.Playing() {
			v.list.Toggle()
		}
	case "next":
		v.list.Next()
	case "prev":
		v.list.Prev()
	case "vol":
		if len(args) < 2 {
			return fmt.Errorf("music: %w: vol <0-100>", commands.ErrUsage)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("music: vol: %w", err)
		}
		v.list.SetVolume(float32(n) / 100)
	default:
		return fmt.Errorf("music: %w: unknown action %q", commands.ErrUsage, args[0])
	}
	v.log.Logf("music: %s", v.list.Name(v.list.Current()))
	return nil
}
