// Package graphics owns the raylib window and the frame loop.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window to open. Width or Height 0 use the monitor size.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	FPS        int
}

// Frame is what the loop hands to the callbacks each frame.
type Frame struct {
	Dt     float32
	Width  float32
	Height float32
}

// Hooks are the per-frame callbacks. Update runs before drawing; Background
// draws in 2D before the 3D pass; World runs in 2D space too and is expected to
// open its own 3D mode; Overlay draws the 2D layer on top. Any hook may be nil.
type Hooks struct {
	Init       func()
	Update     func(Frame)
	Background func(Frame)
	World      func(Frame)
	Overlay    func(Frame)
	Close      func()
}

// Run opens the window and loops until it is closed or quit returns true.
// ESC belongs to the console, so it never closes the window.
func Run(w Window, h Hooks, quit func() bool) {
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	}
	width, height := int32(w.Width), int32(w.Height)
	if w.Fullscreen || width <= 0 || height <= 0 {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	if width <= 0 || height <= 0 {
		width, height = 1280, 720
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	fps := int32(w.FPS)
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	if h.Init != nil {
		h.Init()
	}
	if h.Close != nil {
		defer h.Close()
	}

	for !rl.WindowShouldClose() {
		if quit != nil && quit() {
			return
		}
		f := Frame{
			Dt:     rl.GetFrameTime(),
			Width:  float32(rl.GetScreenWidth()),
			Height: float32(rl.GetScreenHeight()),
		}
		if h.Update != nil {
			h.Update(f)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if h.Background != nil {
			h.Background(f)
		}
		if h.World != nil {
			h.World(f)
		}
		if h.Overlay != nil {
			h.Overlay(f)
		}
		rl.EndDrawing()
	}
}
