// Package tui walks the city in a terminal: a top-down map around the player,
// the gaze overlay and status in the bottom lines, and a ":" prompt for the
// console commands.
package tui

import (
	"context"
	"fmt"
	"time"

	"cityscape/internal/commands"
	"cityscape/internal/input"
	"cityscape/internal/logger"
	"cityscape/internal/scene"
	"github.com/gdamore/tcell/v2"
)

// Options tunes the terminal walker.
type Options struct {
	Scale float32       // world units per column
	Hold  time.Duration // how long a press counts as held
	FPS   int
}

// DefaultOptions returns one unit per column, a 250ms hold and 30 frames per second.
func DefaultOptions() Options {
	return Options{Scale: 1, Hold: 250 * time.Millisecond, FPS: 30}
}

var (
	styleRoad     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBuilding = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleModel    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePanel    = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFirefly  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHaiku    = tcell.StyleDefault.Foreground(tcell.ColorWheat)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Walker drives one scene from terminal input.
type Walker struct {
	Scene *scene.Scene
	Opts  Options

	screen tcell.Screen
	reg    *commands.Registry
	log    *logger.Logger
	held   *Held
	prompt commands.Prompt
	typing bool
	quit   bool
}

// New returns a walker drawing on screen. The screen must already be
// initialized. reg gains "quit" and "zoom".
func New(screen tcell.Screen, s *scene.Scene, reg *commands.Registry, log *logger.Logger, opts Options) *Walker {
	d := DefaultOptions()
	if !(opts.Scale > 0) {
		opts.Scale = d.Scale
	}
	if opts.Hold <= 0 {
		opts.Hold = d.Hold
	}
	if opts.FPS <= 0 {
		opts.FPS = d.FPS
	}
	w := &Walker{Scene: s, Opts: opts, screen: screen, reg: reg, log: log, held: NewHeld(opts.Hold)}
	reg.Register("quit", "leave the walker", nil, func([]string) error {
		w.quit = true
		return nil
	})
	reg.Register("zoom", "zoom in|out", nil, func(args []string) error {
		if len(args) != 1 || (args[0] != "in" && args[0] != "out") {
			return fmt.Errorf("zoom: %w: in|out", commands.ErrUsage)
		}
		if args[0] == "in" {
			w.Opts.Scale = max(w.Opts.Scale/2, 0.125)
		} else {
			w.Opts.Scale = min(w.Opts.Scale*2, 16)
		}
		return nil
	})
	return w
}

// Run polls events and steps the scene until quit or ctx is done.
func (w *Walker) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(w.Opts.FPS))
	defer tick.Stop()
	last := time.Now()
	for !w.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.Handle(ev, time.Now())
		case now := <-tick.C:
			w.Step(float32(now.Sub(last).Seconds()), now)
			last = now
			w.Draw()
		}
	}
	return nil
}

// Quit reports whether the walker was asked to stop.
func (w *Walker) Quit() bool {
	return w.quit
}

// Handle applies one terminal event.
func (w *Walker) Handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			w.quit = true
			return
		}
		if w.typing {
			w.typeKey(ev)
			return
		}
		w.walkKey(ev, now)
	}
}

func (w *Walker) typeKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		w.prompt.Clear()
		w.typing = false
	case tcell.KeyEnter:
		line := w.prompt.Submit()
		w.typing = false
		if line == "" || line == commands.Prefix {
			return
		}
		w.log.Log("> " + line)
		if err := w.reg.RunLine(line); err != nil {
			w.log.Log(err.Error())
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		w.prompt.Backspace()
		if w.prompt.Text() == "" {
			w.typing = false
		}
	case tcell.KeyUp:
		w.prompt.Prev()
	case tcell.KeyDown:
		w.prompt.Next()
	case tcell.KeyRune:
		w.prompt.Insert(string(ev.Rune()))
	}
}

// walkKey maps a press to a held key: arrows or WASD walk and turn, Q/E strafe.
func (w *Walker) walkKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape:
		w.quit = true
	case tcell.KeyUp:
		w.held.Press("up", now)
	case tcell.KeyDown:
		w.held.Press("down", now)
	case tcell.KeyLeft:
		w.held.Press("left", now)
	case tcell.KeyRight:
		w.held.Press("right", now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ':':
			w.held.Clear()
			w.typing = true
			w.prompt.Clear()
			w.prompt.Insert(commands.Prefix)
		case 'w', 'W':
			w.held.Press("up", now)
		case 's', 'S':
			w.held.Press("down", now)
		case 'a', 'A':
			w.held.Press("left", now)
		case 'd', 'D':
			w.held.Press("right", now)
		case 'q', 'Q':
			w.held.Press("strafe-left", now)
		case 'e', 'E':
			w.held.Press("strafe-right", now)
		case '+':
			w.Opts.Scale = max(w.Opts.Scale/2, 0.125)
		case '-':
			w.Opts.Scale = min(w.Opts.Scale*2, 16)
		}
	}
}

// Keys returns the emulated held keys at now.
func (w *Walker) Keys(now time.Time) input.Keys {
	return input.Keys{
		Up:          w.held.Down("up", now),
		Down:        w.held.Down("down", now),
		Left:        w.held.Down("left", now),
		Right:       w.held.Down("right", now),
		StrafeLeft:  w.held.Down("strafe-left", now),
		StrafeRight: w.held.Down("strafe-right", now),
	}
}

// Step advances the scene by dt with the keys held at now. There is no screen
// projection, so the overlay keeps its text but no anchor.
func (w *Walker) Step(dt float32, now time.Time) {
	w.Scene.Update(dt, w.Keys(now).Frame(), 0, 0)
}

// Draw paints the map and the bottom lines.
func (w *Walker) Draw() {
	w.screen.Clear()
	width, height := w.screen.Size()
	mapH := height - 3
	if mapH < 1 {
		mapH = 1
	}
	grid := Minimap(w.Scene, width, mapH, w.Opts.Scale)
	for r, row := range grid {
		for c, g := range row {
			if g != GlyphEmpty {
				w.screen.SetContent(c, r, g, nil, glyphStyle(g))
			}
		}
	}

	ov := w.Scene.Overlay
	if ov.Visible {
		w.text(0, height-3, ov.Text, styleHaiku)
	}
	w.text(0, height-2, w.Scene.Status(), styleStatus)
	if w.typing {
		w.text(0, height-1, w.prompt.Text()+"_", tcell.StyleDefault)
	} else {
		w.text(0, height-1, w.log.Last(), tcell.StyleDefault.Dim(true))
	}
	w.screen.Show()
}

// text writes s on row y, flattening newlines and clipping at the screen edge.
func (w *Walker) text(x, y int, s string, st tcell.Style) {
	width, _ := w.screen.Size()
	for _, r := range s {
		if x >= width {
			return
		}
		if r == '\n' {
			r = '/'
		}
		w.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func glyphStyle(g rune) tcell.Style {
	switch g {
	case GlyphRoad:
		return styleRoad
	case GlyphBuilding:
		return styleBuilding
	case GlyphModel:
		return styleModel
	case GlyphPanel:
		return stylePanel
	case GlyphTarget:
		return styleTarget
	case GlyphFirefly:
		return styleFirefly
	}
	return stylePlayer
}
