// Package terminal is the in-viewer console. ESC shows or hides it; while it is
// open it captures the keyboard, shows recent log lines and runs ":" commands.
package terminal

import (
	"cityscape/internal/commands"
	"cityscape/internal/logger"
	"cityscape/internal/render"
	"cityscape/internal/ui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	prompt = "> "
	// log lines drawn above the input bar
	maxLinesOnScreen = 14
	maxLineLen       = 200
)

// Terminal is the console bar at the bottom of the screen.
type Terminal struct {
	log   *logger.Logger
	reg   *commands.Registry
	input commands.Prompt
	open  bool
	style ui.Style
	font  rl.Font
}

// New returns a closed console that runs lines through reg and logs to log.
func New(log *logger.Logger, reg *commands.Registry, sheet *ui.Stylesheet) *Terminal {
	return &Terminal{log: log, reg: reg, style: sheet.Style(".console")}
}

func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// IsOpen reports whether the console captures input; the player stands still meanwhile.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC, typing, paste, history and Enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		if t.open {
			rl.EnableCursor()
		} else {
			t.input.Clear()
			rl.DisableCursor()
		}
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if rl.IsKeyPressed(rl.KeyV) && ctrl {
		t.input.Insert(rl.GetClipboardText())
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.input.Insert(string(rune(c)))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		t.input.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		t.input.Prev()
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		t.input.Next()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.input.Submit()
		if line == "" {
			return
		}
		t.log.Log(prompt + line)
		if err := t.reg.RunLine(line); err != nil {
			t.log.Log(err.Error())
		}
	}
}

// Draw draws the input bar and the recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	st := t.style
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	lineH := st.LineHeight()
	barH := lineH + 2*st.Padding
	barY := screenH - barH

	lines := t.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	chatH := int32(len(lines))*lineH + 2*st.Padding
	chatY := barY - chatH
	if chatY < 0 {
		chatY, chatH = 0, barY
	}
	rl.DrawRectangle(0, chatY, screenW, chatH, st.Fade(st.Background))
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		render.DrawText(t.font, line, st.Padding, chatY+st.Padding+int32(i)*lineH, st.FontSize, st.Fade(st.Color))
	}

	rl.DrawRectangle(0, barY, screenW, barH, st.Fade(st.Background))
	if st.HasBorder {
		rl.DrawRectangle(0, barY, screenW, 1, st.Fade(st.Border))
	}
	render.DrawText(t.font, prompt+t.input.Text()+"|", st.Padding, barY+st.Padding, st.FontSize, rl.White)
}
