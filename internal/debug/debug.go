// Package debug draws the runtime readouts in the top-right corner.
package debug

import (
	"fmt"
	"runtime"

	"cityscape/internal/render"
	"cityscape/internal/ui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInterval: FPS/Mem text is only rebuilt every N frames.
const updateInterval = 30

// Debug holds the overlay toggles. Status, when set, supplies the position line.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowPosition bool
	Status       func() string

	style      ui.Style
	font       rl.Font
	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns a Debug styled by the ".debug" rule of sheet.
func New(sheet *ui.Stylesheet) *Debug {
	return &Debug{style: sheet.Style(".debug")}
}

// SetFont switches the readouts to font; the zero Font is raylib's default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Lines returns the enabled readouts, refreshing FPS and memory every
// updateInterval frames. The position line is rebuilt every frame.
func (d *Debug) Lines(fps int32) []string {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	var out []string
	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", fps)
		}
		out = append(out, d.fpsText)
	}
	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		out = append(out, d.memText)
	}
	if d.ShowPosition && d.Status != nil {
		out = append(out, d.Status())
	}
	return out
}

// Draw renders the enabled readouts right-aligned at the top of the screen.
func (d *Debug) Draw() {
	lines := d.Lines(rl.GetFPS())
	if len(lines) == 0 {
		return
	}
	st := d.style
	screenW := int32(rl.GetScreenWidth())
	y := st.Padding
	for _, text := range lines {
		w := render.MeasureText(d.font, text, st.FontSize)
		render.DrawText(d.font, text, screenW-w-st.Padding, y, st.FontSize, st.Fade(st.Color))
		y += st.LineHeight()
	}
}
