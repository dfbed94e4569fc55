package render

import (
	"cityscape/internal/scene"
	"cityscape/internal/ui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay draws styled 2D boxes.
type Overlay struct {
	Sheet *ui.Stylesheet
	Fonts *Fonts
}

func (o *Overlay) font(st ui.Style) rl.Font {
	if o.Fonts == nil {
		return rl.Font{}
	}
	return o.Fonts.Get(st.FontFamily)
}

func (o *Overlay) measure(st ui.Style) func(string) int32 {
	font := o.font(st)
	return func(s string) int32 { return MeasureText(font, s, st.FontSize) }
}

// Block draws lines in a box styled by selectors with its top-left at (x, y).
// It returns the box size.
func (o *Overlay) Block(lines []string, x, y int32, selectors ...string) (w, h int32) {
	st := o.Sheet.Style(selectors...)
	w, h = st.Block(lines, o.measure(st))
	if st.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, st.Fade(st.Background))
	}
	if st.HasBorder {
		rl.DrawRectangleLines(x, y, w, h, st.Fade(st.Border))
	}
	font := o.font(st)
	for i, l := range lines {
		DrawText(font, l, x+st.Padding, y+st.Padding+int32(i)*st.LineHeight(), st.FontSize, st.Fade(st.Color))
	}
	return w, h
}

// Haiku draws the gaze overlay centered on its anchor and kept on screen.
func (o *Overlay) Haiku(ov scene.Overlay, width, height float32) {
	if !ov.Visible || ov.Text == "" {
		return
	}
	st := o.Sheet.Style(".haiku")
	lines := ui.Wrap(ov.Text, st.MaxWidth, o.measure(st))
	w, h := st.Block(lines, o.measure(st))
	x := clamp(int32(ov.X)-w/2, 0, int32(width)-w)
	y := clamp(int32(ov.Y)-h, 0, int32(height)-h)
	o.Block(lines, x, y, ".haiku")
}

// Hint draws a one-line hint centered at the bottom of the screen.
func (o *Overlay) Hint(text string, width, height float32) {
	if text == "" {
		return
	}
	st := o.Sheet.Style(".hint")
	w, h := st.Block([]string{text}, o.measure(st))
	o.Block([]string{text}, (int32(width)-w)/2, int32(height)-h-st.Padding, ".hint")
}

func clamp(v, lo, hi int32) int32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
