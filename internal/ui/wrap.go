package ui

import "strings"

// Wrap breaks text into lines no wider than maxWidth as reported by measure.
// Existing newlines are kept; a single word wider than maxWidth gets its own line.
// maxWidth <= 0 only splits on newlines.
func Wrap(text string, maxWidth int32, measure func(string) int32) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			next := line + " " + w
			if maxWidth > 0 && measure(next) > maxWidth {
				out = append(out, line)
				line = w
				continue
			}
			line = next
		}
		out = append(out, line)
	}
	return out
}

// Block is the pixel size of wrapped lines with the style's padding.
func (s Style) Block(lines []string, measure func(string) int32) (w, h int32) {
	for _, l := range lines {
		if lw := measure(l); lw > w {
			w = lw
		}
	}
	return w + 2*s.Padding, int32(len(lines))*s.LineHeight() + 2*s.Padding
}

// LineHeight is the font size plus a little leading.
func (s Style) LineHeight() int32 {
	return s.FontSize + s.FontSize/4
}
