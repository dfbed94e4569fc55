// Package ui styles the 2D overlays (haiku text, hints, music player, console)
// from a tiny stylesheet. Drawing happens in the viewers; this package only
// resolves rules into colors and sizes.
package ui

import (
	_ "embed"
	"image/color"
	"strconv"
	"strings"
)

//go:embed default.css
var defaultCSS string

// Rule is one selector with its raw property values.
type Rule struct {
	Selector string            // ".haiku" or "#player"
	Props    map[string]string // "background" -> "#000000b0"
}

// Stylesheet is an ordered list of rules; later rules win.
type Stylesheet struct {
	Rules []Rule
}

// Style is a resolved set of drawing values.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Padding    int32
	FontSize   int32
	MaxWidth   int32 // 0 = unbounded
	Opacity    float32
	FontFamily string // empty = built-in font
}

// DefaultStyle is transparent background, white 20px text, 4px padding.
func DefaultStyle() Style {
	return Style{
		Color:    color.RGBA{255, 255, 255, 255},
		Padding:  4,
		FontSize: 20,
		Opacity:  1,
	}
}

// Default returns the built-in stylesheet.
func Default() *Stylesheet {
	sheet, err := ParseCSSString(defaultCSS)
	if err != nil {
		return &Stylesheet{}
	}
	return sheet
}

// Merge returns a sheet with o's rules after s's, so o overrides s.
func (s *Stylesheet) Merge(o *Stylesheet) *Stylesheet {
	out := &Stylesheet{}
	if s != nil {
		out.Rules = append(out.Rules, s.Rules...)
	}
	if o != nil {
		out.Rules = append(out.Rules, o.Rules...)
	}
	return out
}

// Style resolves the properties of every rule matching one of selectors, in
// sheet order.
func (s *Stylesheet) Style(selectors ...string) Style {
	merged := make(map[string]string)
	if s != nil {
		for _, r := range s.Rules {
			for _, sel := range selectors {
				if r.Selector == sel {
					for k, v := range r.Props {
						merged[k] = v
					}
				}
			}
		}
	}
	return ResolveProps(merged)
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return color.RGBA{}, false
		}
	}
	pair := func(i int) uint8 {
		hi, _ := hexDigit(hex[i])
		lo, _ := hexDigit(hex[i+1])
		return hi<<4 | lo
	}
	switch len(hex) {
	case 3:
		r, _ := hexDigit(hex[0])
		g, _ := hexDigit(hex[1])
		b, _ := hexDigit(hex[2])
		return color.RGBA{r * 17, g * 17, b * 17, 255}, true
	case 6:
		return color.RGBA{pair(0), pair(2), pair(4), 255}, true
	case 8:
		return color.RGBA{pair(0), pair(2), pair(4), pair(6)}, true
	}
	return color.RGBA{}, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParsePx parses a number with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps turns raw properties into a Style. Unparseable values keep the default.
func ResolveProps(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "max-width":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.MaxWidth = n
			}
		case "font-family":
			first, _, _ := strings.Cut(v, ",")
			out.FontFamily = strings.Trim(strings.TrimSpace(first), `"'`)
		case "opacity":
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 32); err == nil && f >= 0 && f <= 1 {
				out.Opacity = float32(f)
			}
		}
	}
	return out
}

// Fade returns c with its alpha scaled by the style's opacity.
func (s Style) Fade(c color.RGBA) color.RGBA {
	c.A = uint8(float32(c.A) * s.Opacity)
	return c
}
