package render

import (
	"errors"

	"cityscape/internal/fonts"
	"cityscape/internal/logger"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadSize is the glyph atlas size; text is scaled down from it.
const loadSize = 64

// Fonts loads overlay fonts by family from the asset font directory.
type Fonts struct {
	dir    string
	loaded map[string]rl.Font
	log    *logger.Logger
}

func NewFonts(dir string, log *logger.Logger) *Fonts {
	return &Fonts{dir: dir, loaded: make(map[string]rl.Font), log: log}
}

// Get returns the font for family. An empty family, or one that cannot be
// found or loaded, gives the zero Font, which the draw helpers treat as
// raylib's built-in font. Each family is looked up once.
func (f *Fonts) Get(family string) rl.Font {
	if family == "" {
		return rl.Font{}
	}
	if font, ok := f.loaded[family]; ok {
		return font
	}
	f.loaded[family] = rl.Font{}
	path, err := fonts.Find(f.dir, family)
	if err != nil {
		if errors.Is(err, fonts.ErrNotFound) {
			f.log.Logf("render: font %q not in %s, using the built-in font", family, f.dir)
		} else {
			f.log.Logf("render: %v", err)
		}
		return rl.Font{}
	}
	font := rl.LoadFontEx(path, loadSize, nil)
	if font.Texture.ID == 0 {
		f.log.Logf("render: could not load font %s", path)
		return rl.Font{}
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	f.loaded[family] = font
	return font
}

// Unload frees every loaded font.
func (f *Fonts) Unload() {
	for k, font := range f.loaded {
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
		delete(f.loaded, k)
	}
}

// DrawText draws with font, or the built-in font when font is zero.
func DrawText(font rl.Font, text string, x, y, size int32, c rl.Color) {
	if font.Texture.ID == 0 {
		rl.DrawText(text, x, y, size, c)
		return
	}
	rl.DrawTextEx(font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
}

// MeasureText is the pixel width of text in font at size.
func MeasureText(font rl.Font, text string, size int32) int32 {
	if font.Texture.ID == 0 {
		return rl.MeasureText(text, size)
	}
	return int32(rl.MeasureTextEx(font, text, float32(size), 1).X)
}
