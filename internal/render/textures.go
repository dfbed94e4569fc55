package render

import (
	"fmt"
	"image"

	"cityscape/internal/assets"
	"cityscape/internal/logger"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Textures uploads decoded images to the GPU on demand, one texture per
// source and face aspect, letterboxed to fit the face.
type Textures struct {
	images map[string]image.Image
	gpu    map[string]rl.Texture2D
	failed map[string]bool
	log    *logger.Logger
}

// NewTextures indexes the decoded textures by source.
func NewTextures(textures []assets.Texture, log *logger.Logger) *Textures {
	t := &Textures{
		images: make(map[string]image.Image, len(textures)),
		gpu:    make(map[string]rl.Texture2D),
		failed: make(map[string]bool),
		log:    log,
	}
	for _, tex := range textures {
		t.images[tex.Source] = tex.Image
	}
	return t
}

// Face returns the texture for source fitted to a w x h face. The zero texture
// is returned for unknown sources and failed uploads.
func (t *Textures) Face(source string, w, h float32) rl.Texture2D {
	key := fmt.Sprintf("%s|%.2fx%.2f", source, w, h)
	if tex, ok := t.gpu[key]; ok {
		return tex
	}
	if t.failed[key] {
		return rl.Texture2D{}
	}
	img, ok := t.images[source]
	if !ok {
		t.failed[key] = true
		return rl.Texture2D{}
	}
	rimg := rl.NewImageFromImage(assets.FitFace(img, w, h))
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	if !rl.IsTextureValid(tex) {
		t.failed[key] = true
		t.log.Logf("render: texture upload failed for %s", source)
		return rl.Texture2D{}
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	t.gpu[key] = tex
	return tex
}

// Len is the number of uploaded textures.
func (t *Textures) Len() int {
	return len(t.gpu)
}

// Unload frees every uploaded texture.
func (t *Textures) Unload() {
	for k, tex := range t.gpu {
		rl.UnloadTexture(tex)
		delete(t.gpu, k)
	}
}
