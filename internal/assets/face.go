package assets

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
)

const (
	faceLong  = 1024
	faceShort = 64
)

// FaceSize returns the canvas size for a building face of the given world size:
// 1024 px on the long side, the short side by aspect but never under 64 px.
func FaceSize(faceW, faceH float32) (int, int) {
	aspect := faceW / faceH
	if !(aspect > 0) || math32.IsInf(aspect, 0) {
		aspect = 1
	}
	if aspect >= 1 {
		return faceLong, max(faceShort, int(math32.Round(faceLong/aspect)))
	}
	return max(faceShort, int(math32.Round(faceLong*aspect))), faceLong
}

// FitFace letterboxes img onto a transparent canvas shaped like the face:
// scaled to fit entirely, centered, aspect ratio kept.
func FitFace(img image.Image, faceW, faceH float32) *image.RGBA {
	cw, ch := FaceSize(faceW, faceH)
	canvas := image.NewRGBA(image.Rect(0, 0, cw, ch))
	if img == nil {
		return canvas
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return canvas
	}
	scale := math32.Min(float32(cw)/float32(b.Dx()), float32(ch)/float32(b.Dy()))
	iw := max(1, int(math32.Round(float32(b.Dx())*scale)))
	ih := max(1, int(math32.Round(float32(b.Dy())*scale)))
	ix := (cw - iw) / 2
	iy := (ch - ih) / 2

	resized := transform.Resize(img, iw, ih, transform.Linear)
	draw.Draw(canvas, image.Rect(ix, iy, ix+iw, iy+ih), resized, image.Point{}, draw.Over)
	return canvas
}
