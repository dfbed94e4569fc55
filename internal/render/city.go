// Package render draws a scene with raylib: the city, its props, the
// fireflies and the 2D overlays. Everything here needs a live window.
package render

import (
	"cityscape/internal/assets"
	"cityscape/internal/geom"
	"cityscape/internal/logger"
	"cityscape/internal/mapgen"
	"cityscape/internal/scene"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	groundColor   = rl.NewColor(14, 14, 20, 255)
	roadColor     = rl.NewColor(38, 38, 46, 255)
	buildingColor = rl.NewColor(30, 30, 40, 255)
	panelColor    = rl.NewColor(24, 24, 30, 255)
	screenColor   = rl.NewColor(70, 110, 190, 255)
	targetColor   = rl.NewColor(255, 211, 107, 160)
	skyTop        = rl.NewColor(6, 8, 22, 255)
	skyBottom     = rl.NewColor(40, 28, 60, 255)
)

// City draws the layout of one scene.
type City struct {
	Prims    *Primitives
	Textures *Textures
	Models   *Models
	Sky      bool

	log        *logger.Logger
	videoNoted bool
}

// NewCity prepares GPU caches for the given decoded textures. Nothing is
// uploaded until the first draw.
func NewCity(textures []assets.Texture, sky bool, log *logger.Logger) *City {
	return &City{
		Prims:    NewPrimitives(NightLight()),
		Textures: NewTextures(textures, log),
		Models:   NewModels(log),
		Sky:      sky,
		log:      log,
	}
}

// Background paints the sky gradient.
func (c *City) Background(width, height float32) {
	if !c.Sky {
		return
	}
	rl.DrawRectangleGradientV(0, 0, int32(width), int32(height), skyTop, skyBottom)
}

// Camera converts the scene camera to raylib's.
func Camera(s *scene.Scene) rl.Camera3D {
	eye := s.Player.Position
	look := geom.Add(eye, s.Player.View())
	return rl.Camera3D{
		Position:   vec(eye),
		Target:     vec(look),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       s.FOV,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders the 3D pass for s.
func (c *City) Draw(s *scene.Scene) {
	layout := s.Layout
	c.Prims.SetView(s.Player.Position)

	rl.BeginMode3D(Camera(s))
	defer rl.EndMode3D()

	// the ground follows the player so wrapped space never shows an edge
	span := layout.Extent * 3
	p := s.Player.Position
	c.Prims.Box(geom.Vec3{p[0], -0.05, p[2]}, geom.Vec3{span, 0.1, span}, 0, groundColor)
	for _, r := range layout.Roads {
		c.Prims.Box(r.Center, r.Size, 0, roadColor)
	}

	for i := range layout.Objects {
		obj := &layout.Objects[i]
		switch obj.Kind {
		case mapgen.KindBuilding:
			c.building(obj)
		case mapgen.KindPanel:
			c.panel(obj)
		case mapgen.KindModel:
			c.Models.Draw(c.Prims, *obj)
		}
		if i == s.Overlay.Target && s.Overlay.Visible {
			rl.DrawCubeWiresV(vec(obj.Box.Center()), vec(obj.Box.Size()), targetColor)
		}
	}

	for _, f := range s.Fireflies.Flies() {
		a := uint8(40 + 215*f.Glow)
		rl.DrawSphereEx(vec(f.Position), 0.05, 4, 6, rl.NewColor(255, 226, 120, a))
	}
}

func (c *City) building(obj *mapgen.Object) {
	c.Prims.Box(obj.Position, obj.Size, 0, buildingColor)
	for fi, f := range obj.Faces {
		switch f.Kind {
		case mapgen.FaceTexture:
			tex := c.Textures.Face(f.Source, f.Width, f.Height)
			c.Prims.Face(obj.Position, obj.Size, 0, fi, tex, rl.White)
		case mapgen.FaceVideo:
			if !c.videoNoted {
				c.videoNoted = true
				c.log.Logf("render: video faces are drawn as lit screens (%s)", f.Source)
			}
			c.Prims.Face(obj.Position, obj.Size, 0, fi, rl.Texture2D{}, screenColor)
		}
	}
}

// panel draws the board with its texture on both broad sides.
func (c *City) panel(obj *mapgen.Object) {
	c.Prims.Box(obj.Position, obj.Size, obj.Yaw, panelColor)
	tex := c.Textures.Face(obj.Source, obj.Size[0], obj.Size[1])
	c.Prims.Face(obj.Position, obj.Size, obj.Yaw, 4, tex, rl.White)
	c.Prims.Face(obj.Position, obj.Size, obj.Yaw, 5, tex, rl.White)
}

// Unload frees GPU resources.
func (c *City) Unload() {
	c.Textures.Unload()
	c.Models.Unload()
	c.Prims.Unload()
}
