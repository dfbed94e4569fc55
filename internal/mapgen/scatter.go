package mapgen

import (
	"cityscape/internal/geom"
	"github.com/chewxy/math32"
)

// NormalizeModel sizes a model so its largest rotated dimension equals TargetSize.
// native is the model's bounds at scale 1; initial is the random starting scale.
// It returns the final scale, the lift that puts the lowest point just above
// ground and the rotated, scaled bounds around the model origin (before lift).
func NormalizeModel(native geom.Box, yaw, initial float32, mo ModelOptions) (scale, lift float32, bounds geom.Box) {
	scale = initial
	b := native.Transform(scale, yaw, geom.Vec3{})
	size := b.Size()
	largest := math32.Max(size[0], math32.Max(size[1], size[2]))
	if largest > 0 && !math32.IsInf(largest, 0) {
		scale *= mo.TargetSize / largest
	}
	scale = math32.Max(mo.ScaleMin, math32.Min(scale, mo.ScaleMax))
	bounds = native.Transform(scale, yaw, geom.Vec3{})
	lift = math32.Max(0, -bounds.Min[1]) + mo.LiftEpsilon
	return scale, lift, bounds
}

// candidate builds the world object for a prop placed at (x, z).
type candidate func(x, z float32) Object

// scatter places one free-standing object by rejection sampling on a disk.
// The first candidate whose expanded box overlaps nothing is accepted. When every
// retry fails the object goes to the fallback position and a diagnostic is logged.
func (g *generator) scatter(name string, build candidate) {
	radius := g.opts.Scatter.Radius
	if radius <= 0 {
		radius = g.layout.Extent * g.opts.Scatter.RadiusRatio
	}
	for try := 0; try < g.opts.Scatter.Retries; try++ {
		angle := g.rng.Float32() * 2 * math32.Pi
		r := math32.Sqrt(g.rng.Float32()) * radius
		obj := build(math32.Cos(angle)*r, math32.Sin(angle)*r)
		if !obj.Box.Valid() || g.layout.Occupancy.Overlaps(obj.Box) {
			continue
		}
		g.commit(obj)
		return
	}

	fb := g.opts.Scatter.Fallback
	obj := build(fb[0], fb[2])
	obj.Fallback = true
	g.layout.Fallbacks++
	g.log.Logf("mapgen: no free spot for %s after %d tries, using fallback (%.1f, %.1f)",
		name, g.opts.Scatter.Retries, fb[0], fb[2])
	g.commit(obj)
}

// models scatters PerSource instances of every model source.
func (g *generator) models() {
	mo := g.opts.Models
	for _, src := range g.src.Models {
		native := src.Bounds()
		if !native.Valid() {
			g.log.Logf("mapgen: skipping model %s with invalid bounds", src.Source)
			continue
		}
		for n := 0; n < mo.PerSource; n++ {
			yaw := g.rng.Float32() * 2 * math32.Pi
			initial := mo.InitialScaleMin + g.rng.Float32()*(mo.InitialScaleMax-mo.InitialScaleMin)
			scale, lift, bounds := NormalizeModel(native, yaw, initial, mo)
			source := src.Source
			g.scatter(source, func(x, z float32) Object {
				pos := geom.Vec3{x, lift, z}
				return Object{
					Kind:     KindModel,
					Position: pos,
					Scale:    scale,
					Yaw:      yaw,
					Box:      bounds.Translate(pos).Expand(g.opts.Margin),
					Key:      source,
					Source:   source,
				}
			})
		}
	}
}

// panels scatters flat textured boards. Panels need a texture; without any
// loaded texture none are placed.
func (g *generator) panels() {
	po := g.opts.Panels
	if len(g.src.Textures) == 0 {
		return
	}
	size := geom.Vec3{po.Width, po.Height, po.Thickness}
	for n := 0; n < po.Count; n++ {
		yaw := g.rng.Float32() * 2 * math32.Pi
		tex := g.src.Textures[g.rng.Intn(len(g.src.Textures))]
		local := geom.BoxAt(geom.Vec3{}, size)
		g.scatter("panel", func(x, z float32) Object {
			pos := geom.Vec3{x, po.Elevation + po.Height/2, z}
			return Object{
				Kind:     KindPanel,
				Position: pos,
				Size:     size,
				Scale:    1,
				Yaw:      yaw,
				Box:      local.Transform(1, yaw, pos).Expand(g.opts.Margin),
				Key:      tex,
				Source:   tex,
			}
		})
	}
}
