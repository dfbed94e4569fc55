package mapgen

import (
	"cityscape/internal/geom"
	"github.com/chewxy/math32"
)

// findSpawn searches for a free eye-height position. The first half of the tries
// stays within half the search radius so the walk starts among the buildings.
// When nothing is free the player starts on the +Z side looking at the center.
func (g *generator) findSpawn() {
	so := g.opts.Spawn
	length := g.layout.Extent
	maxR := math32.Max(8, length*0.35)
	for try := 0; try < so.Tries; try++ {
		bias := float32(1)
		if try < so.Tries/2 {
			bias = 0.5
		}
		angle := g.rng.Float32() * 2 * math32.Pi
		r := g.rng.Float32() * maxR * bias
		p := geom.Vec3{math32.Cos(angle) * r, so.EyeHeight, math32.Sin(angle) * r}
		if g.layout.Occupancy.Blocked(p, so.Radius) {
			continue
		}
		g.setSpawn(p)
		return
	}
	g.log.Logf("mapgen: no free spawn after %d tries, using fallback", so.Tries)
	g.setSpawn(geom.Vec3{0, so.EyeHeight, math32.Max(2, math32.Ceil(length*0.45))})
}

func (g *generator) setSpawn(p geom.Vec3) {
	g.layout.Spawn = p
	g.layout.SpawnYaw = geom.YawToward(p, geom.Vec3{})
}
