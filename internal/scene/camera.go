package scene

import (
	"cityscape/internal/geom"
	"github.com/chewxy/math32"
)

// Camera is a pinhole camera at the player's eye. FOV is the vertical field of
// view in degrees.
type Camera struct {
	Eye    geom.Vec3
	Yaw    float32
	Pitch  float32
	FOV    float32
	Aspect float32
}

// ToView moves a world point into camera space: x right, y up, looking down -z.
// Yaw is undone first, then pitch.
func (c Camera) ToView(p geom.Vec3) geom.Vec3 {
	d := geom.RotateY(geom.Sub(p, c.Eye), -c.Yaw)
	s, co := math32.Sin(c.Pitch), math32.Cos(c.Pitch)
	return geom.Vec3{d[0], d[1]*co + d[2]*s, -d[1]*s + d[2]*co}
}

// Project returns normalized device coordinates in [-1,1] for a world point.
// ok is false for points at or behind the eye plane.
func (c Camera) Project(p geom.Vec3) (x, y float32, ok bool) {
	v := c.ToView(p)
	if v[2] >= 0 {
		return 0, 0, false
	}
	aspect := c.Aspect
	if !(aspect > 0) {
		aspect = 1
	}
	f := 1 / math32.Tan(c.FOV*math32.Pi/360)
	depth := -v[2]
	return f / aspect * v[0] / depth, f * v[1] / depth, true
}

// ToScreen maps a projected point to pixel coordinates with y growing down.
func ToScreen(ndcX, ndcY, width, height float32) (float32, float32) {
	return (ndcX*0.5 + 0.5) * width, (-ndcY*0.5 + 0.5) * height
}
