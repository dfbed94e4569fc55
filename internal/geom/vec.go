package geom

import "github.com/chewxy/math32"

// Vec3 is a world-space position or direction. Index 0 = X, 1 = Y (up), 2 = Z.
type Vec3 = [3]float32

func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Scale(a Vec3, s float32) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

func Dot(a, b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Length(a Vec3) float32 {
	return math32.Sqrt(Dot(a, a))
}

// Normalize returns a unit vector in the direction of a, or the zero vector when a has no length.
func Normalize(a Vec3) Vec3 {
	l := Length(a)
	if l == 0 {
		return Vec3{}
	}
	return Scale(a, 1/l)
}

// Distance2D is the distance between a and b on the XZ plane.
func Distance2D(a, b Vec3) float32 {
	return math32.Hypot(a[0]-b[0], a[2]-b[2])
}

// Basis returns the horizontal forward and right vectors for a yaw-only heading.
// Yaw 0 looks down -Z; positive yaw turns left.
func Basis(yaw float32) (forward, right Vec3) {
	s, c := math32.Sin(yaw), math32.Cos(yaw)
	forward = Vec3{-s, 0, -c}
	right = Vec3{c, 0, -s}
	return forward, right
}

// YawToward returns the yaw whose forward vector points from `from` to `to` on the XZ plane.
func YawToward(from, to Vec3) float32 {
	dx := to[0] - from[0]
	dz := to[2] - from[2]
	if dx == 0 && dz == 0 {
		return 0
	}
	return math32.Atan2(-dx, -dz)
}

// RotateY rotates v around the Y axis by angle radians (counter-clockwise seen from above).
func RotateY(v Vec3, angle float32) Vec3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Vec3{v[0]*c + v[2]*s, v[1], -v[0]*s + v[2]*c}
}

// Finite reports whether every component of v is a finite number.
func Finite(v Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Wrap folds c into [-limit, limit) on a ring of circumference 2*limit.
// Values already inside the range are returned unchanged so Wrap is idempotent.
func Wrap(c, limit float32) float32 {
	if limit <= 0 {
		return c
	}
	if c >= -limit && c < limit {
		return c
	}
	span := limit * 2
	r := math32.Mod(c+limit, span)
	r = math32.Mod(r+span, span)
	w := r - limit
	if w >= limit {
		w = -limit
	}
	return w
}
