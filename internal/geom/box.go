package geom

import "github.com/chewxy/math32"

// Box is an axis-aligned bounding volume in world space.
type Box struct {
	Min Vec3
	Max Vec3
}

// BoxAt returns the box of the given size centered on center.
func BoxAt(center, size Vec3) Box {
	half := Scale(size, 0.5)
	return Box{Min: Sub(center, half), Max: Add(center, half)}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return Scale(Add(b.Min, b.Max), 0.5)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	return Sub(b.Max, b.Min)
}

// Expand grows the box by m on every side.
func (b Box) Expand(m float32) Box {
	return Box{
		Min: Vec3{b.Min[0] - m, b.Min[1] - m, b.Min[2] - m},
		Max: Vec3{b.Max[0] + m, b.Max[1] + m, b.Max[2] + m},
	}
}

// Translate moves the box by d.
func (b Box) Translate(d Vec3) Box {
	return Box{Min: Add(b.Min, d), Max: Add(b.Max, d)}
}

// Valid reports whether the box has finite corners and Min <= Max on every axis.
// Queries skip invalid boxes instead of failing.
func (b Box) Valid() bool {
	if !Finite(b.Min) || !Finite(b.Max) {
		return false
	}
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Overlaps reports whether two boxes share any point. Touching faces count as overlap.
func (b Box) Overlaps(o Box) bool {
	return !(o.Max[0] < b.Min[0] || o.Min[0] > b.Max[0] ||
		o.Max[1] < b.Min[1] || o.Min[1] > b.Max[1] ||
		o.Max[2] < b.Min[2] || o.Min[2] > b.Max[2])
}

// ClampPoint returns the point inside the box closest to p.
func (b Box) ClampPoint(p Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = math32.Max(b.Min[i], math32.Min(p[i], b.Max[i]))
	}
	return out
}

// IntersectsSphere reports whether a sphere touches or penetrates the box.
func (b Box) IntersectsSphere(center Vec3, radius float32) bool {
	d := Sub(b.ClampPoint(center), center)
	return Dot(d, d) <= radius*radius
}

// Transform returns the world bounds of a local box after uniform scale, rotation
// around Y by yaw, then translation by pos. Rotated boxes are re-fitted to the axes.
func (b Box) Transform(scale, yaw float32, pos Vec3) Box {
	out := Box{
		Min: Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
	for i := 0; i < 8; i++ {
		corner := Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		p := Add(RotateY(Scale(corner, scale), yaw), pos)
		for k := 0; k < 3; k++ {
			out.Min[k] = math32.Min(out.Min[k], p[k])
			out.Max[k] = math32.Max(out.Max[k], p[k])
		}
	}
	return out
}
