package locomotion

import (
	"cityscape/internal/geom"
	"cityscape/internal/mapgen"
	"github.com/chewxy/math32"
)

// Target is the object picked by gaze selection.
type Target struct {
	Index    int
	Center   geom.Vec3
	Distance float32
}

// Select returns the closest object whose box center is within MaxDistance of eye
// and inside the cone around forward (dot >= MinDot). Both boundaries are
// included. Equal distances keep the lower registry index. Objects with malformed
// boxes are ignored.
func (p Params) Select(eye, forward geom.Vec3, objects []mapgen.Object) (Target, bool) {
	dir := geom.Normalize(forward)
	best := Target{Index: -1, Distance: math32.Inf(1)}
	for i := range objects {
		box := objects[i].Box
		if !box.Valid() {
			continue
		}
		center := box.Center()
		to := geom.Sub(center, eye)
		dist := geom.Length(to)
		if dist > p.MaxDistance {
			continue
		}
		if geom.Dot(dir, geom.Normalize(to)) < p.MinDot {
			continue
		}
		if dist < best.Distance {
			best = Target{Index: i, Center: center, Distance: dist}
		}
	}
	return best, best.Index >= 0
}
