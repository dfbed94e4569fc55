package physics

import (
	"errors"

	"cityscape/internal/geom"
	"github.com/chewxy/math32"
)

// ErrFrozen is returned by Add once the occupancy list has been frozen for the walk loop.
var ErrFrozen = errors.New("physics: occupancy list is frozen")

// Body is one entry of the occupancy list: an expanded bounding volume and the
// registry index of the object that owns it.
type Body struct {
	Box   geom.Box
	Owner int
}

// Occupancy is the ordered, append-only list of bounding volumes used for collision
// and overlap tests. Setup appends to it; Freeze makes it read-only for the frame loop.
type Occupancy struct {
	bodies []Body
	frozen bool
}

// NewOccupancy returns an empty occupancy list.
func NewOccupancy() *Occupancy {
	return &Occupancy{}
}

// Add appends a bounding volume owned by the object at registry index owner.
func (o *Occupancy) Add(box geom.Box, owner int) error {
	if o.frozen {
		return ErrFrozen
	}
	o.bodies = append(o.bodies, Body{Box: box, Owner: owner})
	return nil
}

// Freeze stops further appends. The walk loop only ever reads a frozen list.
func (o *Occupancy) Freeze() {
	o.frozen = true
}

// Frozen reports whether Freeze has been called.
func (o *Occupancy) Frozen() bool {
	return o.frozen
}

// Len returns the number of bodies.
func (o *Occupancy) Len() int {
	return len(o.bodies)
}

// Bodies returns the bodies in insertion order. Callers must not modify the slice.
func (o *Occupancy) Bodies() []Body {
	return o.bodies
}

// Overlaps reports whether box overlaps any valid body.
func (o *Occupancy) Overlaps(box geom.Box) bool {
	for _, b := range o.bodies {
		if !b.Box.Valid() {
			continue
		}
		if b.Box.Overlaps(box) {
			return true
		}
	}
	return false
}

// Blocked reports whether a sphere at center touches any valid body.
func (o *Occupancy) Blocked(center geom.Vec3, radius float32) bool {
	for _, b := range o.bodies {
		if !b.Box.Valid() {
			continue
		}
		if b.Box.IntersectsSphere(center, radius) {
			return true
		}
	}
	return false
}

// NearestCenter2D returns the XZ distance from p to the closest body center.
// ok is false when there are no valid bodies.
func (o *Occupancy) NearestCenter2D(p geom.Vec3) (dist float32, ok bool) {
	dist = math32.Inf(1)
	for _, b := range o.bodies {
		if !b.Box.Valid() {
			continue
		}
		if d := geom.Distance2D(p, b.Box.Center()); d < dist {
			dist = d
			ok = true
		}
	}
	return dist, ok
}
