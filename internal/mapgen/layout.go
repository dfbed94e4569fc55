package mapgen

import (
	"cityscape/internal/geom"
	"cityscape/internal/physics"
)

// Rand is the random source used by generation. *rand.Rand satisfies it;
// tests inject a seeded one for reproducible layouts.
type Rand interface {
	Float32() float32
	Intn(n int) int
}

// Kind identifies what a placed object is.
type Kind int

const (
	KindBuilding Kind = iota
	KindModel
	KindPanel
)

func (k Kind) String() string {
	switch k {
	case KindBuilding:
		return "building"
	case KindModel:
		return "model"
	case KindPanel:
		return "panel"
	default:
		return "unknown"
	}
}

// FaceKind says what is drawn on one face of a building.
type FaceKind int

const (
	FaceDark FaceKind = iota
	FaceTexture
	FaceVideo
)

// Face is one side of a building cube. Width/Height are the face's world size,
// used by the asset layer to fit the texture.
type Face struct {
	Kind   FaceKind
	Source string
	Width  float32
	Height float32
}

// Object is one placed entity. Objects never move after generation.
type Object struct {
	Index    int
	Kind     Kind
	Position geom.Vec3 // buildings and panels: box center; models: model origin
	Size     geom.Vec3 // unrotated dimensions of buildings and panels
	Scale    float32   // uniform model scale
	Yaw      float32
	Box      geom.Box // expanded bounding volume, also stored in the occupancy list
	Key      string   // interaction key for overlay lookup; empty when none
	Source   string   // model path or panel texture
	Faces    []Face   // buildings only, in +X, -X, +Y, -Y, +Z, -Z order
	Fallback bool     // placed at the fixed fallback position after retries ran out
}

// Road is a flat strip drawn on the ground along one road line.
type Road struct {
	Center geom.Vec3
	Size   geom.Vec3
}

// ModelSource is one loadable model with its native (scale 1) bounds.
type ModelSource struct {
	Source string    `yaml:"source"`
	Min    geom.Vec3 `yaml:"min"`
	Max    geom.Vec3 `yaml:"max"`
}

// Bounds returns the native bounds as a box.
func (m ModelSource) Bounds() geom.Box {
	return geom.Box{Min: m.Min, Max: m.Max}
}

// Sources lists the assets that resolved before generation started.
// Missing assets are simply absent; generation falls back to dark faces.
type Sources struct {
	Textures []string
	Video    string
	Models   []ModelSource
}

// Layout is the result of generation: the object registry, the occupancy list
// built alongside it, road strips, the wrap limit and the starting pose.
type Layout struct {
	Objects   []Object
	Occupancy *physics.Occupancy
	Roads     []Road
	Extent    float32
	WrapLimit float32
	Spawn     geom.Vec3
	SpawnYaw  float32
	Fallbacks int
}

// Count returns the number of objects of kind k.
func (l *Layout) Count(k Kind) int {
	n := 0
	for i := range l.Objects {
		if l.Objects[i].Kind == k {
			n++
		}
	}
	return n
}
