package render

import (
	"cityscape/internal/geom"
	"cityscape/internal/logger"
	"cityscape/internal/mapgen"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Models loads each model source once. A source that fails to load is drawn
// as its bounding box so the occupied space stays visible.
type Models struct {
	loaded map[string]rl.Model
	failed map[string]bool
	log    *logger.Logger
}

func NewModels(log *logger.Logger) *Models {
	return &Models{loaded: make(map[string]rl.Model), failed: make(map[string]bool), log: log}
}

func (m *Models) get(source string) (rl.Model, bool) {
	if mdl, ok := m.loaded[source]; ok {
		return mdl, true
	}
	if m.failed[source] {
		return rl.Model{}, false
	}
	mdl := rl.LoadModel(source)
	if !rl.IsModelValid(mdl) {
		m.failed[source] = true
		m.log.Logf("render: could not load model %s, drawing its bounds", source)
		return rl.Model{}, false
	}
	m.loaded[source] = mdl
	return mdl, true
}

// Draw draws a placed model at its position, yaw and scale.
func (m *Models) Draw(p *Primitives, obj mapgen.Object) {
	mdl, ok := m.get(obj.Source)
	if !ok {
		b := obj.Box
		p.Box(b.Center(), b.Size(), 0, rl.NewColor(90, 90, 110, 255))
		return
	}
	pos := rl.NewVector3(obj.Position[0], obj.Position[1], obj.Position[2])
	s := obj.Scale
	rl.DrawModelEx(mdl, pos, rl.NewVector3(0, 1, 0), obj.Yaw*180/math32.Pi, rl.NewVector3(s, s, s), rl.White)
}

// Unload frees every loaded model.
func (m *Models) Unload() {
	for k, mdl := range m.loaded {
		rl.UnloadModel(mdl)
		delete(m.loaded, k)
	}
}

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
