package mapgen

import (
	"math/rand"
	"time"

	"cityscape/internal/logger"
	"cityscape/internal/physics"
	"github.com/chewxy/math32"
)

type generator struct {
	opts   Options
	src    Sources
	rng    Rand
	log    *logger.Logger
	layout *Layout
}

// Generate builds a city layout: the building grid, road strips, scattered models
// and panels, the wrap limit and a spawn pose. The occupancy list is frozen on
// return. A nil rng seeds one from opts.Seed (or the clock when the seed is 0).
// Generation never fails; exhausted placements are logged to log.
func Generate(opts Options, src Sources, rng Rand, log *logger.Logger) *Layout {
	opts = opts.sanitize()
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	length := float32(opts.Grid)*opts.Spacing + opts.Spacing
	g := &generator{
		opts: opts,
		src:  src,
		rng:  rng,
		log:  log,
		layout: &Layout{
			Occupancy: physics.NewOccupancy(),
			Extent:    length,
			WrapLimit: math32.Max(opts.WrapMin, math32.Ceil(length*opts.WrapRatio)),
		},
	}

	g.buildings()
	g.roads()
	g.models()
	g.panels()
	g.findSpawn()
	g.layout.Occupancy.Freeze()

	log.Logf("mapgen: %d buildings, %d models, %d panels, %d fallbacks, wrap %.0f",
		g.layout.Count(KindBuilding), g.layout.Count(KindModel), g.layout.Count(KindPanel),
		g.layout.Fallbacks, g.layout.WrapLimit)
	return g.layout
}

// commit registers obj and appends its bounding volume to the occupancy list.
func (g *generator) commit(obj Object) {
	obj.Index = len(g.layout.Objects)
	g.layout.Objects = append(g.layout.Objects, obj)
	if err := g.layout.Occupancy.Add(obj.Box, obj.Index); err != nil {
		g.log.Logf("mapgen: %v", err)
	}
}
