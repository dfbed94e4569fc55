package mapgen

import "cityscape/internal/geom"

// Options controls city layout generation.
// Grid is the number of cells per side; Spacing is the world size of one cell on X/Z.
// Every RoadEvery-th row and column is a road. BuildingSize is the side of the cube
// placed on each non-road cell. Jitter is the total width of the random positional
// noise; Margin expands every bounding volume. Seed == 0 uses a time-based seed.
type Options struct {
	Seed           int64   `yaml:"seed"`
	Grid           int     `yaml:"grid"`
	Spacing        float32 `yaml:"spacing"`
	RoadEvery      int     `yaml:"road_every"`
	BuildingSize   float32 `yaml:"building_size"`
	Jitter         float32 `yaml:"jitter"`
	Margin         float32 `yaml:"margin"`
	RoadWidthRatio float32 `yaml:"road_width_ratio"`
	VideoChance    float32 `yaml:"video_chance"`
	WrapMin        float32 `yaml:"wrap_min"`
	WrapRatio      float32 `yaml:"wrap_ratio"`

	Scatter ScatterOptions `yaml:"scatter"`
	Models  ModelOptions   `yaml:"models"`
	Panels  PanelOptions   `yaml:"panels"`
	Spawn   SpawnOptions   `yaml:"spawn"`
}

// ScatterOptions controls rejection sampling of free-standing props.
// Radius == 0 derives the disk radius from the city extent times RadiusRatio.
type ScatterOptions struct {
	Radius      float32   `yaml:"radius"`
	RadiusRatio float32   `yaml:"radius_ratio"`
	Retries     int       `yaml:"retries"`
	Fallback    geom.Vec3 `yaml:"fallback"`
}

// ModelOptions controls how imported models are sized before placement.
type ModelOptions struct {
	PerSource       int     `yaml:"per_source"`
	TargetSize      float32 `yaml:"target_size"`
	InitialScaleMin float32 `yaml:"initial_scale_min"`
	InitialScaleMax float32 `yaml:"initial_scale_max"`
	ScaleMin        float32 `yaml:"scale_min"`
	ScaleMax        float32 `yaml:"scale_max"`
	LiftEpsilon     float32 `yaml:"lift_epsilon"`
}

// PanelOptions describes the decorative boards scattered between buildings.
type PanelOptions struct {
	Count     int     `yaml:"count"`
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	Thickness float32 `yaml:"thickness"`
	Elevation float32 `yaml:"elevation"`
}

// SpawnOptions controls the search for a free starting position.
type SpawnOptions struct {
	EyeHeight float32 `yaml:"eye_height"`
	Radius    float32 `yaml:"radius"`
	Tries     int     `yaml:"tries"`
}

// DefaultOptions returns the layout used by the viewer: a 12x12 grid of 3.5-unit
// cubes, 8 units apart, with a road every fourth line.
func DefaultOptions() Options {
	return Options{
		Seed:           0,
		Grid:           12,
		Spacing:        8,
		RoadEvery:      4,
		BuildingSize:   3.5,
		Jitter:         0.6,
		Margin:         0.25,
		RoadWidthRatio: 0.9,
		VideoChance:    0.12,
		WrapMin:        48,
		WrapRatio:      0.55,
		Scatter: ScatterOptions{
			RadiusRatio: 0.45,
			Retries:     50,
			Fallback:    geom.Vec3{0, 0, -60},
		},
		Models: ModelOptions{
			PerSource:       2,
			TargetSize:      3,
			InitialScaleMin: 0.6,
			InitialScaleMax: 1.4,
			ScaleMin:        0.05,
			ScaleMax:        20,
			LiftEpsilon:     0.02,
		},
		Panels: PanelOptions{
			Count:     24,
			Width:     2.4,
			Height:    1.6,
			Thickness: 0.12,
			Elevation: 0.6,
		},
		Spawn: SpawnOptions{
			EyeHeight: 1.8,
			Radius:    0.45,
			Tries:     300,
		},
	}
}

// sanitize replaces values that would make generation meaningless with defaults.
// Fields where zero is a legitimate choice (Jitter, Margin, VideoChance, counts) are left alone.
func (o Options) sanitize() Options {
	d := DefaultOptions()
	if o.Grid <= 0 {
		o.Grid = d.Grid
	}
	if o.Spacing <= 0 {
		o.Spacing = d.Spacing
	}
	if o.RoadEvery <= 0 {
		o.RoadEvery = d.RoadEvery
	}
	if o.BuildingSize <= 0 {
		o.BuildingSize = d.BuildingSize
	}
	if o.RoadWidthRatio <= 0 {
		o.RoadWidthRatio = d.RoadWidthRatio
	}
	if o.WrapRatio <= 0 {
		o.WrapRatio = d.WrapRatio
	}
	if o.Scatter.RadiusRatio <= 0 {
		o.Scatter.RadiusRatio = d.Scatter.RadiusRatio
	}
	if o.Scatter.Retries <= 0 {
		o.Scatter.Retries = d.Scatter.Retries
	}
	if o.Models.TargetSize <= 0 {
		o.Models.TargetSize = d.Models.TargetSize
	}
	if o.Models.InitialScaleMin <= 0 {
		o.Models.InitialScaleMin = d.Models.InitialScaleMin
	}
	if o.Models.InitialScaleMax < o.Models.InitialScaleMin {
		o.Models.InitialScaleMax = o.Models.InitialScaleMin
	}
	if o.Models.ScaleMin <= 0 {
		o.Models.ScaleMin = d.Models.ScaleMin
	}
	if o.Models.ScaleMax < o.Models.ScaleMin {
		o.Models.ScaleMax = o.Models.ScaleMin
	}
	if o.Spawn.EyeHeight <= 0 {
		o.Spawn.EyeHeight = d.Spawn.EyeHeight
	}
	if o.Spawn.Radius <= 0 {
		o.Spawn.Radius = d.Spawn.Radius
	}
	if o.Spawn.Tries <= 0 {
		o.Spawn.Tries = d.Spawn.Tries
	}
	return o
}
