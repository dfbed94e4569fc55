package app

import (
	"io"

	"cityscape/internal/geom"
	"cityscape/internal/mapgen"
	"gopkg.in/yaml.v3"
)

// Summary is the printable form of a layout.
type Summary struct {
	Seed      int64           `yaml:"seed"`
	Extent    float32         `yaml:"extent"`
	WrapLimit float32         `yaml:"wrap_limit"`
	Buildings int             `yaml:"buildings"`
	Models    int             `yaml:"models"`
	Panels    int             `yaml:"panels"`
	Roads     int             `yaml:"roads"`
	Fallbacks int             `yaml:"fallbacks"`
	Spawn     geom.Vec3       `yaml:"spawn,flow"`
	SpawnYaw  float32         `yaml:"spawn_yaw"`
	Objects   []ObjectSummary `yaml:"objects,omitempty"`
}

// ObjectSummary is one placed object.
type ObjectSummary struct {
	Index    int       `yaml:"index"`
	Kind     string    `yaml:"kind"`
	Position geom.Vec3 `yaml:"position,flow"`
	Key      string    `yaml:"key,omitempty"`
	Fallback bool      `yaml:"fallback,omitempty"`
}

// Summarize describes the current layout; objects lists every placement.
func (a *App) Summarize(objects bool) Summary {
	l := a.Scene.Layout
	s := Summary{
		Seed:      a.Seed,
		Extent:    l.Extent,
		WrapLimit: l.WrapLimit,
		Buildings: l.Count(mapgen.KindBuilding),
		Models:    l.Count(mapgen.KindModel),
		Panels:    l.Count(mapgen.KindPanel),
		Roads:     len(l.Roads),
		Fallbacks: l.Fallbacks,
		Spawn:     l.Spawn,
		SpawnYaw:  l.SpawnYaw,
	}
	if objects {
		for _, o := range l.Objects {
			s.Objects = append(s.Objects, ObjectSummary{
				Index:    o.Index,
				Kind:     o.Kind.String(),
				Position: o.Position,
				Key:      o.Key,
				Fallback: o.Fallback,
			})
		}
	}
	return s
}

// WriteSummary encodes s as YAML.
func WriteSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
