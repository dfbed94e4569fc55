// Package particles simulates the fireflies drifting around the player.
package particles

import (
	"cityscape/internal/geom"
	"github.com/chewxy/math32"
)

// Rand is the random source used to scatter the initial swarm.
type Rand interface {
	Float32() float32
}

// Options configures the swarm. Field is the half-width of the square the
// fireflies live in, centered on the anchor; MinY/MaxY bound their height.
type Options struct {
	Count      int     `yaml:"count"`
	Field      float32 `yaml:"field"`
	MinY       float32 `yaml:"min_y"`
	MaxY       float32 `yaml:"max_y"`
	Speed      float32 `yaml:"speed"`
	Climb      float32 `yaml:"climb"`
	NoiseScale float32 `yaml:"noise_scale"`
	Drift      float32 `yaml:"drift"`
	Seed       int32   `yaml:"seed"`
}

// DefaultOptions returns a sparse swarm between knee and roof height.
func DefaultOptions() Options {
	return Options{
		Count:      160,
		Field:      40,
		MinY:       0.4,
		MaxY:       6,
		Speed:      0.8,
		Climb:      0.35,
		NoiseScale: 0.08,
		Drift:      0.15,
		Seed:       11,
	}
}

// Firefly is one particle. Glow is in [0,1].
type Firefly struct {
	Position geom.Vec3
	Climb    float32
	Phase    float32
	Freq     float32
	Glow     float32
}

// System is the swarm state.
type System struct {
	opts  Options
	flies []Firefly
	time  float32
}

// New scatters opts.Count fireflies around anchor.
func New(opts Options, anchor geom.Vec3, rng Rand) *System {
	d := DefaultOptions()
	if opts.Field <= 0 {
		opts.Field = d.Field
	}
	if opts.MaxY <= opts.MinY {
		opts.MinY, opts.MaxY = d.MinY, d.MaxY
	}
	if opts.NoiseScale <= 0 {
		opts.NoiseScale = d.NoiseScale
	}
	s := &System{opts: opts, flies: make([]Firefly, max(opts.Count, 0))}
	for i := range s.flies {
		f := &s.flies[i]
		f.Position = geom.Vec3{
			anchor[0] + (rng.Float32()*2-1)*opts.Field,
			opts.MinY + rng.Float32()*(opts.MaxY-opts.MinY),
			anchor[2] + (rng.Float32()*2-1)*opts.Field,
		}
		f.Climb = (rng.Float32()*2 - 1) * opts.Climb
		f.Phase = rng.Float32() * 2 * math32.Pi
		f.Freq = 1.5 + rng.Float32()*2.5
		f.Glow = glow(f.Phase, f.Freq, 0)
	}
	return s
}

// Update advances the swarm by dt seconds. Headings follow a slowly drifting
// noise field; heights bounce inside the band; x and z wrap around anchor so the
// swarm follows the player.
func (s *System) Update(dt float32, anchor geom.Vec3) {
	if s == nil || !(dt > 0) {
		return
	}
	s.time += dt
	o := s.opts
	for i := range s.flies {
		f := &s.flies[i]
		n := fractalValueNoise2D(f.Position[0]*o.NoiseScale, f.Position[2]*o.NoiseScale+s.time*o.Drift, o.Seed, 2, 2, 0.5)
		heading := n * 4 * math32.Pi
		f.Position[0] += math32.Cos(heading) * o.Speed * dt
		f.Position[2] += math32.Sin(heading) * o.Speed * dt

		f.Position[1] += f.Climb * dt
		if f.Position[1] < o.MinY {
			f.Position[1] = 2*o.MinY - f.Position[1]
			f.Climb = math32.Abs(f.Climb)
		}
		if f.Position[1] > o.MaxY {
			f.Position[1] = 2*o.MaxY - f.Position[1]
			f.Climb = -math32.Abs(f.Climb)
		}
		f.Position[1] = math32.Max(o.MinY, math32.Min(o.MaxY, f.Position[1]))

		f.Position[0] = anchor[0] + geom.Wrap(f.Position[0]-anchor[0], o.Field)
		f.Position[2] = anchor[2] + geom.Wrap(f.Position[2]-anchor[2], o.Field)
		f.Glow = glow(f.Phase, f.Freq, s.time)
	}
}

// Flies returns the particles. Callers must not modify the slice.
func (s *System) Flies() []Firefly {
	if s == nil {
		return nil
	}
	return s.flies
}

// Options returns the sanitized options the system runs with.
func (s *System) Options() Options {
	return s.opts
}

func glow(phase, freq, t float32) float32 {
	return 0.5 + 0.5*math32.Sin(phase+t*freq)
}
