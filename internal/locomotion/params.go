// Package locomotion advances the player through the frozen city: heading,
// sliding movement against the occupancy list, floor clamp, coordinate wrap and
// gaze selection of the object the player is looking at.
package locomotion

// Params are the player tuning values. Rates are per second; the loop scales
// them by the frame's dt.
type Params struct {
	TurnRate       float32 `yaml:"turn_rate"`       // radians per second while a turn key is held
	Speed          float32 `yaml:"speed"`           // units per second at full input
	PlayerRadius   float32 `yaml:"player_radius"`   // collision sphere
	EyeHeight      float32 `yaml:"eye_height"`
	MinHeight      float32 `yaml:"min_height"`      // floor for the eye
	MaxDt          float32 `yaml:"max_dt"`          // longer frames are clamped
	WrapHysteresis float32 `yaml:"wrap_hysteresis"` // fraction of the wrap limit that counts as isolated
	PitchLimit     float32 `yaml:"pitch_limit"`
	MaxDistance    float32 `yaml:"max_distance"` // gaze reach
	MinDot         float32 `yaml:"min_dot"`      // gaze cone cosine
	AnchorLift     float32 `yaml:"anchor_lift"`  // overlay offset above the projected center, in pixels
}

// DefaultParams matches the walking feel of the browser build at 60 fps:
// 0.03 rad and 0.35 units per frame.
func DefaultParams() Params {
	return Params{
		TurnRate:       1.8,
		Speed:          21,
		PlayerRadius:   0.45,
		EyeHeight:      1.8,
		MinHeight:      1.5,
		MaxDt:          0.1,
		WrapHysteresis: 0.9,
		PitchLimit:     1.4,
		MaxDistance:    6,
		MinDot:         0.7,
		AnchorLift:     36,
	}
}

// Sanitize fills non-positive values with defaults.
func (p Params) Sanitize() Params {
	d := DefaultParams()
	fix := func(v *float32, def float32) {
		if *v <= 0 {
			*v = def
		}
	}
	fix(&p.TurnRate, d.TurnRate)
	fix(&p.Speed, d.Speed)
	fix(&p.PlayerRadius, d.PlayerRadius)
	fix(&p.EyeHeight, d.EyeHeight)
	fix(&p.MinHeight, d.MinHeight)
	fix(&p.MaxDt, d.MaxDt)
	fix(&p.WrapHysteresis, d.WrapHysteresis)
	fix(&p.PitchLimit, d.PitchLimit)
	fix(&p.MaxDistance, d.MaxDistance)
	fix(&p.MinDot, d.MinDot)
	return p
}
