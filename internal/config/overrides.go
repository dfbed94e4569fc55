package config

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Overrides are the layout values settable from the command line.
// Zero fields leave the loaded configuration alone.
type Overrides struct {
	Seed      int64
	Grid      int
	Spacing   float32
	RoadEvery int
}

// Apply layers o over the layout and re-checks the result.
func (c Config) Apply(o Overrides) (Config, error) {
	if err := copier.CopyWithOption(&c.Layout, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return c, fmt.Errorf("config: overrides: %w", err)
	}
	if err := c.Check(); err != nil {
		return c, err
	}
	return c, nil
}
