package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cityscape/internal/mapgen"
	"gopkg.in/yaml.v3"
)

// LoadManifest reads the model manifest: a YAML list of model files with their
// native bounds. Sources are resolved relative to the manifest's directory.
// A missing manifest means no models.
func LoadManifest(path string) ([]mapgen.ModelSource, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	var models []mapgen.ModelSource
	if err := yaml.Unmarshal(data, &models); err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	out := models[:0]
	for _, m := range models {
		if m.Source == "" || KindOf(m.Source) != KindModel {
			continue
		}
		if !filepath.IsAbs(m.Source) {
			m.Source = filepath.Join(dir, filepath.FromSlash(m.Source))
		}
		out = append(out, m)
	}
	return out, nil
}
