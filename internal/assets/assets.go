// Package assets finds and prepares the media the city is dressed with:
// face images, music, the video wall, model manifests and the haiku table.
// Everything here degrades: a missing or broken file is skipped and logged.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cityscape/internal/logger"
	"cityscape/internal/mapgen"
)

// Kind is the media category of a file, decided by extension.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindMusic
	KindVideo
	KindModel
	KindPack
)

// KindOf classifies a path or URL by its extension. Query strings are ignored.
func KindOf(name string) Kind {
	if i := strings.Index(name, "?"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return KindImage
	case ".mp3", ".ogg":
		return KindMusic
	case ".mp4", ".webm":
		return KindVideo
	case ".glb", ".gltf", ".obj", ".iqm", ".vox", ".m3d":
		return KindModel
	case ".zip":
		return KindPack
	}
	return KindUnknown
}

// Directory names under the asset root.
const (
	ImageDir  = "img"
	MusicDir  = "music"
	VideoFile = "video/0001.mp4"
	ModelDir  = "models"
	Manifest  = "models/models.yaml"
	HaikuFile = "haiku.yaml"
)

// Catalog lists what was found under an asset root. Paths are joined with the root.
type Catalog struct {
	Root   string
	Images []string
	Music  []string
	Video  string
	Models []mapgen.ModelSource
	Haiku  string
}

// Discover scans root. Missing directories yield empty lists; only an unreadable
// root or a malformed model manifest is an error.
func Discover(root string, log *logger.Logger) (Catalog, error) {
	c := Catalog{Root: root}
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Logf("assets: %s does not exist, using an empty catalog", root)
			return c, nil
		}
		return c, fmt.Errorf("assets: %w", err)
	}

	var err error
	if c.Images, err = listKind(filepath.Join(root, ImageDir), KindImage); err != nil {
		return c, err
	}
	if c.Music, err = listKind(filepath.Join(root, MusicDir), KindMusic); err != nil {
		return c, err
	}
	if video := filepath.Join(root, filepath.FromSlash(VideoFile)); fileExists(video) {
		c.Video = video
	}
	if haiku := filepath.Join(root, HaikuFile); fileExists(haiku) {
		c.Haiku = haiku
	}
	if c.Models, err = LoadManifest(filepath.Join(root, filepath.FromSlash(Manifest))); err != nil {
		return c, err
	}
	log.Logf("assets: %d images, %d tracks, %d models, video %t",
		len(c.Images), len(c.Music), len(c.Models), c.Video != "")
	return c, nil
}

// listKind returns the files of kind k directly inside dir, sorted by name.
func listKind(dir string, k Kind) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || KindOf(e.Name()) != k {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
