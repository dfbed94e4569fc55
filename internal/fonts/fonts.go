// Package fonts finds overlay fonts under the asset root and resolves Google
// Fonts families to downloadable files.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir is the font directory under the asset root.
const Dir = "fonts"

// Exts are the font file extensions we load.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned when no font matches a family.
var ErrNotFound = errors.New("font not found")

// IsFont reports whether name has a font extension.
func IsFont(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan returns the font files under dir as slash-separated paths relative to
// dir. A missing dir yields nothing.
func Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !IsFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	return out, nil
}

// normalize lowercases and drops spaces, dashes and underscores.
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Candidates lists search terms to try in order: the name itself, its first
// path segment, the part before the first dash and the name without extension.
// "Inter/Inter-Regular.ttf" also tries "Inter", "Inter/Inter" and "Inter/Inter-Regular".
func Candidates(name string) []string {
	name = strings.Trim(strings.TrimSpace(name), `"'`)
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	add(name)
	if i := strings.IndexAny(name, `/\`); i > 0 {
		add(name[:i])
	}
	if i := strings.Index(name, "-"); i > 0 {
		add(name[:i])
	}
	if IsFont(name) {
		add(strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return out
}

// Find returns the full path of the font under dir best matching family.
// Every candidate term is tried in order; among several matches a "Regular"
// file wins, else the first in path order.
func Find(dir, family string) (string, error) {
	list, err := Scan(dir)
	if err != nil {
		return "", err
	}
	for _, term := range Candidates(family) {
		norm := normalize(term)
		if norm == "" {
			continue
		}
		var matches []string
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				matches = append(matches, rel)
			}
		}
		if len(matches) == 0 {
			continue
		}
		pick := matches[0]
		for _, m := range matches {
			if strings.Contains(strings.ToLower(m), "regular") {
				pick = m
				break
			}
		}
		return filepath.Join(dir, filepath.FromSlash(pick)), nil
	}
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("fonts: %q: %w (no %s)", family, ErrNotFound, dir)
	}
	return "", fmt.Errorf("fonts: %q: %w", family, ErrNotFound)
}
