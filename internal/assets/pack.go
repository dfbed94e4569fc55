package assets

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Unpack extracts the media files of a zip asset pack into root, keeping the
// pack's directory layout (img/, music/, models/ ...). Entries that would land
// outside root are skipped, as are files that are neither media, YAML tables
// nor model buffers.
// Returns the extracted paths.
func Unpack(zipPath, root string) (extracted []string, err error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("assets: unpack: %w", err)
	}
	defer r.Close()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("assets: unpack: %w", err)
	}
	if err := os.MkdirAll(absRoot, 0755); err != nil {
		return nil, fmt.Errorf("assets: unpack: %w", err)
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !wanted(f.Name) {
			continue
		}
		dest := filepath.Join(absRoot, filepath.FromSlash(f.Name))
		if !strings.HasPrefix(dest, absRoot+string(os.PathSeparator)) {
			continue
		}
		if err := extract(f, dest); err != nil {
			return extracted, err
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

func wanted(name string) bool {
	if KindOf(name) != KindUnknown {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml" || ext == ".bin"
}

func extract(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("assets: unpack: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("assets: unpack: %w", err)
	}
	defer out.Close()
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("assets: unpack: %w", err)
	}
	defer rc.Close()
	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("assets: unpack %s: %w", f.Name, err)
	}
	return nil
}
