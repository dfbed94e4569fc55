package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Fetch downloads an asset (usually a zip pack) into destDir and returns the
// saved path. The file name comes from Content-Disposition or the URL; the
// extension from the URL or Content-Type.
func Fetch(ctx context.Context, url, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assets: fetch: HTTP %d", resp.StatusCode)
	}

	name := nameFromDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = nameFromURL(url)
	}
	name = sanitizeName(name)
	if filepath.Ext(name) == "" {
		name += extFromContentType(resp.Header.Get("Content-Type"))
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	saved := filepath.Join(destDir, name)
	out, err := os.Create(saved)
	if err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = os.Remove(saved)
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	return saved, nil
}

func nameFromDisposition(cd string) string {
	if i := strings.Index(cd, "filename*=UTF-8''"); i >= 0 {
		s := cd[i+len("filename*=UTF-8''"):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\"")
	}
	if i := strings.Index(cd, "filename="); i >= 0 {
		s := cd[i+len("filename="):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\" ")
	}
	return ""
}

func nameFromURL(url string) string {
	if i := strings.Index(url, "?"); i >= 0 {
		url = url[:i]
	}
	return filepath.Base(url)
}

func extFromContentType(ct string) string {
	ct = strings.ToLower(ct)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	switch {
	case strings.Contains(ct, "zip"):
		return ".zip"
	case strings.Contains(ct, "png"):
		return ".png"
	case strings.Contains(ct, "jpeg"):
		return ".jpg"
	case strings.Contains(ct, "webp"):
		return ".webp"
	case strings.Contains(ct, "mpeg"):
		return ".mp3"
	case strings.Contains(ct, "ogg"):
		return ".ogg"
	}
	return ".bin"
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeName(name string) string {
	name = unsafeName.ReplaceAllString(name, "_")
	name = strings.Trim(name, ".")
	if name == "" || name == "_" {
		return "pack"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
