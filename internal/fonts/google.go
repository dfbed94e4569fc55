package fonts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Google resolves family names against the google/fonts repository listing.
// Only download URLs under RawPrefix are accepted.
type Google struct {
	API       string
	RawPrefix string
	Client    *http.Client
}

// DefaultGoogle points at the public google/fonts repository.
func DefaultGoogle() Google {
	return Google{
		API:       "https://api.github.com/repos/google/fonts/contents/ofl",
		RawPrefix: "https://raw.githubusercontent.com/google/fonts/",
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Folders turns a display name into the folder names google/fonts uses:
// "Open Sans" -> "opensans", "open-sans".
func Folders(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	noSpaces := strings.ReplaceAll(lower, " ", "")
	withHyphens := strings.ReplaceAll(lower, " ", "-")
	out := []string{noSpaces}
	if withHyphens != noSpaces {
		out = append(out, withHyphens)
	}
	return out
}

// Resolve returns the download URL of the first upright font file of family.
func (g Google) Resolve(ctx context.Context, family string) (string, error) {
	folders := Folders(family)
	if len(folders) == 0 {
		return "", fmt.Errorf("fonts: empty family name")
	}
	var lastErr error
	for _, folder := range folders {
		u, err := g.resolveFolder(ctx, folder)
		if err == nil {
			return u, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// resolveFolder prefers a file without "italic" in its name and falls back to
// the first italic one.
func (g Google) resolveFolder(ctx context.Context, folder string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.API+"/"+url.PathEscape(folder), nil)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("fonts: %q: %w on Google Fonts", folder, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	var fallback string
	for _, f := range files {
		if f.Type != "file" || !IsFont(f.Name) || !strings.HasPrefix(f.DownloadURL, g.RawPrefix) {
			continue
		}
		if strings.Contains(strings.ToLower(f.Name), "italic") {
			if fallback == "" {
				fallback = f.DownloadURL
			}
			continue
		}
		return f.DownloadURL, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("fonts: %q: %w (no .ttf/.otf)", folder, ErrNotFound)
}
