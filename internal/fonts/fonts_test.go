package fonts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("font"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Noto_Serif", "NotoSerif.otf"))
	touch(t, filepath.Join(dir, "readme.txt"))

	got, err := Find(dir, "Inter")
	if err != nil || got != filepath.Join(dir, "Inter", "Inter-Regular.ttf") {
		t.Fatalf("Find(Inter) = %q, %v", got, err)
	}
	got, err = Find(dir, `"Noto Serif"`)
	if err != nil || got != filepath.Join(dir, "Noto_Serif", "NotoSerif.otf") {
		t.Fatalf("Find(Noto Serif) = %q, %v", got, err)
	}
	// falls back to the family before the dash
	got, err = Find(dir, "Inter-Thin.ttf")
	if err != nil || got != filepath.Join(dir, "Inter", "Inter-Regular.ttf") {
		t.Fatalf("Find(Inter-Thin.ttf) = %q, %v", got, err)
	}
	if _, err := Find(dir, "Comic"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v want ErrNotFound", err)
	}
	if _, err := Find(filepath.Join(dir, "missing"), "Inter"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing dir err = %v", err)
	}
}

func TestCandidates(t *testing.T) {
	got := Candidates("Inter/Inter-Regular.ttf")
	want := []string{"Inter/Inter-Regular.ttf", "Inter", "Inter/Inter", "Inter/Inter-Regular"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFolders(t *testing.T) {
	if got := Folders("Open Sans"); fmt.Sprint(got) != "[opensans open-sans]" {
		t.Fatalf("Folders = %q", got)
	}
	if Folders("  ") != nil {
		t.Fatalf("blank name gave folders")
	}
}

func TestGoogleResolve(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ofl/lora":
			fmt.Fprintf(w, `[
				{"name": "OFL.txt", "type": "file", "download_url": "%[1]s/raw/lora/OFL.txt"},
				{"name": "Lora-Italic.ttf", "type": "file", "download_url": "%[1]s/raw/lora/Lora-Italic.ttf"},
				{"name": "Lora.ttf", "type": "file", "download_url": "https://elsewhere.example/Lora.ttf"},
				{"name": "Lora[wght].ttf", "type": "file", "download_url": "%[1]s/raw/lora/Lora[wght].ttf"}
			]`, srv.URL)
		case "/ofl/onlyitalic":
			fmt.Fprintf(w, `[{"name": "X-Italic.ttf", "type": "file", "download_url": "%s/raw/x/X-Italic.ttf"}]`, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	g := Google{API: srv.URL + "/ofl", RawPrefix: srv.URL + "/raw/", Client: srv.Client()}
	got, err := g.Resolve(context.Background(), "Lora")
	if err != nil || got != srv.URL+"/raw/lora/Lora[wght].ttf" {
		t.Fatalf("Resolve(Lora) = %q, %v", got, err)
	}
	got, err = g.Resolve(context.Background(), "Only Italic")
	if err != nil || got != srv.URL+"/raw/x/X-Italic.ttf" {
		t.Fatalf("Resolve(Only Italic) = %q, %v", got, err)
	}
	if _, err := g.Resolve(context.Background(), "Nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v want ErrNotFound", err)
	}
}
