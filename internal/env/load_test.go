package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# comment\n\nCITYSCAPE_TEST_A=plain # trailing\nexport CITYSCAPE_TEST_B=\"quoted # kept\"\nCITYSCAPE_TEST_C=from-file\nnot a pair\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CITYSCAPE_TEST_C", "from-shell")
	t.Setenv("CITYSCAPE_TEST_A", "")
	os.Unsetenv("CITYSCAPE_TEST_A")
	t.Setenv("CITYSCAPE_TEST_B", "")
	os.Unsetenv("CITYSCAPE_TEST_B")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("set %v want A and B", set)
	}
	if got := os.Getenv("CITYSCAPE_TEST_A"); got != "plain" {
		t.Fatalf("A = %q", got)
	}
	if got := os.Getenv("CITYSCAPE_TEST_B"); got != "quoted # kept" {
		t.Fatalf("B = %q", got)
	}
	if got := os.Getenv("CITYSCAPE_TEST_C"); got != "from-shell" {
		t.Fatalf("C = %q, shell value was overwritten", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil || set != nil {
		t.Fatalf("got %v, %v", set, err)
	}
}
