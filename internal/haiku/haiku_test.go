package haiku

import (
	"os"
	"path/filepath"
	"testing"
)

const table = `
lantern.png:
  haiku: |
    paper lantern glows
    moths gather in the alley
lantern-red.png: red light on the wet street
tree: "old tree"
`

func TestParseKeepsOrderAndFirstMatchWins(t *testing.T) {
	tb, err := Parse([]byte(table))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tb.Len() != 3 {
		t.Fatalf("got %d entries want 3", tb.Len())
	}
	if tb.Entries()[0].Key != "lantern.png" || tb.Entries()[2].Key != "tree" {
		t.Fatalf("order lost: %+v", tb.Entries())
	}
	got, ok := tb.Lookup("/assets/images/lantern-red.webp?v=3")
	if !ok || got != "paper lantern glows\nmoths gather in the alley" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestLookup(t *testing.T) {
	tb, err := Parse([]byte(table))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cases := []struct {
		source string
		want   string
		ok     bool
	}{
		{"models/old-tree-01.glb", "old tree", true},
		{"images/bridge.png", "", false},
		{"", "", false},
		{"images/tree.png?x=lantern", "old tree", true},
	}
	for _, c := range cases {
		got, ok := tb.Lookup(c.source)
		if got != c.want || ok != c.ok {
			t.Fatalf("Lookup(%q) = %q, %v want %q, %v", c.source, got, ok, c.want, c.ok)
		}
	}
}

func TestLookupNormalizesUnicode(t *testing.T) {
	tb := &Table{}
	tb.Add("cafe\u0301.png", "espresso")
	if got, ok := tb.Lookup("images/caf\u00e9.jpg"); !ok || got != "espresso" {
		t.Fatalf("composed name did not match decomposed key: %q, %v", got, ok)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	tb, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tb.Len() != 0 {
		t.Fatalf("got %d entries", tb.Len())
	}
}

func TestLoadRejectsSequence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "haiku.yaml")
	if err := os.WriteFile(file, []byte("- a\n- b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected an error for a sequence document")
	}
}

func TestNilTable(t *testing.T) {
	var tb *Table
	if _, ok := tb.Lookup("a.png"); ok || tb.Len() != 0 {
		t.Fatalf("nil table matched")
	}
}
