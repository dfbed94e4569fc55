// Package haiku maps interaction keys to overlay text.
//
// The table is a YAML mapping from an asset name to its text, either as a plain
// string or as {haiku: text}. Entries are matched in file order.
package haiku

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Entry is one key and its overlay text.
type Entry struct {
	Key  string
	Text string
}

// Table is an ordered key to text lookup.
type Table struct {
	entries []Entry
}

type entryBody struct {
	Haiku string `yaml:"haiku"`
}

// Parse decodes a table from YAML, keeping the mapping order.
func Parse(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("haiku: %w", err)
	}
	t := &Table{}
	if len(doc.Content) == 0 {
		return t, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("haiku: line %d: top level must be a mapping", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		var text string
		switch v.Kind {
		case yaml.ScalarNode:
			text = v.Value
		case yaml.MappingNode:
			var body entryBody
			if err := v.Decode(&body); err != nil {
				return nil, fmt.Errorf("haiku: key %q: %w", k.Value, err)
			}
			text = body.Haiku
		default:
			return nil, fmt.Errorf("haiku: line %d: key %q needs text", v.Line, k.Value)
		}
		t.Add(k.Value, text)
	}
	return t, nil
}

// Load reads a table file. A missing file yields an empty table.
func Load(file string) (*Table, error) {
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("haiku: %w", err)
	}
	return Parse(data)
}

// Add appends an entry. Keys and text are NFC-normalized so composed and
// decomposed spellings of the same file name match.
func (t *Table) Add(key, text string) {
	key = strings.TrimSpace(norm.NFC.String(key))
	if key == "" {
		return
	}
	t.entries = append(t.entries, Entry{Key: key, Text: norm.NFC.String(strings.TrimRight(text, "\n"))})
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns the entries in match order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Lookup finds the text for an asset source path or URL. The source's base
// name, without query string and extension, must contain the key without its
// extension. The first matching entry wins.
func (t *Table) Lookup(source string) (string, bool) {
	if t == nil || source == "" {
		return "", false
	}
	name := Stem(source)
	if name == "" {
		return "", false
	}
	for _, e := range t.entries {
		key := trimExt(e.Key)
		if key == "" {
			continue
		}
		if strings.Contains(name, key) {
			return e.Text, true
		}
	}
	return "", false
}

// Stem returns the NFC-normalized base name of source without query string or extension.
func Stem(source string) string {
	source = norm.NFC.String(strings.ReplaceAll(source, "\\", "/"))
	if i := strings.IndexByte(source, '?'); i >= 0 {
		source = source[:i]
	}
	base := path.Base(source)
	if base == "." || base == "/" {
		return ""
	}
	return trimExt(base)
}

func trimExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
