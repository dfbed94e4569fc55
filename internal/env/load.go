// Package env loads KEY=VALUE files into the process environment before the
// configuration is read, so CITYSCAPE_* settings can live next to the binary.
package env

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Load reads path (usually ".env") and sets every KEY=VALUE line that is not
// already set in the environment. Blank lines, # comments and a leading
// "export " are allowed; values may be quoted. A missing file is not an error.
// It returns the keys it set.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	defer f.Close()

	var set []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return set, fmt.Errorf("env: %s: %w", key, err)
		}
		set = append(set, key)
	}
	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("env: %w", err)
	}
	return set, nil
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if n := len(value); n >= 2 && (value[0] == '"' && value[n-1] == '"' || value[0] == '\'' && value[n-1] == '\'') {
		return key, value[1 : n-1], true
	}
	if i := strings.Index(value, " #"); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}
	return key, value, true
}
