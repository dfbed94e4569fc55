package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is where the viewer appends its log, relative to the working directory.
const DefaultPath = "logs/cityscape.txt"

// maxLines caps the in-memory history; the file keeps everything.
const maxLines = 512

// Logger stores timestamped lines in memory and, when a path is set, appends them to a file.
// A nil *Logger discards everything, so engine packages can take one optionally.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
}

// New returns a Logger appending to path. An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path}
}

// Log appends a line prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	if l == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns the most recent line, or "" when nothing was logged.
func (l *Logger) Last() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}
