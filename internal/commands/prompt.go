package commands

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotCommand is returned by RunLine for lines without the command prefix.
var ErrNotCommand = errors.New("not a command")

// RunLine executes a console line such as ":seed -n 42".
func (r *Registry) RunLine(line string) error {
	args, ok := Parse(line)
	if !ok {
		return fmt.Errorf("%w: commands start with %q (try %shelp)", ErrNotCommand, Prefix, Prefix)
	}
	return r.Execute(args)
}

// Prompt is a single-line editor with history, shared by the consoles.
type Prompt struct {
	buf     []rune
	history []string
	browse  int // index into history while browsing; len(history) when not
}

// Insert appends typed text.
func (p *Prompt) Insert(s string) {
	p.buf = append(p.buf, []rune(s)...)
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if len(p.buf) > 0 {
		p.buf = p.buf[:len(p.buf)-1]
	}
}

// Text is the current input.
func (p *Prompt) Text() string {
	return string(p.buf)
}

// Clear drops the input and stops browsing.
func (p *Prompt) Clear() {
	p.buf = p.buf[:0]
	p.browse = len(p.history)
}

// Submit returns the trimmed input, records it in history and clears the line.
// Blank input returns "" and is not recorded.
func (p *Prompt) Submit() string {
	line := strings.TrimSpace(string(p.buf))
	if line != "" && (len(p.history) == 0 || p.history[len(p.history)-1] != line) {
		p.history = append(p.history, line)
	}
	p.Clear()
	return line
}

// Prev replaces the input with the previous history entry.
func (p *Prompt) Prev() {
	if p.browse > 0 {
		p.browse--
		p.buf = []rune(p.history[p.browse])
	}
}

// Next moves forward in history; past the newest entry the line is empty.
func (p *Prompt) Next() {
	if p.browse < len(p.history)-1 {
		p.browse++
		p.buf = []rune(p.history[p.browse])
		return
	}
	p.Clear()
}
