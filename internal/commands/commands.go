// Package commands dispatches named subcommands, each with its own flag set.
// The same registry serves process arguments and console lines typed in the viewers.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Prefix marks a console line as a command, e.g. ":seed -n 42".
const Prefix = ":"

// ErrUsage is returned for a missing or unknown subcommand.
var ErrUsage = errors.New("usage")

// Command is a subcommand. Run gets the positional arguments left after flag parsing.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. A nil fs gets an empty flag set that reports
// parse errors instead of exiting.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse splits a console line. Lines starting with Prefix are tokenized on
// whitespace and returned with ok true; anything else is not a command.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Prefix) {
		return nil, false
	}
	return strings.Fields(line[len(Prefix):]), true
}

// Execute runs args[0] with args[1:] as its flags and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command (one of %s)", ErrUsage, strings.Join(r.Names(), ", "))
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q (one of %s)", ErrUsage, args[0], strings.Join(r.Names(), ", "))
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// Usage writes one line per command with its summary.
func (r *Registry) Usage(w io.Writer) {
	for _, n := range r.Names() {
		fmt.Fprintf(w, "  %-8s %s\n", n, r.cmds[n].Summary)
	}
}
