package commands

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func TestExecuteParsesFlagsAndArgs(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	n := fs.Int64("n", 0, "seed")
	var rest []string
	r.Register("seed", "regenerate the city", fs, func(args []string) error {
		rest = args
		return nil
	})

	if err := r.Execute([]string{"seed", "-n", "42", "extra"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if *n != 42 || len(rest) != 1 || rest[0] != "extra" {
		t.Fatalf("n = %d rest = %v", *n, rest)
	}
}

func TestExecuteUnknownAndMissing(t *testing.T) {
	r := NewRegistry()
	r.Register("walk", "terminal viewer", nil, func([]string) error { return nil })
	for _, args := range [][]string{nil, {"fly"}} {
		err := r.Execute(args)
		if !errors.Is(err, ErrUsage) || !strings.Contains(err.Error(), "walk") {
			t.Fatalf("Execute(%v) = %v", args, err)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{":seed -n 3", []string{"seed", "-n", "3"}, true},
		{"  :music   next ", []string{"music", "next"}, true},
		{":", nil, true},
		{"hello", nil, false},
	}
	for _, c := range cases {
		args, ok := Parse(c.line)
		if ok != c.ok || strings.Join(args, "|") != strings.Join(c.args, "|") {
			t.Fatalf("Parse(%q) = %v, %v", c.line, args, ok)
		}
	}
}

func TestUsageIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("walk", "terminal viewer", nil, nil)
	r.Register("run", "window viewer", nil, nil)
	var buf bytes.Buffer
	r.Usage(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "run") || !strings.Contains(lines[1], "walk") {
		t.Fatalf("usage = %q", buf.String())
	}
}

func TestRunLine(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register("tp", "teleport", nil, func(args []string) error {
		got = args
		return nil
	})
	if err := r.RunLine(":tp 3 4"); err != nil {
		t.Fatalf("RunLine: %v", err)
	}
	if len(got) != 2 || got[0] != "3" || got[1] != "4" {
		t.Fatalf("args = %q", got)
	}
	if err := r.RunLine("tp 3 4"); !errors.Is(err, ErrNotCommand) {
		t.Fatalf("err = %v want ErrNotCommand", err)
	}
}

func TestPromptEditingAndHistory(t *testing.T) {
	var p Prompt
	p.Insert(":seed")
	p.Insert(" -n 4é")
	p.Backspace()
	if p.Text() != ":seed -n 4" {
		t.Fatalf("text = %q", p.Text())
	}
	if line := p.Submit(); line != ":seed -n 4" || p.Text() != "" {
		t.Fatalf("submit = %q, left %q", line, p.Text())
	}
	p.Insert("  ")
	if line := p.Submit(); line != "" {
		t.Fatalf("blank submit = %q", line)
	}
	p.Insert(":fps")
	p.Submit()

	p.Prev()
	if p.Text() != ":fps" {
		t.Fatalf("prev = %q", p.Text())
	}
	p.Prev()
	p.Prev()
	if p.Text() != ":seed -n 4" {
		t.Fatalf("oldest = %q", p.Text())
	}
	p.Next()
	if p.Text() != ":fps" {
		t.Fatalf("next = %q", p.Text())
	}
	p.Next()
	if p.Text() != "" {
		t.Fatalf("past newest = %q", p.Text())
	}
}
