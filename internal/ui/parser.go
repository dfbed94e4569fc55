package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a small CSS subset: rules whose selectors are .class or #id
// (comma lists allowed) with "key: value;" declarations. Other rules and
// at-rules are skipped. Later rules override earlier ones.
func ParseCSS(r io.Reader) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInput(r), false)
	sheet := &Stylesheet{}
	var selectors []string
	var props map[string]string
	depth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return sheet, fmt.Errorf("ui: css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			depth++
		case css.EndAtRuleGrammar:
			depth--
		case css.QualifiedRuleGrammar:
			if sel := selector(p.Values()); sel != "" {
				selectors = append(selectors, sel)
			}
		case css.BeginRulesetGrammar:
			if sel := selector(p.Values()); sel != "" {
				selectors = append(selectors, sel)
			}
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = value(p.Values())
			}
		case css.EndRulesetGrammar:
			if depth == 0 {
				for _, sel := range selectors {
					sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
				}
			}
			selectors, props = nil, nil
		}
	}
}

// ParseCSSString is ParseCSS over a string.
func ParseCSSString(s string) (*Stylesheet, error) {
	return ParseCSS(strings.NewReader(s))
}

// selector joins the tokens of one selector and keeps it only when it is a
// simple .class or #id.
func selector(tokens []css.Token) string {
	var b bytes.Buffer
	for _, t := range tokens {
		b.Write(t.Data)
	}
	sel := strings.TrimSpace(b.String())
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') || strings.ContainsAny(sel[1:], " .#>:+~[") {
		return ""
	}
	return sel
}

func value(tokens []css.Token) string {
	var b bytes.Buffer
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
