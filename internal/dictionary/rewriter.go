package dictionary

import (
	"context"
	"sort"
	"strings"
)

// Rewriter applies a Table to product names.
//
// Patterns are tried longest first. A pattern only matches text of the
// original name that a longer pattern has not claimed yet, and replacement
// text is never scanned again, so "Dưa Hấu Đỏ" becomes "Red Watermelon"
// rather than "Watermelon Red".
type Rewriter struct {
	rules []Rule
}

type span struct {
	text     string
	replaced bool
}

// New creates a Rewriter. Empty patterns are dropped and the first rule
// wins when a pattern appears twice.
func New(table Table) *Rewriter {
	seen := make(map[string]bool, len(table))
	rules := make([]Rule, 0, len(table))
	for _, rule := range table {
		if rule.Pattern == "" || seen[rule.Pattern] {
			continue
		}
		seen[rule.Pattern] = true
		rules = append(rules, rule)
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].Pattern) > len(rules[j].Pattern)
	})

	return &Rewriter{rules: rules}
}

// NewDefault creates a Rewriter over DefaultTable
func NewDefault() *Rewriter {
	return New(DefaultTable())
}

// Len returns the number of effective rules
func (r *Rewriter) Len() int {
	return len(r.rules)
}

// Rewrite substitutes every known term in s. Without a match s is returned unchanged.
func (r *Rewriter) Rewrite(s string) string {
	if s == "" {
		return s
	}

	spans := []span{{text: s}}
	for _, rule := range r.rules {
		spans = applyRule(spans, rule)
	}

	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.text)
	}
	return b.String()
}

// Translate lets the Rewriter stand in for a remote provider. It never fails.
func (r *Rewriter) Translate(_ context.Context, text, _, _ string) (string, error) {
	return r.Rewrite(text), nil
}

// Name returns the provider name
func (r *Rewriter) Name() string {
	return "dictionary"
}

func applyRule(spans []span, rule Rule) []span {
	out := make([]span, 0, len(spans))
	for _, sp := range spans {
		if sp.replaced || !strings.Contains(sp.text, rule.Pattern) {
			out = append(out, sp)
			continue
		}

		rest := sp.text
		for {
			i := strings.Index(rest, rule.Pattern)
			if i < 0 {
				break
			}
			if i > 0 {
				out = append(out, span{text: rest[:i]})
			}
			out = append(out, span{text: rule.Replacement, replaced: true})
			rest = rest[i+len(rule.Pattern):]
		}
		if rest != "" {
			out = append(out, span{text: rest})
		}
	}
	return out
}
