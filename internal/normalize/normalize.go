package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalizer cleans product names
type Normalizer struct {
	// StripBrackets removes [ ] ( ) which confuse machine translation
	StripBrackets bool
}

var (
	plain   = Normalizer{}
	machine = Normalizer{StripBrackets: true}
)

// Clean collapses whitespace and trims the name
func Clean(s string) string {
	return plain.Normalize(s)
}

// CleanForMachine is Clean plus bracket removal
func CleanForMachine(s string) string {
	return machine.Normalize(s)
}

// IsBlank reports whether s is empty once normalized
func IsBlank(s string) bool {
	return Clean(s) == ""
}

// Normalize returns the canonical form of s. Empty input is returned as is.
func (n Normalizer) Normalize(s string) string {
	if s == "" {
		return s
	}

	// Composed form so "Đỏ" typed on different keyboards compares equal
	s = norm.NFC.String(s)

	if n.StripBrackets {
		s = strings.Map(func(r rune) rune {
			switch r {
			case '[', ']', '(', ')':
				return -1
			}
			return r
		}, s)
	}

	return collapseSpace(s)
}

// collapseSpace replaces every whitespace run with one space and trims the ends
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
