package internal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
)

// Version is the cattrans release version
const Version = "0.3.0"

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 12,345
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// Percent returns part as a percentage of total, 0 when total is 0
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// LanguageName returns the English name of a language code such as "vi".
// Unknown codes are returned as given.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
