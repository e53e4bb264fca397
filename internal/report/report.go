// Package report prints run progress, sample translations and the final
// summary to the console.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"codeberg.org/snonux/cattrans/internal"
)

const (
	ruleWidth = 60
	statWidth = 24
)

// Pair is one original name and its translation
type Pair struct {
	Original   string
	Translated string
}

// Summary describes a finished run
type Summary struct {
	Strategy      string
	Records       int
	DistinctNames int
	Translated    int
	Passthrough   int
	Failures      int
	OutputPath    string
	ArchivedPath  string
	Duration      time.Duration
}

// SuccessRate is the share of distinct names that changed, in percent
func (s *Summary) SuccessRate() float64 {
	return internal.Percent(s.Translated, s.DistinctNames)
}

// Rule prints a separator line of the given width
func Rule(w io.Writer, char string, width int) {
	fmt.Fprintln(w, strings.Repeat(char, width))
}

// Banner prints a title framed by separator lines
func Banner(w io.Writer, title string) {
	Rule(w, "=", ruleWidth)
	fmt.Fprintln(w, bannerStyle.Render(title))
	Rule(w, "=", ruleWidth)
}

// Success prints a success line
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a warning line
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error line
func Error(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintSample prints the first n pairs labelled with the language names of
// srcLang and dstLang.
func PrintSample(w io.Writer, pairs []Pair, n int, srcLang, dstLang string) {
	if n <= 0 || len(pairs) == 0 {
		return
	}
	if n > len(pairs) {
		n = len(pairs)
	}

	fmt.Fprintln(w)
	Banner(w, "Sample translations:")

	src, dst := internal.LanguageName(srcLang)+":", internal.LanguageName(dstLang)+":"
	width := len(src)
	if len(dst) > width {
		width = len(dst)
	}

	for _, p := range pairs[:n] {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-*s", width, src)), p.Original)
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-*s", width, dst)), p.Translated)
		Rule(w, "-", 40)
	}
}

// PrintSummary prints the run statistics
func PrintSummary(w io.Writer, s *Summary) {
	fmt.Fprintln(w)
	Banner(w, "Translation Statistics:")

	stat(w, "Total records:", internal.FormatCount(s.Records))
	stat(w, "Unique products:", internal.FormatCount(s.DistinctNames))
	stat(w, "Successfully translated:", internal.FormatCount(s.Translated))
	stat(w, "Kept original:", internal.FormatCount(s.Passthrough))
	if s.Failures > 0 {
		Warning(w, "%-*s %s", statWidth, "Failed translations:", internal.FormatCount(s.Failures))
	}
	stat(w, "Translation rate:", fmt.Sprintf("%.1f%%", s.SuccessRate()))
	if s.Duration > 0 {
		stat(w, "Duration:", s.Duration.Round(time.Millisecond).String())
	}
	if s.ArchivedPath != "" {
		stat(w, "Archived previous:", s.ArchivedPath)
	}
	if s.OutputPath != "" {
		stat(w, "Output file:", s.OutputPath)
	}
}

func stat(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-*s %s\n", statWidth, label, value)
}
