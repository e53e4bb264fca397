package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"

	"codeberg.org/snonux/cattrans/internal"
)

// Progress prints a progress line every few items and after the last one
type Progress struct {
	w     io.Writer
	bar   progress.Model
	total int
	every int
}

// NewProgress creates a progress printer for total items
func NewProgress(w io.Writer, total, every int) *Progress {
	if every <= 0 {
		every = 100
	}
	bar := progress.New(
		progress.WithSolidFill("#00aadd"),
		progress.WithoutPercentage(),
		progress.WithWidth(30),
	)
	return &Progress{w: w, bar: bar, total: total, every: every}
}

// Update reports that done items are finished
func (p *Progress) Update(done int) {
	if p.total <= 0 || (done%p.every != 0 && done != p.total) {
		return
	}
	ratio := float64(done) / float64(p.total)
	fmt.Fprintf(p.w, "%s Translated %s/%s products (%.0f%%)\n",
		p.bar.ViewAs(ratio), internal.FormatCount(done), internal.FormatCount(p.total), ratio*100)
}
