package processor

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/cattrans/internal"
	"codeberg.org/snonux/cattrans/internal/archive"
	"codeberg.org/snonux/cattrans/internal/cli"
	"codeberg.org/snonux/cattrans/internal/dataset"
	"codeberg.org/snonux/cattrans/internal/metrics"
	"codeberg.org/snonux/cattrans/internal/normalize"
	"codeberg.org/snonux/cattrans/internal/report"
	"codeberg.org/snonux/cattrans/internal/translation"
)

// Config describes one translation job
type Config struct {
	Input            string
	Output           string
	Column           string
	TranslatedColumn string
	Strategy         string
	SourceLang       string
	TargetLang       string
	SampleSize       int
	ProgressEvery    int
	Archive          bool
	MetricsFile      string
}

// Processor handles the main translation job
type Processor struct {
	cfg     Config
	client  *translation.Client
	out     io.Writer
	logger  *zap.Logger
	metrics *metrics.Registry
}

// New creates a processor. A nil logger or registry is replaced by a no-op
// logger and a fresh registry.
func New(cfg Config, client *translation.Client, out io.Writer, logger *zap.Logger, m *metrics.Registry) *Processor {
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 100
	}
	if cfg.SourceLang == "" {
		cfg.SourceLang = "vi"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "en"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewRegistry()
	}
	return &Processor{cfg: cfg, client: client, out: out, logger: logger, metrics: m}
}

// NewFromFlags builds the translator chain and the processor for resolved flags
func NewFromFlags(ctx context.Context, flags *cli.Flags, out io.Writer, logger *zap.Logger) (*Processor, error) {
	registry := metrics.NewRegistry()

	translator, err := BuildTranslator(ctx, flags, logger, registry)
	if err != nil {
		return nil, err
	}

	client := translation.NewClient(translator, translation.ClientConfig{
		SourceLang: flags.SourceLang,
		TargetLang: flags.TargetLang,
		Throttle:   translation.NewThrottle(flags.Delay),
		Normalizer: normalize.Normalizer{StripBrackets: flags.StripBrackets},
	})

	cfg := Config{
		Input:            flags.Input,
		Output:           flags.Output,
		Column:           flags.Column,
		TranslatedColumn: flags.TranslatedColumn,
		Strategy:         flags.Strategy,
		SourceLang:       flags.SourceLang,
		TargetLang:       flags.TargetLang,
		SampleSize:       flags.Sample,
		Archive:          flags.Archive,
		MetricsFile:      flags.MetricsFile,
	}
	return New(cfg, client, out, logger, registry), nil
}

// Run executes the job. The output file is only written when every name
// went through the translator; a cancelled run leaves no output behind.
func (p *Processor) Run(ctx context.Context) (*report.Summary, error) {
	start := time.Now()

	fmt.Fprintf(p.out, "Starting %s product name translation...\n", p.cfg.Strategy)
	report.Rule(p.out, "=", 60)

	fmt.Fprintf(p.out, "Loading %s...\n", p.cfg.Input)
	data, err := dataset.Load(p.cfg.Input, p.cfg.Column)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}

	names, err := data.Distinct(p.cfg.Column)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.out, "Total records: %s\n", internal.FormatCount(data.Len()))
	fmt.Fprintf(p.out, "Unique products: %s\n", internal.FormatCount(len(names)))
	fmt.Fprintf(p.out, "Translating %s unique product names...\n", internal.FormatCount(len(names)))

	failures, changed := 0, 0
	progress := report.NewProgress(p.out, len(names), p.cfg.ProgressEvery)
	mapping, err := p.client.BuildMapping(ctx, names, func(done int, name string, res translation.Result) {
		if res.Err != nil {
			failures++
			report.Error(p.out, "Error translating '%s': %v", name, res.Err)
		}
		if res.Translated() {
			changed++
		}
		p.logger.Debug("translated",
			zap.String("name", name),
			zap.String("translation", res.Text),
			zap.Error(res.Err))
		progress.Update(done)
	})
	if err != nil {
		return nil, fmt.Errorf("translation aborted: %w", err)
	}

	fmt.Fprintf(p.out, "\nTranslation completed for %s products\n", internal.FormatCount(mapping.Len()))
	fmt.Fprintln(p.out, "Applying translations to dataset...")
	translated, err := data.Broadcast(p.cfg.Column, p.cfg.TranslatedColumn, mapping)
	if err != nil {
		return nil, err
	}

	summary := &report.Summary{
		Strategy:      p.cfg.Strategy,
		Records:       data.Len(),
		DistinctNames: mapping.Len(),
		Translated:    changed,
		Passthrough:   mapping.Len() - changed,
		Failures:      failures,
		OutputPath:    p.cfg.Output,
	}

	if p.cfg.Archive {
		archived, err := archive.ArchiveFile(p.cfg.Output)
		if err != nil {
			return nil, err
		}
		summary.ArchivedPath = archived
	}

	// Last chance to stop before touching the output
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("translation aborted: %w", err)
	}

	fmt.Fprintf(p.out, "Saving translated dataset to %s...\n", p.cfg.Output)
	if err := translated.Save(p.cfg.Output); err != nil {
		return nil, fmt.Errorf("failed to save output: %w", err)
	}
	summary.Duration = time.Since(start)

	report.Success(p.out, "Translation completed successfully!")

	pairs := make([]report.Pair, 0, mapping.Len())
	for _, name := range mapping.Names() {
		value, _ := mapping.Get(name)
		pairs = append(pairs, report.Pair{Original: name, Translated: value})
	}
	report.PrintSample(p.out, pairs, p.cfg.SampleSize, p.cfg.SourceLang, p.cfg.TargetLang)
	report.PrintSummary(p.out, summary)

	if err := p.recordMetrics(summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func (p *Processor) recordMetrics(s *report.Summary) error {
	p.metrics.Rows.Add(float64(s.Records))
	p.metrics.DistinctNames.Add(float64(s.DistinctNames))
	p.metrics.Translated.Add(float64(s.Translated))
	p.metrics.Passthrough.Add(float64(s.Passthrough))
	p.metrics.RunDurationSec.Set(s.Duration.Seconds())

	if p.cfg.MetricsFile == "" {
		return nil
	}
	if err := p.metrics.WriteTextfile(p.cfg.MetricsFile); err != nil {
		return err
	}
	p.logger.Debug("metrics written", zap.String("path", p.cfg.MetricsFile))
	return nil
}
