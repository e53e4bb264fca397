package translation

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"codeberg.org/snonux/cattrans/internal/normalize"
)

// Throttle paces provider calls. *rate.Limiter satisfies it.
type Throttle interface {
	Wait(ctx context.Context) error
}

type noThrottle struct{}

func (noThrottle) Wait(ctx context.Context) error { return ctx.Err() }

// NoThrottle never waits
var NoThrottle Throttle = noThrottle{}

// NewThrottle allows one call per interval. A non-positive interval disables pacing.
func NewThrottle(interval time.Duration) Throttle {
	if interval <= 0 {
		return NoThrottle
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// ClientConfig configures a Client
type ClientConfig struct {
	SourceLang string
	TargetLang string
	Throttle   Throttle
	Normalizer normalize.Normalizer
}

// Result is the outcome of translating one product name
type Result struct {
	// Text is the translation, or the passthrough value when Err is set
	Text string

	// Source is the cleaned text sent to the translator, empty for blank names
	Source string

	// Err is the swallowed translation error, if any
	Err error
}

// Translated reports whether the translator produced text that differs from
// its cleaned input. Cleaning alone does not count.
func (r Result) Translated() bool {
	return r.Err == nil && r.Source != "" && r.Text != r.Source
}

// Client translates raw product names and never fails: errors degrade to
// the cleaned input.
type Client struct {
	translator Translator
	throttle   Throttle
	normalizer normalize.Normalizer
	sourceLang string
	targetLang string
}

// NewClient creates a client around t
func NewClient(t Translator, cfg ClientConfig) *Client {
	if cfg.Throttle == nil {
		cfg.Throttle = NoThrottle
	}
	if cfg.SourceLang == "" {
		cfg.SourceLang = "vi"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "en"
	}

	return &Client{
		translator: t,
		throttle:   cfg.Throttle,
		normalizer: cfg.Normalizer,
		sourceLang: cfg.SourceLang,
		targetLang: cfg.TargetLang,
	}
}

// Translate translates one raw name. Blank names are returned as given
// without calling the provider.
func (c *Client) Translate(ctx context.Context, raw string) Result {
	cleaned := c.normalizer.Normalize(raw)
	if cleaned == "" {
		return Result{Text: raw}
	}

	out, err := c.translator.Translate(ctx, cleaned, c.sourceLang, c.targetLang)
	if waitErr := c.throttle.Wait(ctx); err == nil {
		err = waitErr
	}
	if err != nil {
		return Result{Text: cleaned, Source: cleaned, Err: err}
	}
	return Result{Text: out, Source: cleaned}
}

// BuildMapping translates every name exactly once. onResult, if set, is
// called after each name with its 1-based position. Only cancellation of
// ctx stops the loop.
func (c *Client) BuildMapping(ctx context.Context, names []string, onResult func(done int, name string, res Result)) (*Mapping, error) {
	mapping := NewMapping()
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := mapping.Get(name); ok {
			continue
		}

		res := c.Translate(ctx, name)
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mapping.Add(name, res.Text)
		if onResult != nil {
			onResult(i+1, name, res)
		}
	}
	return mapping, nil
}
