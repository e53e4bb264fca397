package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Policy controls how hard Fallback tries before giving up
type Policy struct {
	// Attempts is the number of calls to the primary provider
	Attempts int

	// RetryDelay is slept after a failed primary call when attempts remain
	RetryDelay time.Duration

	// MinLength skips texts shorter than this many runes
	MinLength int

	// RejectUnchanged treats a result equal to the input as a failure.
	// Sizes like "500" or brand names are affected as well.
	RejectUnchanged bool
}

// SimplePolicy makes one attempt and accepts whatever the provider returns
func SimplePolicy() Policy {
	return Policy{Attempts: 1}
}

// AdvancedPolicy retries three times and insists on a changed result
func AdvancedPolicy() Policy {
	return Policy{
		Attempts:        3,
		RetryDelay:      time.Second,
		MinLength:       2,
		RejectUnchanged: true,
	}
}

// accept reports whether out is a usable translation of in
func (p Policy) accept(in, out string) bool {
	if strings.TrimSpace(out) == "" {
		return false
	}
	return !p.RejectUnchanged || out != in
}

// Fallback tries Primary according to Policy, then Secondary once.
// When both fail it returns the input text together with an error
// wrapping ErrNotTranslated.
type Fallback struct {
	Primary   Provider
	Secondary Provider // optional
	Policy    Policy

	// Sleep waits between attempts; defaults to a context-aware timer
	Sleep    func(ctx context.Context, d time.Duration) error
	Logger   *zap.Logger
	Observer Observer
}

// Translate implements Translator
func (f *Fallback) Translate(ctx context.Context, text, srcLang, dstLang string) (string, error) {
	if strings.TrimSpace(text) == "" || utf8.RuneCountInString(text) < f.Policy.MinLength {
		return text, nil
	}

	attempts := f.Policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		out, err := f.call(ctx, f.Primary, text, srcLang, dstLang)
		if err == nil {
			if f.Policy.accept(text, out) {
				return out, nil
			}
			lastErr = fmt.Errorf("%s returned no new text", f.Primary.Name())
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return text, ctxErr
		}

		lastErr = err
		f.logger().Warn("primary translation attempt failed",
			zap.String("provider", f.Primary.Name()),
			zap.Int("attempt", attempt),
			zap.String("text", text),
			zap.Error(err))

		if IsCircuitOpen(err) {
			break
		}
		if attempt < attempts {
			if err := f.sleep(ctx, f.Policy.RetryDelay); err != nil {
				return text, err
			}
		}
	}

	if f.Secondary != nil {
		f.observer().ObserveFallback()
		out, err := f.call(ctx, f.Secondary, text, srcLang, dstLang)
		switch {
		case err == nil && f.Policy.accept(text, out):
			return out, nil
		case err == nil:
			lastErr = fmt.Errorf("%s returned no new text", f.Secondary.Name())
		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return text, ctxErr
			}
			lastErr = err
			f.logger().Warn("fallback translation failed",
				zap.String("provider", f.Secondary.Name()),
				zap.String("text", text),
				zap.Error(err))
		}
	}

	return text, fmt.Errorf("%w: %w", ErrNotTranslated, lastErr)
}

// call invokes p and reports the outcome to the observer
func (f *Fallback) call(ctx context.Context, p Provider, text, srcLang, dstLang string) (string, error) {
	start := time.Now()
	out, err := p.Translate(ctx, text, srcLang, dstLang)

	outcome := OutcomeOK
	switch {
	case IsCircuitOpen(err):
		outcome = OutcomeOpen
	case err != nil:
		outcome = OutcomeError
	case !f.Policy.accept(text, out):
		outcome = OutcomeUnchanged
	}
	f.observer().ObserveCall(p.Name(), outcome, time.Since(start))

	return out, err
}

func (f *Fallback) sleep(ctx context.Context, d time.Duration) error {
	if f.Sleep != nil {
		return f.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func (f *Fallback) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

func (f *Fallback) observer() Observer {
	if f.Observer == nil {
		return nopObserver{}
	}
	return f.Observer
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsNotTranslated reports whether err means every provider gave up
func IsNotTranslated(err error) bool {
	return errors.Is(err, ErrNotTranslated)
}
