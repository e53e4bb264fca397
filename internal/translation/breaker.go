package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Breaker short-circuits a provider after repeated consecutive failures
type Breaker struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewBreaker wraps p in a circuit breaker that opens after threshold
// consecutive failures and probes again after cooldown. A zero threshold
// returns p unchanged.
func NewBreaker(p Provider, threshold uint32, cooldown time.Duration, logger *zap.Logger) Provider {
	if threshold == 0 {
		return p
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := gobreaker.Settings{
		Name:    p.Name(),
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// A cancelled run says nothing about the provider
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("provider", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to))
		},
	}

	return &Breaker{
		provider: p,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the wrapped provider name
func (b *Breaker) Name() string {
	return b.provider.Name()
}

// State returns the current breaker state
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Translate calls the wrapped provider unless the breaker is open
func (b *Breaker) Translate(ctx context.Context, text, srcLang, dstLang string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.Translate(ctx, text, srcLang, dstLang)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// IsCircuitOpen reports whether err came from an open or half-open breaker
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
