package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotTranslated is returned when no provider produced a usable translation
	ErrNotTranslated = errors.New("no translation available")

	// ErrUnknownProvider is returned by NewProvider for unsupported names
	ErrUnknownProvider = errors.New("unknown translation provider")
)

// Translator translates text between two language codes
type Translator interface {
	Translate(ctx context.Context, text, srcLang, dstLang string) (string, error)
}

// Provider is a named Translator backed by an external service
type Provider interface {
	Translator
	Name() string
}

// Observer receives per-call statistics. The metrics registry implements it.
type Observer interface {
	ObserveCall(provider, outcome string, d time.Duration)
	ObserveFallback()
}

// Call outcomes reported to an Observer
const (
	OutcomeOK        = "ok"
	OutcomeUnchanged = "unchanged"
	OutcomeError     = "error"
	OutcomeOpen      = "open"
)

type nopObserver struct{}

func (nopObserver) ObserveCall(string, string, time.Duration) {}
func (nopObserver) ObserveFallback()                          {}

// ProviderConfig holds settings for all remote providers
type ProviderConfig struct {
	// Google web translate
	GoogleServiceURLs []string
	Proxy             string

	// MyMemory REST API
	MyMemoryURL   string
	MyMemoryEmail string

	// OpenAI chat completion
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini
	GeminiKey   string
	GeminiModel string

	Timeout time.Duration
}

// ProviderNames lists the names accepted by NewProvider
var ProviderNames = []string{"google", "mymemory", "openai", "gemini"}

// NewProvider creates the provider registered under name
func NewProvider(ctx context.Context, name string, cfg ProviderConfig) (Provider, error) {
	switch strings.ToLower(name) {
	case "google":
		return NewGoogleProvider(cfg.GoogleServiceURLs, cfg.Proxy), nil
	case "mymemory":
		return NewMyMemoryProvider(cfg.MyMemoryURL, cfg.MyMemoryEmail, cfg.Timeout), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required for the openai provider")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), nil
	case "gemini":
		return NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnknownProvider, name, strings.Join(ProviderNames, ", "))
	}
}
