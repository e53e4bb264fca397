package translation

import (
	"context"
	"fmt"

	translator "github.com/Conight/go-googletrans"
)

// GoogleProvider uses the public Google Translate web endpoint
type GoogleProvider struct {
	t *translator.Translator
}

// NewGoogleProvider creates a Google provider. Empty serviceURLs use the library defaults.
func NewGoogleProvider(serviceURLs []string, proxy string) *GoogleProvider {
	return &GoogleProvider{
		t: translator.New(translator.Config{
			ServiceUrls: serviceURLs,
			Proxy:       proxy,
		}),
	}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// Translate translates text. The underlying client has no context support,
// so cancellation is only checked before the request.
func (p *GoogleProvider) Translate(ctx context.Context, text, srcLang, dstLang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result, err := p.t.Translate(text, srcLang, dstLang)
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	if result == nil {
		return "", fmt.Errorf("google translate: empty response")
	}
	return result.Text, nil
}
