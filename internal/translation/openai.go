package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/cattrans/internal"
)

// OpenAIProvider translates product names with an OpenAI chat model
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider. baseURL may be empty.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Translate translates a single product name
func (p *OpenAIProvider) Translate(ctx context.Context, text, srcLang, dstLang string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: productPrompt(text, srcLang, dstLang),
			},
		},
		MaxTokens:   100,
		Temperature: 0.2,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return cleanModelAnswer(resp.Choices[0].Message.Content), nil
}

// productPrompt is shared by the LLM providers
func productPrompt(text, srcLang, dstLang string) string {
	return fmt.Sprintf(
		"Translate the %s grocery product name '%s' to %s. Keep brand names, sizes and units unchanged. Respond with only the translation, nothing else.",
		internal.LanguageName(srcLang), text, internal.LanguageName(dstLang),
	)
}

// cleanModelAnswer strips whitespace and wrapping quotes models like to add
func cleanModelAnswer(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
