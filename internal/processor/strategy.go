package processor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/cattrans/internal/cli"
	"codeberg.org/snonux/cattrans/internal/dictionary"
	"codeberg.org/snonux/cattrans/internal/translation"
)

// breakerCooldown is how long an open breaker waits before probing again
const breakerCooldown = 30 * time.Second

// providerFactory is swapped in tests
var providerFactory = translation.NewProvider

// BuildTranslator creates the translator chain for the strategy in flags
func BuildTranslator(ctx context.Context, flags *cli.Flags, logger *zap.Logger, observer translation.Observer) (translation.Translator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch flags.Strategy {
	case cli.StrategyDictionary:
		return buildDictionary(flags.Dictionary)
	case cli.StrategyRemote, cli.StrategyFallback:
		return buildRemote(ctx, flags, logger, observer)
	default:
		return nil, fmt.Errorf("unknown strategy %q", flags.Strategy)
	}
}

func buildDictionary(extraRules string) (translation.Translator, error) {
	table := dictionary.DefaultTable()
	if extraRules != "" {
		extra, err := dictionary.LoadTable(extraRules)
		if err != nil {
			return nil, err
		}
		table = dictionary.Merge(extra, table)
	}
	return dictionary.New(table), nil
}

func buildRemote(ctx context.Context, flags *cli.Flags, logger *zap.Logger, observer translation.Observer) (translation.Translator, error) {
	cfg := providerConfig(flags)

	primary, err := providerFactory(ctx, flags.Primary, cfg)
	if err != nil {
		return nil, fmt.Errorf("primary provider: %w", err)
	}
	primary = translation.NewBreaker(primary, uint32(flags.BreakerThreshold), breakerCooldown, logger)

	var secondary translation.Provider
	if flags.Secondary != "" && flags.Secondary != "none" {
		secondary, err = providerFactory(ctx, flags.Secondary, cfg)
		if err != nil {
			return nil, fmt.Errorf("secondary provider: %w", err)
		}
	}

	policy := translation.Policy{
		Attempts:        flags.Retries,
		RetryDelay:      flags.RetryDelay,
		MinLength:       flags.MinLength,
		RejectUnchanged: flags.Strategy == cli.StrategyFallback,
	}

	logger.Debug("translator configured",
		zap.String("strategy", flags.Strategy),
		zap.String("primary", flags.Primary),
		zap.String("secondary", flags.Secondary),
		zap.Int("attempts", policy.Attempts),
		zap.Duration("retry_delay", policy.RetryDelay))

	return &translation.Fallback{
		Primary:   primary,
		Secondary: secondary,
		Policy:    policy,
		Logger:    logger,
		Observer:  observer,
	}, nil
}

func providerConfig(flags *cli.Flags) translation.ProviderConfig {
	return translation.ProviderConfig{
		GoogleServiceURLs: flags.GoogleServiceURLs,
		Proxy:             flags.Proxy,
		MyMemoryURL:       flags.MyMemoryURL,
		MyMemoryEmail:     flags.MyMemoryEmail,
		OpenAIKey:         cli.GetOpenAIKey(),
		OpenAIModel:       flags.OpenAIModel,
		OpenAIBaseURL:     flags.OpenAIBaseURL,
		GeminiKey:         cli.GetGeminiKey(),
		GeminiModel:       flags.GeminiModel,
		Timeout:           flags.Timeout,
	}
}
