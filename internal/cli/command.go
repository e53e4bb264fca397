package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/cattrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cattrans",
		Short: "Vietnamese product catalog translator",
		Long: `cattrans adds an English product name column to order-line data.

Every distinct product name is translated once and the result is written
to every row carrying that name. Three strategies are available:

  remote      one call per name to a translation service
  fallback    retries the primary service, then asks a secondary one
  dictionary  offline substring table for common grocery terms

Examples:
  cattrans                                   # fallback strategy on data/orderdetail.csv
  cattrans -s dictionary                     # offline translation
  cattrans -s remote --primary openai        # use an OpenAI chat model
  cattrans -i orders.xlsx -o orders_en.xlsx  # spreadsheet in and out`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.cattrans.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Local flags
	cmd.Flags().StringVarP(&flags.Input, "input", "i", flags.Input, "Input file (.csv or .xlsx)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default depends on strategy and provider)")
	cmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", flags.Strategy, "Translation strategy: "+strings.Join(Strategies, ", "))
	cmd.Flags().StringVar(&flags.Primary, "primary", flags.Primary, "Primary provider: google, mymemory, openai, gemini")
	cmd.Flags().StringVar(&flags.Secondary, "secondary", flags.Secondary, "Fallback provider, or none")
	cmd.Flags().StringVar(&flags.SourceLang, "source-lang", flags.SourceLang, "Source language code")
	cmd.Flags().StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Target language code")
	cmd.Flags().StringVar(&flags.Column, "column", flags.Column, "Column holding the product names")
	cmd.Flags().StringVar(&flags.TranslatedColumn, "translated-column", flags.TranslatedColumn, "Name of the added column")
	cmd.Flags().IntVar(&flags.Retries, "retries", flags.Retries, "Primary provider attempts (remote: 1)")
	cmd.Flags().DurationVar(&flags.RetryDelay, "retry-delay", flags.RetryDelay, "Pause after a failed attempt")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Minimum interval between names (remote: 100ms)")
	cmd.Flags().IntVar(&flags.MinLength, "min-length", flags.MinLength, "Names shorter than this are kept as is (remote: 0)")
	cmd.Flags().BoolVar(&flags.StripBrackets, "strip-brackets", flags.StripBrackets, "Remove brackets before translating (remote: false)")
	cmd.Flags().IntVar(&flags.BreakerThreshold, "breaker-threshold", flags.BreakerThreshold, "Consecutive failures that pause the primary provider, 0 disables (remote, dictionary: 0)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "HTTP timeout for REST providers")
	cmd.Flags().IntVar(&flags.Sample, "sample", flags.Sample, "Sample translations to print (remote, dictionary: 10)")
	cmd.Flags().StringVar(&flags.Dictionary, "dictionary", "", "Extra dictionary rules file (YAML or JSON)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing output file to archive/ first")
	cmd.Flags().StringVar(&flags.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// LLM flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai provider")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the gemini provider")

	bindFlagsToViper(viper.GetViper(), cmd)
}

// flagKeys maps flags to their config file keys
var flagKeys = map[string]string{
	"input":             "input.path",
	"column":            "input.column",
	"output":            "output.path",
	"translated-column": "output.column",
	"archive":           "output.archive",
	"sample":            "output.sample",
	"metrics-file":      "output.metrics_file",
	"strategy":          "translate.strategy",
	"primary":           "translate.primary",
	"secondary":         "translate.secondary",
	"source-lang":       "translate.source_lang",
	"target-lang":       "translate.target_lang",
	"retries":           "translate.retries",
	"retry-delay":       "translate.retry_delay",
	"delay":             "translate.delay",
	"min-length":        "translate.min_length",
	"strip-brackets":    "translate.strip_brackets",
	"breaker-threshold": "translate.breaker_threshold",
	"timeout":           "translate.timeout",
	"dictionary":        "translate.dictionary",
	"openai-model":      "translate.openai_model",
	"gemini-model":      "translate.gemini_model",
}

func bindFlagsToViper(v *viper.Viper, cmd *cobra.Command) {
	for flag, key := range flagKeys {
		v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// InitConfig initializes viper configuration and loads a .env file if present
func InitConfig(cfgFile string) {
	// Missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".cattrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cattrans")
	}

	// Environment variables: CATTRANS_TRANSLATE_STRATEGY and friends
	viper.SetEnvPrefix("CATTRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Resolve fills flags from v, which holds bound flags, environment and
// config file values, and applies the strategy defaults for every setting
// nobody set explicitly.
func (f *Flags) Resolve(v *viper.Viper) error {
	f.Strategy = strings.ToLower(v.GetString("translate.strategy"))
	if !slices.Contains(Strategies, f.Strategy) {
		return fmt.Errorf("unknown strategy %q (supported: %s)", f.Strategy, strings.Join(Strategies, ", "))
	}

	f.Input = v.GetString("input.path")
	f.Column = v.GetString("input.column")
	f.TranslatedColumn = v.GetString("output.column")
	f.Archive = v.GetBool("output.archive")
	f.MetricsFile = v.GetString("output.metrics_file")
	f.Primary = strings.ToLower(v.GetString("translate.primary"))
	f.SourceLang = v.GetString("translate.source_lang")
	f.TargetLang = v.GetString("translate.target_lang")
	f.RetryDelay = v.GetDuration("translate.retry_delay")
	f.Timeout = v.GetDuration("translate.timeout")
	f.Dictionary = v.GetString("translate.dictionary")
	f.OpenAIModel = v.GetString("translate.openai_model")
	f.GeminiModel = v.GetString("translate.gemini_model")

	f.OpenAIBaseURL = v.GetString("translate.openai_base_url")
	f.MyMemoryURL = v.GetString("translate.mymemory_url")
	f.MyMemoryEmail = v.GetString("translate.mymemory_email")
	f.GoogleServiceURLs = v.GetStringSlice("translate.google_urls")
	f.Proxy = v.GetString("translate.proxy")

	// f.Output backs the --output flag, so read it before the default lands there
	output := v.GetString("output.path")
	d := defaultsFor(f.Strategy, f.Primary)
	f.Output = d.output
	if output != "" {
		f.Output = output
	}
	f.Secondary = pick(v, "translate.secondary", d.secondary, v.GetString)
	f.Secondary = strings.ToLower(f.Secondary)
	f.Retries = pick(v, "translate.retries", d.retries, v.GetInt)
	f.Delay = pick(v, "translate.delay", d.delay, v.GetDuration)
	f.MinLength = pick(v, "translate.min_length", d.minLength, v.GetInt)
	f.StripBrackets = pick(v, "translate.strip_brackets", d.stripBrackets, v.GetBool)
	f.Sample = pick(v, "output.sample", d.sample, v.GetInt)
	f.BreakerThreshold = pick(v, "translate.breaker_threshold", d.breakerThreshold, v.GetInt)

	if f.Retries < 1 {
		return fmt.Errorf("--retries must be at least 1, got %d", f.Retries)
	}
	if f.BreakerThreshold < 0 {
		return fmt.Errorf("--breaker-threshold must not be negative, got %d", f.BreakerThreshold)
	}
	if f.Column == "" || f.TranslatedColumn == "" {
		return fmt.Errorf("column names must not be empty")
	}
	return nil
}

func pick[T any](v *viper.Viper, key string, def T, get func(string) T) T {
	if v.IsSet(key) {
		return get(key)
	}
	return def
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.gemini_key")
}
