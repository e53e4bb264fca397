package cli

import "time"

// Translation strategies
const (
	StrategyRemote     = "remote"
	StrategyFallback   = "fallback"
	StrategyDictionary = "dictionary"
)

// Strategies lists the accepted --strategy values
var Strategies = []string{StrategyRemote, StrategyFallback, StrategyDictionary}

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	Input       string
	Output      string
	Strategy    string
	Sample      int
	Dictionary  string
	Archive     bool
	MetricsFile string
	ListModels  bool
	Verbose     bool

	// Table layout
	Column           string
	TranslatedColumn string
	SourceLang       string
	TargetLang       string

	// Provider selection and pacing
	Primary          string
	Secondary        string
	Retries          int
	RetryDelay       time.Duration
	Delay            time.Duration
	MinLength        int
	StripBrackets    bool
	BreakerThreshold int
	Timeout          time.Duration

	// LLM providers
	OpenAIModel string
	GeminiModel string

	// Config file only
	OpenAIBaseURL     string
	MyMemoryURL       string
	MyMemoryEmail     string
	GoogleServiceURLs []string
	Proxy             string
}

// NewFlags creates a new Flags instance with default values. Values that
// depend on the strategy show the defaults of the fallback strategy.
func NewFlags() *Flags {
	return &Flags{
		Input:            "data/orderdetail.csv",
		Strategy:         StrategyFallback,
		Sample:           15,
		Column:           "productname",
		TranslatedColumn: "productname_en",
		SourceLang:       "vi",
		TargetLang:       "en",
		Primary:          "google",
		Secondary:        "mymemory",
		Retries:          3,
		RetryDelay:       time.Second,
		Delay:            200 * time.Millisecond,
		MinLength:        2,
		StripBrackets:    true,
		BreakerThreshold: 5,
		Timeout:          20 * time.Second,
		OpenAIModel:      "gpt-4o-mini",
		GeminiModel:      "gemini-2.0-flash",
	}
}

// strategyDefaults are used for every setting the user did not set
type strategyDefaults struct {
	output        string
	secondary     string
	retries       int
	delay         time.Duration
	minLength     int
	stripBrackets bool
	sample        int

	breakerThreshold int
}

func defaultsFor(strategy, primary string) strategyDefaults {
	switch strategy {
	case StrategyFallback:
		return strategyDefaults{
			output:        "data/orderdetail_en_advanced.csv",
			secondary:     "mymemory",
			retries:       3,
			delay:         200 * time.Millisecond,
			minLength:     2,
			stripBrackets: true,
			sample:        15,

			breakerThreshold: 5,
		}
	case StrategyRemote:
		output := "data/orderdetail_en.csv"
		if primary != "" && primary != "google" {
			output = "data/orderdetail_en_" + primary + ".csv"
		}
		return strategyDefaults{
			output:    output,
			secondary: "none",
			retries:   1,
			delay:     100 * time.Millisecond,
			sample:    10,
		}
	default:
		return strategyDefaults{
			output:    "data/orderdetail_en.csv",
			secondary: "none",
			retries:   1,
			sample:    10,
		}
	}
}
