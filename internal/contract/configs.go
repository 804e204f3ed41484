package contract

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/gitsleuth/gitsleuth/schema"
)

// Default values for configuration.
const (
	DefaultDisplayLimit = 10
	MaxDisplayLimit     = 1000
	DefaultMatchWidth   = 50
)

// DefaultWorkers is the default number of concurrent commit scans.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// PatternDelimiter separates independent patterns in the --patterns flag.
// A pattern that legitimately needs a literal '|' cannot be expressed through
// the flag; this is a documented limitation of the delimited form.
const PatternDelimiter = "|"

// Config holds the runtime configuration for a scan.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath     string            // Repository to scan (positional arg, default ".")
	Patterns     []string          // Effective detector pattern texts (custom or default)
	Since        string            // Opaque date boundary passed to the history source
	Output       schema.OutputMode // Output format
	OutputFile   string            // Optional path to write output to
	Verbose      bool              // Per-commit progress on stderr
	DisplayLimit int               // Findings shown per tier in text mode
	MatchWidth   int               // Text-mode match truncation width
	Workers      int               // Concurrent commit scans
	UseEmojis    bool              // Enable emojis in text output
	UseColors    bool              // Enable colored severity labels
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Patterns != nil {
		clone.Patterns = make([]string, len(c.Patterns))
		copy(clone.Patterns, c.Patterns)
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Patterns   string `mapstructure:"patterns"`
	Since      string `mapstructure:"since"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Verbose    bool   `mapstructure:"verbose"`
	Limit      int    `mapstructure:"limit"`
	Width      int    `mapstructure:"width"`
	Workers    int    `mapstructure:"workers"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Pattern syntax errors surface here,
// before any scanning begins.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.RepoPath = input.RepoPathStr
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}
	cfg.Since = input.Since
	cfg.OutputFile = input.OutputFile
	cfg.Verbose = input.Verbose

	// --- 1. Pattern resolution ---
	patterns, err := ResolvePatterns(input.Patterns)
	if err != nil {
		return err
	}
	cfg.Patterns = patterns

	// --- 2. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 3. Display limit and match width ---
	if input.Limit <= 0 || input.Limit > MaxDisplayLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxDisplayLimit, input.Limit)
	}
	cfg.DisplayLimit = input.Limit

	if input.Width <= 0 {
		return fmt.Errorf("width must be greater than 0 (received %d)", input.Width)
	}
	cfg.MatchWidth = input.Width

	// --- 4. Workers ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 5. Decoration toggles ---
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// ResolvePatterns turns the raw --patterns value into the effective pattern
// list. An empty value selects the built-in default set. A non-empty value is
// split on the pattern delimiter into independent pattern texts, each of
// which must compile as a regular expression.
func ResolvePatterns(raw string) ([]string, error) {
	if raw == "" {
		patterns := make([]string, len(schema.DefaultPatterns))
		copy(patterns, schema.DefaultPatterns)
		return patterns, nil
	}

	var patterns []string
	for p := range strings.SplitSeq(raw, PatternDelimiter) {
		if p == "" {
			continue
		}
		if _, err := regexp.Compile(p); err != nil {
			return nil, &InvalidPatternError{Pattern: p, Err: err}
		}
		patterns = append(patterns, p)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("custom pattern list is empty")
	}
	return patterns, nil
}
