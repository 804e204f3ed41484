package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gitsleuth/gitsleuth/schema"
)

// Color variables for console output.
var (
	HighColor   = color.New(color.FgRed, color.Bold) // highColor represents standard danger.
	MediumColor = color.New(color.FgYellow)          // mediumColor represents standard caution, not bold.
	LowColor    = color.New(color.FgCyan)            // lowColor represents informational / low-priority signal.
)

// GetPlainLabel returns the plain text label for a severity tier. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(sev schema.Severity) string {
	return string(sev)
}

// GetColorLabel returns a colored text label for console output.
func GetColorLabel(sev schema.Severity) string {
	switch sev {
	case schema.HighSeverity:
		return HighColor.Sprint(string(sev))
	case schema.MediumSeverity:
		return MediumColor.Sprint(string(sev))
	default:
		return LowColor.Sprint(string(sev))
	}
}

// ShortHash returns the first 8 hex characters of a commit hash.
func ShortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// TruncateMatch truncates matched text to a maximum width with an ellipsis
// suffix. Rune-safe so multi-byte content cannot be split mid-character.
func TruncateMatch(match string, maxWidth int) string {
	runes := []rune(match)
	if len(runes) > maxWidth && maxWidth > 0 {
		return string(runes[:maxWidth]) + "..."
	}
	return match
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
