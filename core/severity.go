package core

import (
	"strings"

	"github.com/gitsleuth/gitsleuth/schema"
)

// Marker substrings tested against a rule's lower-cased pattern text.
// HIGH markers are checked first, so a pattern mentioning both "secret" and
// "token" classifies HIGH. Classification is a property of the rule's
// definition text, not of the matched value.
var (
	highSeverityMarkers   = []string{"password", "private.key", "aws", "secret"}
	mediumSeverityMarkers = []string{"api.key", "token", "bearer"}
)

// ClassifySeverity maps a detector pattern's source text to a severity tier.
// Deterministic and pure: the same pattern text always yields the same tier.
func ClassifySeverity(patternText string) schema.Severity {
	lower := strings.ToLower(patternText)

	for _, marker := range highSeverityMarkers {
		if strings.Contains(lower, marker) {
			return schema.HighSeverity
		}
	}
	for _, marker := range mediumSeverityMarkers {
		if strings.Contains(lower, marker) {
			return schema.MediumSeverity
		}
	}
	return schema.LowSeverity
}
