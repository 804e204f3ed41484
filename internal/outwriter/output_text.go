package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/schema"
)

const sectionRule = 70

// Tier icons for the text report headers.
var severityIcons = map[schema.Severity]string{
	schema.HighSeverity:   "🔴",
	schema.MediumSeverity: "🟡",
	schema.LowSeverity:    "🔵",
}

// writeTextReport renders the human-readable grouped report. Tiers print in
// HIGH, MEDIUM, LOW order; empty tiers are skipped; each tier shows at most
// cfg.DisplayLimit findings followed by a remainder count.
func writeTextReport(w io.Writer, report *schema.Report, cfg *contract.Config) error {
	if report.TotalFindings == 0 {
		_, err := fmt.Fprintf(w, "%sNo sensitive data found in git history\n\n", emojiPrefix(cfg, "✅ "))
		return err
	}

	fmt.Fprintf(w, "\n%sFound %d potential issues\n\n", emojiPrefix(cfg, "⚠️  "), report.TotalFindings)
	fmt.Fprintln(w, strings.Repeat("=", sectionRule))

	for _, sev := range schema.AllSeverities {
		findings := report.Partition(sev)
		if len(findings) == 0 {
			continue
		}
		writeTierSection(w, sev, findings, cfg)
	}

	fmt.Fprintln(w, strings.Repeat("=", sectionRule))
	writeRecommendations(w, report.BySeverity.High > 0, cfg)
	return nil
}

// writeTierSection prints one severity group with its header and findings.
func writeTierSection(w io.Writer, sev schema.Severity, findings []schema.Finding, cfg *contract.Config) {
	label := contract.GetPlainLabel(sev)
	if cfg.UseColors {
		label = contract.GetColorLabel(sev)
	}
	if cfg.UseEmojis {
		label = severityIcons[sev] + " " + label
	}
	fmt.Fprintf(w, "\n%s Severity (%d issues)\n\n", label, len(findings))

	shown := min(cfg.DisplayLimit, len(findings))
	for _, f := range findings[:shown] {
		fmt.Fprintf(w, "  Commit: %s\n", contract.ShortHash(f.Commit))
		fmt.Fprintf(w, "  Date:   %s\n", f.Date)
		fmt.Fprintf(w, "  Author: %s\n", f.Author)
		fmt.Fprintf(w, "  Match:  %s\n", contract.TruncateMatch(f.Match, cfg.MatchWidth))
		fmt.Fprintln(w)
	}

	if remainder := len(findings) - shown; remainder > 0 {
		fmt.Fprintf(w, "  ... and %d more\n\n", remainder)
	}
}

// writeRecommendations prints the fixed advice block. The rotation, history
// rewrite and pre-commit hook lines appear only when HIGH findings exist; the
// two generic lines always print.
func writeRecommendations(w io.Writer, hasHigh bool, cfg *contract.Config) {
	fmt.Fprintf(w, "\n%sRecommendations:\n\n", emojiPrefix(cfg, "📋 "))

	if hasHigh {
		fmt.Fprintln(w, "  1. Immediately rotate any exposed credentials")
		fmt.Fprintln(w, "  2. Consider using git-filter-repo to remove sensitive commits")
		fmt.Fprintln(w, "  3. Add patterns to .gitignore and pre-commit hooks")
	}

	fmt.Fprintln(w, "  4. Use environment variables for secrets")
	fmt.Fprintln(w, "  5. Consider using a secrets manager (Vault, AWS Secrets Manager)")
	fmt.Fprintln(w)
}

// emojiPrefix returns the prefix when emojis are enabled, empty otherwise.
func emojiPrefix(cfg *contract.Config, emoji string) string {
	if cfg.UseEmojis {
		return emoji
	}
	return ""
}
