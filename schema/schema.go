// Package schema has configs, models and shared constants for all parts of gitsleuth.
package schema

// Commit represents a single commit returned by the history listing.
// Fields mirror what the underlying log traversal emits and are read-only
// after parsing.
type Commit struct {
	Hash    string // Full-length commit hash
	Author  string // Author name
	Email   string // Author email
	Date    string // Commit timestamp as emitted by git (ISO-8601)
	Message string // Subject line of the commit message
}

// Finding represents one pattern match inside the content introduced by a
// commit. A commit may produce many findings; findings are never deduplicated
// across commits since each occurrence in the timeline is independently
// reportable.
type Finding struct {
	Commit   string   `json:"commit"`   // Hash of the commit that introduced the match
	Author   string   `json:"author"`   // Commit author name
	Date     string   `json:"date"`     // Commit timestamp
	Message  string   `json:"message"`  // Commit subject line
	Pattern  string   `json:"pattern"`  // Source text of the detector rule that matched
	Match    string   `json:"match"`    // Matched text (first capturing group when present)
	Severity Severity `json:"severity"` // Severity tier of the detector rule
}

// SeverityCounts is the per-tier finding histogram. All three tiers are
// always present in serialized output, even when zero.
type SeverityCounts struct {
	High   int `json:"HIGH"`
	Medium int `json:"MEDIUM"`
	Low    int `json:"LOW"`
}

// Total returns the sum across all tiers.
func (c SeverityCounts) Total() int {
	return c.High + c.Medium + c.Low
}

// For returns the count for a single tier.
func (c SeverityCounts) For(sev Severity) int {
	switch sev {
	case HighSeverity:
		return c.High
	case MediumSeverity:
		return c.Medium
	default:
		return c.Low
	}
}

// RuleInfo is the renderable description of a compiled detector rule. Label
// is empty for custom patterns, which have no built-in name.
type RuleInfo struct {
	ID       int      `json:"id"`
	Severity Severity `json:"severity"`
	Label    string   `json:"label,omitempty"`
	Pattern  string   `json:"pattern"`
}

// Report is the complete record of one scan run. It is built once after all
// commits have been processed and never updated in place. Structured output
// modes serialize it without truncation.
type Report struct {
	ScannedAt     string         `json:"scannedAt"`
	TotalFindings int            `json:"totalFindings"`
	BySeverity    SeverityCounts `json:"bySeverity"`
	Findings      []Finding      `json:"findings"`
}

// Partition returns the findings of a single tier, preserving discovery order.
func (r *Report) Partition(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
