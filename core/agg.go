package core

import (
	"time"

	"github.com/gitsleuth/gitsleuth/schema"
)

// FindingSet accumulates findings in discovery order (commit iteration order,
// then rule order, then match order within a rule). Append-only during a run;
// no deduplication.
type FindingSet struct {
	findings []schema.Finding
}

// NewFindingSet creates an empty findings accumulator.
func NewFindingSet() *FindingSet {
	return &FindingSet{findings: []schema.Finding{}}
}

// Add appends findings, preserving order.
func (s *FindingSet) Add(findings ...schema.Finding) {
	s.findings = append(s.findings, findings...)
}

// Total returns the number of accumulated findings.
func (s *FindingSet) Total() int {
	return len(s.findings)
}

// Counts returns the severity histogram over all accumulated findings.
func (s *FindingSet) Counts() schema.SeverityCounts {
	var counts schema.SeverityCounts
	for _, f := range s.findings {
		switch f.Severity {
		case schema.HighSeverity:
			counts.High++
		case schema.MediumSeverity:
			counts.Medium++
		default:
			counts.Low++
		}
	}
	return counts
}

// BuildReport snapshots the accumulated findings into the final report.
func (s *FindingSet) BuildReport(scannedAt time.Time) *schema.Report {
	return &schema.Report{
		ScannedAt:     scannedAt.Format(time.RFC3339),
		TotalFindings: s.Total(),
		BySeverity:    s.Counts(),
		Findings:      s.findings,
	}
}
