package core

import (
	"testing"
	"time"

	"github.com/gitsleuth/gitsleuth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindingSet_PreservesOrder verifies findings come back in the order they
// were added, with no deduplication.
func TestFindingSet_PreservesOrder(t *testing.T) {
	set := NewFindingSet()
	set.Add(
		schema.Finding{Commit: "a", Severity: schema.LowSeverity},
		schema.Finding{Commit: "b", Severity: schema.HighSeverity},
	)
	set.Add(schema.Finding{Commit: "b", Severity: schema.HighSeverity}) // duplicate stays

	report := set.BuildReport(time.Now())
	require.Len(t, report.Findings, 3)
	assert.Equal(t, "a", report.Findings[0].Commit)
	assert.Equal(t, "b", report.Findings[1].Commit)
	assert.Equal(t, "b", report.Findings[2].Commit)
}

// TestFindingSet_Counts verifies the severity histogram always carries all
// three tiers and sums to the total.
func TestFindingSet_Counts(t *testing.T) {
	set := NewFindingSet()
	set.Add(
		schema.Finding{Severity: schema.HighSeverity},
		schema.Finding{Severity: schema.HighSeverity},
		schema.Finding{Severity: schema.MediumSeverity},
		schema.Finding{Severity: schema.LowSeverity},
	)

	counts := set.Counts()
	assert.Equal(t, 2, counts.High)
	assert.Equal(t, 1, counts.Medium)
	assert.Equal(t, 1, counts.Low)
	assert.Equal(t, set.Total(), counts.Total())
}

// TestFindingSet_BuildReport verifies report snapshot fields.
func TestFindingSet_BuildReport(t *testing.T) {
	set := NewFindingSet()
	set.Add(schema.Finding{Commit: "abc", Severity: schema.MediumSeverity})

	scannedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	report := set.BuildReport(scannedAt)

	assert.Equal(t, "2024-03-01T10:00:00Z", report.ScannedAt)
	assert.Equal(t, 1, report.TotalFindings)
	assert.Equal(t, schema.SeverityCounts{Medium: 1}, report.BySeverity)
	require.Len(t, report.Findings, 1)
}

// TestFindingSet_EmptyReport verifies an empty set still serializes findings
// as an array, never null.
func TestFindingSet_EmptyReport(t *testing.T) {
	report := NewFindingSet().BuildReport(time.Now())
	assert.Equal(t, 0, report.TotalFindings)
	assert.NotNil(t, report.Findings)
	assert.Empty(t, report.Findings)
	assert.Equal(t, schema.SeverityCounts{}, report.BySeverity)
}
