package core

import (
	"testing"

	"github.com/gitsleuth/gitsleuth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCommitLog parses a well-formed two-commit listing and preserves
// listing order.
func TestParseCommitLog(t *testing.T) {
	raw := []byte(
		"a1b2c3d4e5f6a7b8|Alice|alice@example.com|2024-03-01 10:00:00 +0000|Add login form\n" +
			"f6e5d4c3b2a1f0e9|Bob|bob@example.com|2024-02-28 09:30:00 +0000|Initial commit\n")

	commits := ParseCommitLog(raw)
	require.Len(t, commits, 2)

	assert.Equal(t, schema.Commit{
		Hash:    "a1b2c3d4e5f6a7b8",
		Author:  "Alice",
		Email:   "alice@example.com",
		Date:    "2024-03-01 10:00:00 +0000",
		Message: "Add login form",
	}, commits[0])
	assert.Equal(t, "f6e5d4c3b2a1f0e9", commits[1].Hash)
}

// TestParseCommitLog_PipeInSubject verifies the subject absorbs extra
// delimiters since it is split last.
func TestParseCommitLog_PipeInSubject(t *testing.T) {
	raw := []byte("abc123|Alice|alice@example.com|2024-03-01 10:00:00 +0000|Refactor a|b|c handling\n")

	commits := ParseCommitLog(raw)
	require.Len(t, commits, 1)
	assert.Equal(t, "Refactor a|b|c handling", commits[0].Message)
}

// TestParseCommitLog_SkipsMalformedLines verifies lines missing fields are
// dropped rather than aborting the parse.
func TestParseCommitLog_SkipsMalformedLines(t *testing.T) {
	raw := []byte(
		"abc123|Alice|alice@example.com|2024-03-01 10:00:00 +0000|ok\n" +
			"garbage line without delimiters\n" +
			"short|fields|only\n" +
			"def456|Bob|bob@example.com|2024-02-28 09:30:00 +0000|also ok\n")

	commits := ParseCommitLog(raw)
	require.Len(t, commits, 2)
	assert.Equal(t, "abc123", commits[0].Hash)
	assert.Equal(t, "def456", commits[1].Hash)
}

// TestParseCommitLog_EmptyInput verifies empty history yields no commits.
func TestParseCommitLog_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseCommitLog(nil))
	assert.Empty(t, ParseCommitLog([]byte("")))
	assert.Empty(t, ParseCommitLog([]byte("\n\n")))
}
