package core

import (
	"strings"

	"github.com/gitsleuth/gitsleuth/schema"
)

// commitLogFields is the number of pipe-delimited fields per log record:
// hash|author|email|date|subject.
const commitLogFields = 5

// ParseCommitLog parses the raw history listing into commit records,
// preserving listing order (most recent first). Lines that do not carry all
// five fields are skipped; the subject field absorbs any further delimiters
// since it is split last.
func ParseCommitLog(raw []byte) []schema.Commit {
	var commits []schema.Commit
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", commitLogFields)
		if len(parts) != commitLogFields {
			continue
		}
		commits = append(commits, schema.Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Email:   parts[2],
			Date:    parts[3],
			Message: parts[4],
		})
	}
	return commits
}
