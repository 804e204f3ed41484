// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitClient defines the history-source operations the scan pipeline needs.
// This allows the core scanning logic to be tested without needing a real git
// executable: production code shells out to git, tests supply canned log and
// diff output through MockGitClient.
type GitClient interface {
	// Run executes a git command and returns its stdout; stderr is folded
	// into the returned error on a non-zero exit.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// CheckRepository verifies that repoPath is inside a git repository.
	// A failing check returns ErrNotARepository rather than the raw git error.
	CheckRepository(ctx context.Context, repoPath string) error

	// GetCommitLog returns the raw commit listing, one pipe-delimited record
	// per line (hash|author|email|date|subject), most recent first. The since
	// argument is passed through to git's --since filter verbatim; git's
	// permissive date handling applies, so an unparseable value yields an
	// empty listing instead of an error.
	GetCommitLog(ctx context.Context, repoPath string, since string) ([]byte, error)

	// GetCommitDiff returns the textual content added or modified by the
	// given commit relative to its parent. Deleted-only changes are excluded
	// and binary changes render as non-matchable placeholders. Partial output
	// may be returned alongside an error; callers decide how lenient to be.
	GetCommitDiff(ctx context.Context, repoPath string, hash string) ([]byte, error)
}
