package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine. Each call spawns one git
// process and never writes to the repository.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return out, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return out, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// CheckRepository implements the GitClient interface. Any failure of the
// probe is interpreted as "not a repository" rather than escalated.
func (c *LocalGitClient) CheckRepository(ctx context.Context, repoPath string) error {
	if _, err := c.Run(ctx, repoPath, "rev-parse", "--git-dir"); err != nil {
		return ErrNotARepository
	}
	return nil
}

// GetCommitLog implements the GitClient interface.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath string, since string) ([]byte, error) {
	args := []string{
		"log",
		"--pretty=format:%H|%an|%ae|%ad|%s",
		"--date=iso",
	}
	if since != "" {
		args = append(args, "--since", since)
	}
	return c.Run(ctx, repoPath, args...)
}

// GetCommitDiff implements the GitClient interface. Partial stdout is
// returned even when git exits non-zero so that one unreadable commit does
// not have to abort a whole scan.
func (c *LocalGitClient) GetCommitDiff(ctx context.Context, repoPath string, hash string) ([]byte, error) {
	return c.Run(ctx, repoPath, "show", "--pretty=", "--diff-filter=AM", hash)
}
