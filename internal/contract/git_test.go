package contract

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfGitNotAvailable skips the test if git binary is not found in PATH
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// initTestRepo creates a throwaway repository with a single commit adding a
// file with the given content, and returns the repository path.
func initTestRepo(t *testing.T, filename, content string) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init")
	run("config", "user.name", "Test Author")
	run("config", "user.email", "test@example.com")

	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
	run("add", ".")
	run("-c", "commit.gpgsign=false", "commit", "-m", "add "+filename)

	return dir
}

// TestNewLocalGitClient tests the constructor for LocalGitClient.
func TestNewLocalGitClient(t *testing.T) {
	client := NewLocalGitClient()
	assert.NotNil(t, client, "NewLocalGitClient should return a non-nil client")
	assert.IsType(t, &LocalGitClient{}, client, "NewLocalGitClient should return a LocalGitClient instance")
}

// TestMockGitClient ensures the mock correctly records and returns programmed
// values for each interface method.
func TestMockGitClient(t *testing.T) {
	mockClient := new(MockGitClient)
	ctx := context.Background()

	expectedOutput := []byte("a1b2c3d commit message")
	expectedError := errors.New("mocked git error")

	// Run flattens variadic args into m.Called(), so .On() must match the
	// flattened shape.
	mockClient.
		On("Run", ctx, "/path/to/repo", "log", "-1", "--oneline").
		Return(expectedOutput, expectedError).
		Once()

	actualOutput, actualError := mockClient.Run(ctx, "/path/to/repo", "log", "-1", "--oneline")
	assert.Equal(t, expectedOutput, actualOutput)
	assert.Equal(t, expectedError, actualError)

	mockClient.On("CheckRepository", ctx, "/repo").Return(nil).Once()
	assert.NoError(t, mockClient.CheckRepository(ctx, "/repo"))

	mockClient.On("GetCommitLog", ctx, "/repo", "2024-01-01").Return([]byte("log"), nil).Once()
	out, err := mockClient.GetCommitLog(ctx, "/repo", "2024-01-01")
	assert.NoError(t, err)
	assert.Equal(t, []byte("log"), out)

	mockClient.On("GetCommitDiff", ctx, "/repo", "abc123").Return([]byte("diff"), nil).Once()
	out, err = mockClient.GetCommitDiff(ctx, "/repo", "abc123")
	assert.NoError(t, err)
	assert.Equal(t, []byte("diff"), out)

	mockClient.AssertExpectations(t)
}

// TestLocalGitClient_CheckRepository verifies the probe against a real
// repository and against a plain directory.
func TestLocalGitClient_CheckRepository(t *testing.T) {
	skipIfGitNotAvailable(t)
	client := NewLocalGitClient()
	ctx := context.Background()

	repo := initTestRepo(t, "readme.txt", "hello\n")
	assert.NoError(t, client.CheckRepository(ctx, repo))

	assert.ErrorIs(t, client.CheckRepository(ctx, t.TempDir()), ErrNotARepository)
	assert.ErrorIs(t, client.CheckRepository(ctx, "/nonexistent/path"), ErrNotARepository)
}

// TestLocalGitClient_GetCommitLog verifies the listing format: one line per
// commit with five pipe-delimited fields.
func TestLocalGitClient_GetCommitLog(t *testing.T) {
	skipIfGitNotAvailable(t)
	client := NewLocalGitClient()
	ctx := context.Background()

	repo := initTestRepo(t, "readme.txt", "hello\n")

	out, err := client.GetCommitLog(ctx, repo, "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 1)

	fields := strings.SplitN(lines[0], "|", 5)
	require.Len(t, fields, 5)
	assert.Len(t, fields[0], 40, "full hash expected")
	assert.Equal(t, "Test Author", fields[1])
	assert.Equal(t, "test@example.com", fields[2])
	assert.Equal(t, "add readme.txt", fields[4])
}

// TestLocalGitClient_GetCommitLog_Since verifies a future boundary excludes
// existing commits.
func TestLocalGitClient_GetCommitLog_Since(t *testing.T) {
	skipIfGitNotAvailable(t)
	client := NewLocalGitClient()
	ctx := context.Background()

	repo := initTestRepo(t, "readme.txt", "hello\n")

	out, err := client.GetCommitLog(ctx, repo, "2999-01-01")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(out)))
}

// TestLocalGitClient_GetCommitDiff verifies the introduced content of a
// commit comes back in the diff.
func TestLocalGitClient_GetCommitDiff(t *testing.T) {
	skipIfGitNotAvailable(t)
	client := NewLocalGitClient()
	ctx := context.Background()

	repo := initTestRepo(t, "config.env", "DB_PASSWORD=topsecret\n")

	logOut, err := client.GetCommitLog(ctx, repo, "")
	require.NoError(t, err)
	hash := strings.SplitN(strings.TrimSpace(string(logOut)), "|", 2)[0]

	diff, err := client.GetCommitDiff(ctx, repo, hash)
	require.NoError(t, err)
	assert.Contains(t, string(diff), "+DB_PASSWORD=topsecret")
}

// TestLocalGitClient_RunFailure verifies a non-zero git exit surfaces as an
// error naming the repository path.
func TestLocalGitClient_RunFailure(t *testing.T) {
	skipIfGitNotAvailable(t)
	client := NewLocalGitClient()
	ctx := context.Background()

	_, err := client.Run(ctx, t.TempDir(), "log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git command failed")
}
