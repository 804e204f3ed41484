package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type. It lets the core
// pipeline run against canned commit listings and diff content.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CheckRepository implements the GitClient interface.
func (m *MockGitClient) CheckRepository(ctx context.Context, repoPath string) error {
	ret := m.Called(ctx, repoPath)
	return ret.Error(0)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string, since string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, since)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetCommitDiff implements the GitClient interface.
func (m *MockGitClient) GetCommitDiff(ctx context.Context, repoPath string, hash string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, hash)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}
