package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gitsleuth/gitsleuth/internal/contract"
	mcp_internal "github.com/gitsleuth/gitsleuth/internal/mcp"
	"github.com/gitsleuth/gitsleuth/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTestConfig() *contract.Config {
	patterns := make([]string, len(schema.DefaultPatterns))
	copy(patterns, schema.DefaultPatterns)
	return &contract.Config{
		RepoPath:     ".",
		Patterns:     patterns,
		Output:       schema.TextOut,
		DisplayLimit: contract.DefaultDisplayLimit,
		MatchWidth:   contract.DefaultMatchWidth,
		Workers:      2,
	}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPServer_ScanRepositoryHistory(t *testing.T) {
	baseCfg := baseTestConfig()
	baseCfg.RepoPath = "/repo"

	mockClient := new(contract.MockGitClient)
	s := mcp_internal.NewMCPServer(baseCfg, mockClient)
	ctx := context.Background()

	tool := s.GetTool("scan_repository_history")
	require.NotNil(t, tool, "Tool scan_repository_history should exist")

	t.Run("successful scan returns JSON report", func(t *testing.T) {
		log := "a1b2c3d4e5f6a7b8|Alice|alice@example.com|2024-03-01 10:00:00 +0000|Add config\n"
		diff := "+DB_PASSWORD=topsecret\n"

		mockClient.On("CheckRepository", ctx, "/repo").Return(nil).Once()
		mockClient.On("GetCommitLog", ctx, "/repo", "").Return([]byte(log), nil).Once()
		mockClient.On("GetCommitDiff", ctx, "/repo", "a1b2c3d4e5f6a7b8").Return([]byte(diff), nil).Once()

		res, err := tool.Handler(ctx, callRequest("scan_repository_history", map[string]any{}))
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		require.False(t, res.IsError)

		var report schema.Report
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &report))
		assert.Equal(t, 1, report.TotalFindings)
		assert.Equal(t, 1, report.BySeverity.High)

		mockClient.AssertExpectations(t)
	})

	t.Run("invalid patterns argument", func(t *testing.T) {
		res, err := tool.Handler(ctx, callRequest("scan_repository_history", map[string]any{
			"patterns": "[unclosed",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid patterns")
	})

	t.Run("not a repository", func(t *testing.T) {
		mockClient.On("CheckRepository", ctx, "/elsewhere").Return(assert.AnError).Once()

		res, err := tool.Handler(ctx, callRequest("scan_repository_history", map[string]any{
			"repo_path": "/elsewhere",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "scan failed")
	})
}

func TestMCPServer_ListDetectorRules(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	s := mcp_internal.NewMCPServer(baseTestConfig(), mockClient)
	ctx := context.Background()

	tool := s.GetTool("list_detector_rules")
	require.NotNil(t, tool, "Tool list_detector_rules should exist")

	res, err := tool.Handler(ctx, callRequest("list_detector_rules", nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var rules []schema.RuleInfo
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &rules))
	require.Len(t, rules, len(schema.DefaultPatterns))
	assert.Equal(t, 1, rules[0].ID)
}
