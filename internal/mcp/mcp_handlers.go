package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gitsleuth/gitsleuth/core"
	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleScanHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	// Structured output keeps text banners off the protocol stream.
	cfg.Output = schema.JSONOut

	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if raw := request.GetString("patterns", ""); raw != "" {
		patterns, err := contract.ResolvePatterns(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid patterns: %v", err)), nil
		}
		cfg.Patterns = patterns
	}
	if s := request.GetString("since", ""); s != "" {
		cfg.Since = s
	}

	report, err := core.CollectReport(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRules(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules, err := core.CompileRules(h.baseCfg.Patterns)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rule compilation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(core.RuleInfos(rules), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
