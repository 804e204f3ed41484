// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitsleuth MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitsleuth History Audit Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: scan_repository_history ---
	s.AddTool(mcp.NewTool("scan_repository_history",
		mcp.WithDescription("Scan the full commit history of a git repository for leaked secrets (passwords, API keys, tokens, private keys)."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured path).")),
		mcp.WithString("patterns", mcp.Description("Custom pipe-delimited detector patterns. Empty uses the built-in rule set.")),
		mcp.WithString("since", mcp.Description("Only scan commits at or after this date (passed through to git --since).")),
	), h.handleScanHistory)

	// --- 2. Tool: list_detector_rules ---
	s.AddTool(mcp.NewTool("list_detector_rules",
		mcp.WithDescription("List the effective detector rules with their severity tiers."),
	), h.handleListRules)

	return s
}

// StartMCPServer starts the gitsleuth MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
