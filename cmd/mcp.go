package cmd

import (
	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd starts the MCP server for AI assistant integrations.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the MCP server for AI assistant integrations.",
	Long:    `MCP starts a Model Context Protocol server on stdio, exposing history scans and the detector rule set as tools for AI assistants.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Error running MCP server", err)
		}
	},
}
