package cmd

import (
	"errors"
	"os"

	"github.com/gitsleuth/gitsleuth/core"
	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/spf13/cobra"
)

// scanCmd audits the repository's commit history for leaked secrets.
var scanCmd = &cobra.Command{
	Use:     "scan [path]",
	Short:   "Scan a repository's commit history for leaked secrets.",
	Long:    `Scan walks every commit reachable from HEAD, matches the content each commit introduced against the detector rules, and reports findings grouped by severity. Exits 1 when HIGH severity findings exist or the path is not a git repository.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg, gitClient); err != nil {
			if errors.Is(err, contract.ErrNotARepository) || errors.Is(err, contract.ErrHighSeverityFindings) {
				os.Exit(1)
			}
			contract.LogFatal("Error scanning history", err)
		}
	},
}
