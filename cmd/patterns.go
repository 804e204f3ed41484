package cmd

import (
	"github.com/gitsleuth/gitsleuth/core"
	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/internal/outwriter"
	"github.com/spf13/cobra"
)

// patternsCmd lists the effective detector rules without scanning anything.
var patternsCmd = &cobra.Command{
	Use:     "patterns",
	Short:   "List the effective detector rules and their severity tiers.",
	Long:    `Patterns shows the rule set a scan would use, including any custom patterns supplied via --patterns, with the severity tier each rule classifies into.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		rules, err := core.CompileRules(cfg.Patterns)
		if err != nil {
			contract.LogFatal("Error compiling detector rules", err)
		}
		if err := outwriter.WriteRules(core.RuleInfos(rules), cfg); err != nil {
			contract.LogFatal("Error writing detector rules", err)
		}
	},
}
