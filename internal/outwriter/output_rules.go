package outwriter

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// WriteRules renders the effective detector rule set, dispatching on the
// configured output format. Parquet has no rule representation and falls back
// to the table.
func WriteRules(rules []schema.RuleInfo, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, rules)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeRulesCSV(w, rules)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeRulesTable(w, rules, cfg)
		}, "Wrote table")
	}
}

// writeRulesTable prints the rule set as a human-readable table.
func writeRulesTable(w io.Writer, rules []schema.RuleInfo, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Severity", "Label", "Pattern"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := getMaxTablePatternWidth(cfg)
	var data [][]string
	for _, r := range rules {
		sevLabel := contract.GetPlainLabel(r.Severity)
		if cfg.UseColors {
			sevLabel = contract.GetColorLabel(r.Severity)
		}
		data = append(data, []string{
			strconv.Itoa(r.ID),
			sevLabel,
			r.Label,
			contract.TruncateMatch(r.Pattern, maxWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeRulesCSV writes the rule set in CSV format.
func writeRulesCSV(w io.Writer, rules []schema.RuleInfo) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"id", "severity", "label", "pattern"}); err != nil {
		return err
	}
	for _, r := range rules {
		rec := []string{strconv.Itoa(r.ID), string(r.Severity), r.Label, r.Pattern}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// getMaxTablePatternWidth calculates the maximum width for pattern text in
// table output based on terminal width.
func getMaxTablePatternWidth(cfg *contract.Config) int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = 80 // Conservative default for narrow terminals and CI
	}

	// Reserve space for the ID, Severity and Label columns plus borders/padding
	available := termWidth - 60
	if available < 20 {
		return 20
	}
	if available > 100 {
		return 100
	}
	return available
}
