package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/gitsleuth/gitsleuth/schema"
)

// writeCSVReport writes the full findings list in CSV format. Like JSON mode
// it is a complete record: no truncation, no per-tier limit.
func writeCSVReport(w io.Writer, report *schema.Report) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{
		"commit",
		"author",
		"date",
		"message",
		"pattern",
		"match",
		"severity",
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, f := range report.Findings {
		rec := []string{
			f.Commit,
			f.Author,
			f.Date,
			f.Message,
			f.Pattern,
			f.Match,
			string(f.Severity),
		}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
