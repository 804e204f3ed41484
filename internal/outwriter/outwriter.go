// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/schema"
)

// WriteReport renders the scan report, dispatching on the configured output
// format. Text mode is a human summary with per-tier truncation; the other
// modes are the complete audit record.
func WriteReport(report *schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeCSVReport(w, report)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetReport(cfg.OutputFile, report)
	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeTextReport(w, report, cfg)
		}, "Wrote report")
	}
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
// The save confirmation honors the emoji toggle like the rest of the text surface.
func writeWithFile(cfg *contract.Config, writer func(io.Writer) error, successMsg string) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "%s%s to %s\n", emojiPrefix(cfg, "💾 "), successMsg, cfg.OutputFile)
	}
	return nil
}

// selectOutputFile returns the appropriate file handle for output. An empty
// path means stdout.
func selectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
