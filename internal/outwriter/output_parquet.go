package outwriter

import (
	"fmt"
	"os"

	"github.com/gitsleuth/gitsleuth/schema"
	"github.com/parquet-go/parquet-go"
)

// FindingRecord maps one finding to a Parquet row. The scan timestamp is
// repeated per row so exported files from multiple runs can be concatenated
// and still attribute every row to its run.
type FindingRecord struct {
	ScannedAt string `parquet:"scanned_at,snappy"`
	Commit    string `parquet:"commit,snappy"`
	Author    string `parquet:"author,snappy"`
	Date      string `parquet:"date,snappy"`
	Message   string `parquet:"message,snappy"`
	Pattern   string `parquet:"pattern,snappy"`
	Match     string `parquet:"match,snappy"`
	Severity  string `parquet:"severity,snappy"`
}

// writeParquetReport writes the full findings list to a Parquet file using
// struct schema inference. Parquet output always targets a file; config
// validation rejects the mode without --output-file.
func writeParquetReport(outputPath string, report *schema.Report) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[FindingRecord](file)
	defer func() { _ = writer.Close() }()

	records := FindingRecords(report)
	if len(records) == 0 {
		return nil
	}
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// FindingRecords converts a report into Parquet rows.
func FindingRecords(report *schema.Report) []FindingRecord {
	records := make([]FindingRecord, 0, len(report.Findings))
	for _, f := range report.Findings {
		records = append(records, FindingRecord{
			ScannedAt: report.ScannedAt,
			Commit:    f.Commit,
			Author:    f.Author,
			Date:      f.Date,
			Message:   f.Message,
			Pattern:   f.Pattern,
			Match:     f.Match,
			Severity:  string(f.Severity),
		})
	}
	return records
}
