package schema

// Custom string types for type safety.
type (
	// Severity represents the severity tier of a detector rule.
	Severity string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All severity tiers supported, from most to least severe.
const (
	HighSeverity   Severity = "HIGH"
	MediumSeverity Severity = "MEDIUM"
	LowSeverity    Severity = "LOW"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// AllSeverities lists the tiers in report order (HIGH > MEDIUM > LOW).
var AllSeverities = []Severity{HighSeverity, MediumSeverity, LowSeverity}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}
