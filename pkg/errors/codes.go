package errors

// Stable error codes used across Inkwell. Codes are matched by errors.Is via
// ReportError.Is, so they must never change once released.
const (
	// Layout engine (input-shape) codes.
	CodeRowShapeMismatch    = "ROW_SHAPE_MISMATCH"    // record cell count != column count
	CodeInvalidColumnSpec   = "INVALID_COLUMN_SPEC"   // empty spec, non-positive or overflowing widths
	CodeInvalidPageGeometry = "INVALID_PAGE_GEOMETRY" // page cannot hold a header and one row

	// Data loading codes.
	CodeCSVOpen   = "CSV_OPEN"   // CSV file could not be opened
	CodeCSVRecord = "CSV_RECORD" // CSV row has the wrong field count
	CodeCSVField  = "CSV_FIELD"  // CSV numeric or date field failed to parse

	// Report generation codes.
	CodeReportWrite = "REPORT_WRITE" // output PDF could not be written
	CodeOutputDir   = "OUTPUT_DIR"   // output directory could not be created
	CodeEmptyRoster = "EMPTY_ROSTER" // report requested over zero records

	// Configuration codes.
	CodeConfigRead    = "CONFIG_READ"
	CodeConfigParse   = "CONFIG_PARSE"
	CodeConfigWrite   = "CONFIG_WRITE"
	CodeConfigInvalid = "CONFIG_INVALID"
)
