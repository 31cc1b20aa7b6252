package vcf

import "fmt"

// Severity grades a parse warning.
type Severity string

// Warning severities. Info-level conditions only lower downstream confidence;
// warning-level conditions cause a record to be skipped or flagged; error-level
// conditions mean a line could not be parsed at all.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Warning describes a recoverable per-line condition. Warnings are values
// returned to the caller, never raised.
type Warning struct {
	Line     int      `json:"line"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d [%s] %s: %s", w.Line, w.Severity, w.Field, w.Message)
}

// FatalInputError is an input condition that aborts the whole batch: an empty
// file, a file with only header lines, or a file where no line reaches the
// minimum column count.
type FatalInputError struct {
	Reason string
}

func (e *FatalInputError) Error() string {
	return "fatal input error: " + e.Reason
}
