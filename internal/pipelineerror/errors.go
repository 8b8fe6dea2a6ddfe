// Package pipelineerror defines the terminal failure modes of a pipeline run.
// Row-level data problems are deliberately not errors: an unparseable amount
// drops the row silently and a missing description or date coerces to empty.
package pipelineerror

import (
	"fmt"
	"strings"
)

// DecodeError represents malformed CSV input. Decoding failures short-circuit
// before the pipeline runs.
type DecodeError struct {
	Line int // 1-based CSV line, 0 when unknown
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("csv decode failed at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("csv decode failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ColumnDetectionError indicates that one or more required columns could not
// be inferred from the CSV headers. No partial categorization is attempted.
type ColumnDetectionError struct {
	Missing []string
}

func (e *ColumnDetectionError) Error() string {
	return fmt.Sprintf("required columns not detected: %s", strings.Join(e.Missing, ", "))
}

// EmptyDatasetError indicates that the decoded file contained no data rows.
// Reported distinctly from a detection failure.
type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string {
	return "empty dataset: no data rows after decode"
}
