package adjust

import (
	"errors"
	"fmt"
	"strings"

	"ohlcv-tools/internal/model"
	"ohlcv-tools/internal/prompt"
)

var (
	// ErrNoRows is returned for a file holding only a header.
	ErrNoRows = errors.New("file has no data rows")
	// ErrInvalidWindow is returned when the end bound is not after the start bound.
	ErrInvalidWindow = errors.New("end date and time must be after start date and time")
	// ErrInvalidAdjustment is returned for a non-numeric or non-finite adjustment value.
	ErrInvalidAdjustment = errors.New("adjustment value must be a number (e.g. +60 or -40)")
)

// MissingColumnsError lists required columns absent from the header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// TimestampError reports the first ts_event value that could not be parsed.
type TimestampError struct {
	Row   int // 1-based data row
	Value string
	Err   error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("failed to parse ts_event as datetime at row %d (%q), check the format: %v", e.Row, e.Value, e.Err)
}

func (e *TimestampError) Unwrap() error { return e.Err }

// DateTimeInputError reports a malformed window bound typed by the operator.
type DateTimeInputError struct {
	Field prompt.Field
	Value string
	Err   error
}

func (e *DateTimeInputError) Error() string {
	return fmt.Sprintf("invalid %s date format %q, use YYYY-MM-DD HH:MM:SS: %v", e.Field, e.Value, e.Err)
}

func (e *DateTimeInputError) Unwrap() error { return e.Err }

// InvalidColumnsError lists requested columns outside the price vocabulary.
type InvalidColumnsError struct {
	Columns []string
}

func (e *InvalidColumnsError) Error() string {
	quoted := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("invalid columns [%s], choose from: %s",
		strings.Join(quoted, ", "), strings.Join(model.PriceColumns, ", "))
}

// CellError reports a selected price cell that is not a number.
type CellError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d column %s: value %q is not numeric", e.Row, e.Column, e.Value)
}

func (e *CellError) Unwrap() error { return e.Err }
