package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"ohlcv-tools/internal/adjust"
	"ohlcv-tools/internal/dropcols"
	"ohlcv-tools/internal/frame"
)

// Process exit codes shared by both tools.
const (
	ExitOK       = 0
	ExitFailure  = 1 // unexpected error
	ExitNotFound = 2 // input file missing
	ExitNoMatch  = 3 // column dropper found nothing to drop
	ExitInvalid  = 4 // bad data in the file or bad operator input
)

// ExitCode maps an error returned by a tool run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, frame.ErrNotFound) {
		return ExitNotFound
	}
	if errors.Is(err, dropcols.ErrNoMatchingColumns) {
		return ExitNoMatch
	}
	if isInvalid(err) {
		return ExitInvalid
	}
	return ExitFailure
}

func isInvalid(err error) bool {
	switch {
	case errors.Is(err, adjust.ErrNoRows),
		errors.Is(err, adjust.ErrInvalidWindow),
		errors.Is(err, adjust.ErrInvalidAdjustment):
		return true
	}
	var (
		missing *adjust.MissingColumnsError
		ts      *adjust.TimestampError
		input   *adjust.DateTimeInputError
		cols    *adjust.InvalidColumnsError
		cell    *adjust.CellError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &ts) ||
		errors.As(err, &input) ||
		errors.As(err, &cols) ||
		errors.As(err, &cell)
}

// Fail reports err to the operator on w, logs it, and returns the exit code to use.
func Fail(w io.Writer, log *slog.Logger, err error) int {
	code := ExitCode(err)
	fmt.Fprintf(w, "Error: %v\n", err)
	if code == ExitFailure {
		log.Error("unexpected error", "error", err)
	} else {
		log.Debug("run aborted", "error", err, "exit_code", code)
	}
	return code
}
