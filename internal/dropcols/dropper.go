// Package dropcols removes a configured set of columns from a CSV file.
package dropcols

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ohlcv-tools/internal/backup"
	"ohlcv-tools/internal/frame"
	"ohlcv-tools/internal/journal"
)

// ErrNoMatchingColumns is returned when none of the configured columns exist in the file.
var ErrNoMatchingColumns = errors.New("no matching columns to drop")

// Dropper drops Columns from a CSV file. Backup and Recorder are optional.
type Dropper struct {
	Columns  []string
	Backup   *backup.Archiver
	Recorder journal.Recorder
	Logger   *slog.Logger
}

// Result describes a completed drop.
type Result struct {
	RunID   string
	Input   string
	Output  string
	Dropped []string
	Backup  string
}

// Summary is the operator-facing report of r.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dropped columns: %s\n", strings.Join(r.Dropped, ", "))
	fmt.Fprintf(&b, "Saved to %s\n", r.Output)
	if r.Backup != "" {
		fmt.Fprintf(&b, "Backup written to %s\n", r.Backup)
	}
	return b.String()
}

func (d *Dropper) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Run drops the configured columns present in in and writes the table to out. An empty
// out means in. When nothing matches, no file is written.
func (d *Dropper) Run(in, out string) (*Result, error) {
	log := d.logger()
	if out == "" {
		out = in
	}

	f, err := frame.Read(in)
	if err != nil {
		return nil, err
	}
	log.Info("loaded csv", "path", in, "rows", f.Len(), "columns", len(f.Columns))

	dropped := f.Drop(d.Columns...)
	if len(dropped) == 0 {
		return nil, fmt.Errorf("%w (looked for: %s)", ErrNoMatchingColumns, strings.Join(d.Columns, ", "))
	}

	res := &Result{
		RunID:   journal.NewRunID(),
		Input:   in,
		Output:  out,
		Dropped: dropped,
	}
	if _, err := os.Stat(out); err == nil {
		if res.Backup, err = d.Backup.Snapshot(out); err != nil {
			return nil, fmt.Errorf("backup before write: %w", err)
		}
	}
	if err := f.Write(out); err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}
	log.Info("csv written", "path", out, "dropped", strings.Join(dropped, ","), "columns_left", len(f.Columns))

	if d.Recorder != nil {
		err := d.Recorder.RecordDrop(&journal.DropEvent{
			RunID:   res.RunID,
			Input:   res.Input,
			Output:  res.Output,
			Dropped: res.Dropped,
			Backup:  res.Backup,
		})
		if err != nil {
			log.Warn("journal write failed", "run_id", res.RunID, "error", err)
		}
	}
	return res, nil
}
