// Package adjust shifts OHLC prices by a fixed amount inside a time window of a CSV file.
package adjust

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ohlcv-tools/internal/backup"
	"ohlcv-tools/internal/frame"
	"ohlcv-tools/internal/journal"
	"ohlcv-tools/internal/model"
	"ohlcv-tools/internal/prompt"
	"ohlcv-tools/internal/saver"
	"ohlcv-tools/internal/tstamp"
)

// Adjuster runs one interactive price adjustment. Parser and Prompter are required;
// the rest is optional.
type Adjuster struct {
	Parser   *tstamp.Parser
	Prompter prompt.Prompter
	Backup   *backup.Archiver
	Recorder journal.Recorder
	Logger   *slog.Logger

	// Export, when set, also writes the adjusted bars to ExportDir (or next to the input).
	Export    saver.BarSaver
	ExportDir string
}

// Result describes a completed adjustment.
type Result struct {
	RunID      string
	Path       string
	Window     Window
	Columns    []string
	Adjustment decimal.Decimal
	Rows       int
	Stats      []ColumnStats
	Backup     string
	Exported   string
}

// Summary is the operator-facing report of r.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Modified CSV saved to %s\n", r.Path)
	fmt.Fprintf(&b, "Adjusted %d rows between %s and %s by %s in columns: %s\n",
		r.Rows, tstamp.Format(r.Window.Start), tstamp.Format(r.Window.End),
		r.Adjustment.String(), strings.Join(r.Columns, ", "))
	for _, s := range r.Stats {
		fmt.Fprintf(&b, "  %s\n", s)
	}
	if r.Backup != "" {
		fmt.Fprintf(&b, "Backup written to %s\n", r.Backup)
	}
	if r.Exported != "" {
		fmt.Fprintf(&b, "Exported adjusted bars to %s\n", r.Exported)
	}
	return b.String()
}

func (a *Adjuster) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// Run loads path, asks for the window, columns and amount, applies the adjustment and
// overwrites path. Any validation failure returns before the file is touched.
func (a *Adjuster) Run(path string) (*Result, error) {
	log := a.logger()

	f, err := frame.Read(path)
	if err != nil {
		return nil, err
	}
	if missing := f.Missing(model.RequiredColumns...); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	if f.Len() == 0 {
		return nil, ErrNoRows
	}
	log.Info("loaded csv", "path", path, "rows", f.Len(), "columns", len(f.Columns))

	times, err := a.parseTimes(f)
	if err != nil {
		return nil, err
	}

	first, last := times[0], times[len(times)-1]
	w, err := ResolveWindow(a.Prompter, a.Parser, first, last)
	if err != nil {
		return nil, err
	}

	colsIn, err := a.Prompter.Prompt(prompt.FieldColumns)
	if err != nil {
		return nil, err
	}
	cols, err := ParseColumns(colsIn)
	if err != nil {
		return nil, err
	}

	amountIn, err := a.Prompter.Prompt(prompt.FieldAdjustment)
	if err != nil {
		return nil, err
	}
	delta, err := ParseAdjustment(amountIn)
	if err != nil {
		return nil, err
	}

	mask, n := Mask(times, w)
	before := make([]Summary, len(cols))
	for i, c := range cols {
		before[i] = summarize(f, mask, c)
	}
	if err := Apply(f, mask, cols, delta); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:      journal.NewRunID(),
		Path:       path,
		Window:     w,
		Columns:    cols,
		Adjustment: delta,
		Rows:       n,
	}
	for i, c := range cols {
		res.Stats = append(res.Stats, ColumnStats{Column: c, Before: before[i], After: summarize(f, mask, c)})
	}

	if res.Backup, err = a.Backup.Snapshot(path); err != nil {
		return nil, fmt.Errorf("backup before write: %w", err)
	}
	if res.Backup != "" {
		log.Info("backup written", "path", res.Backup)
	}
	if err := f.Write(path); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("csv written", "path", path, "rows_adjusted", n, "columns", strings.Join(cols, ","), "adjustment", delta.String())

	res.Exported = a.export(f, times, path)
	a.record(res)
	return res, nil
}

// parseTimes parses every ts_event cell. The cells themselves are left as read, which is
// what keeps the timestamps byte-identical on output. A DST fall-back wall clock resolves
// to its earlier instant; seeing the same one twice means the file meant both instants and
// cannot be windowed reliably.
func (a *Adjuster) parseTimes(f *frame.Frame) ([]time.Time, error) {
	raw := f.Column(model.ColTsEvent)
	times := make([]time.Time, len(raw))
	ambiguous := make(map[int64]int) // unix nanos -> row
	for i, s := range raw {
		t, amb, err := a.Parser.ParseWall(s)
		if err != nil {
			return nil, &TimestampError{Row: i + 1, Value: s, Err: err}
		}
		if amb {
			if prev, ok := ambiguous[t.UnixNano()]; ok {
				return nil, &TimestampError{Row: i + 1, Value: s,
					Err: fmt.Errorf("%w: same instant as row %d", tstamp.ErrAmbiguous, prev)}
			}
			ambiguous[t.UnixNano()] = i + 1
			a.logger().Warn("ambiguous ts_event resolved to the earlier instant",
				"row", i+1, "value", s, "time", tstamp.Format(t))
		}
		times[i] = t
	}
	return times, nil
}

func (a *Adjuster) export(f *frame.Frame, times []time.Time, path string) string {
	if a.Export == nil {
		return ""
	}
	log := a.logger()
	bars, err := model.BarsFromFrame(f, times)
	if err != nil {
		log.Warn("export skipped", "error", err)
		return ""
	}
	dir := a.ExportDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Warn("export skipped", "error", err)
		return ""
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(dir, stem+".adjusted."+a.Export.Extension())
	if err := a.Export.Save(bars, out); err != nil {
		log.Warn("export failed", "path", out, "error", err)
		return ""
	}
	log.Info("exported", "path", out, "format", a.Export.Extension(), "bars", len(bars))
	return out
}

func (a *Adjuster) record(res *Result) {
	if a.Recorder == nil {
		return
	}
	err := a.Recorder.RecordAdjustment(&journal.AdjustmentEvent{
		RunID:      res.RunID,
		Path:       res.Path,
		Start:      res.Window.Start,
		End:        res.Window.End,
		Columns:    res.Columns,
		Adjustment: res.Adjustment.String(),
		Rows:       res.Rows,
		Backup:     res.Backup,
	})
	if err != nil {
		a.logger().Warn("journal write failed", "run_id", res.RunID, "error", err)
	}
}
