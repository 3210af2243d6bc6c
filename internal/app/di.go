package app

import (
	"fmt"
	"log/slog"
	"strings"

	"ohlcv-tools/internal/adjust"
	"ohlcv-tools/internal/backup"
	"ohlcv-tools/internal/dropcols"
	"ohlcv-tools/internal/journal"
	"ohlcv-tools/internal/prompt"
	"ohlcv-tools/internal/saver"
	"ohlcv-tools/internal/slogx"
	"ohlcv-tools/internal/tstamp"
)

// ProvideConfig loads and validates config (for Wire).
func ProvideConfig(path ConfigPath) (*Config, error) {
	cfg, err := Load(string(path))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideLogger builds the stderr logger at the configured level (for Wire).
func ProvideLogger(cfg *Config) *slog.Logger {
	return slogx.NewDefault(cfg.LogLevel)
}

// ProvideParser builds the timestamp parser for the configured zone (for Wire).
func ProvideParser(cfg *Config) (*tstamp.Parser, error) {
	return tstamp.NewParser(cfg.Timezone)
}

// ProvideArchiver creates the pre-write backup archiver (for Wire).
func ProvideArchiver(cfg *Config) *backup.Archiver {
	return backup.New(cfg.Backup.Dir)
}

// ProvideBarSaver creates the export saver from config (for Wire).
// Returns nil when export is disabled, and an error if Format is not supported.
func ProvideBarSaver(cfg *Config) (saver.BarSaver, error) {
	if cfg.Export.Format == "" {
		return nil, nil
	}
	s := saver.NewBarSaver(cfg.Export.Format)
	if s == nil {
		return nil, fmt.Errorf("unsupported EXPORT_FORMAT %q (use: %s)", cfg.Export.Format, strings.Join(saver.Formats, ", "))
	}
	return s, nil
}

// ProvideRecorder opens the edit journal (for Wire). A journal that cannot be opened is
// replaced by a no-op one, so edits still go through. The cleanup closes it.
func ProvideRecorder(cfg *Config, log *slog.Logger) (journal.Recorder, func()) {
	if cfg.Database.SQLitePath == "" {
		return journal.NewNoopRecorder(), func() {}
	}
	r, err := journal.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Warn("journal unavailable, using noop", "path", cfg.Database.SQLitePath, "error", err)
		return journal.NewNoopRecorder(), func() {}
	}
	return r, func() {
		if err := r.Close(); err != nil {
			log.Warn("close journal", "error", err)
		}
	}
}

// ProvideAdjuster wires the price adjuster (for Wire).
func ProvideAdjuster(
	cfg *Config,
	parser *tstamp.Parser,
	p prompt.Prompter,
	archiver *backup.Archiver,
	rec journal.Recorder,
	export saver.BarSaver,
	log *slog.Logger,
) *adjust.Adjuster {
	return &adjust.Adjuster{
		Parser:    parser,
		Prompter:  p,
		Backup:    archiver,
		Recorder:  rec,
		Logger:    log,
		Export:    export,
		ExportDir: cfg.Export.Dir,
	}
}

// ProvideDropper wires the column dropper (for Wire).
func ProvideDropper(cfg *Config, archiver *backup.Archiver, rec journal.Recorder, log *slog.Logger) *dropcols.Dropper {
	return &dropcols.Dropper{
		Columns:  cfg.Drop.Columns,
		Backup:   archiver,
		Recorder: rec,
		Logger:   log,
	}
}
