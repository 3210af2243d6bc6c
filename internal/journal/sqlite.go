package journal

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists edit history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Debug("journal opened", "path", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS adjustments (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			path        TEXT NOT NULL,
			window_from TEXT,
			window_to   TEXT,
			columns     TEXT,
			adjustment  TEXT,
			row_count   INTEGER,
			backup      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_adjustments_path ON adjustments(path)`,

		`CREATE TABLE IF NOT EXISTS column_drops (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			input     TEXT NOT NULL,
			output    TEXT NOT NULL,
			dropped   TEXT,
			backup    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_column_drops_output ON column_drops(output)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAdjustment(evt *AdjustmentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO adjustments
		(run_id, timestamp, path, window_from, window_to, columns, adjustment, row_count, backup)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		evt.RunID, time.Now().Unix(), evt.Path,
		evt.Start.Format(time.RFC3339Nano), evt.End.Format(time.RFC3339Nano),
		strings.Join(evt.Columns, ","), evt.Adjustment, evt.Rows, evt.Backup,
	)
	return err
}

func (r *SQLiteRecorder) RecordDrop(evt *DropEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO column_drops
		(run_id, timestamp, input, output, dropped, backup)
		VALUES (?,?,?,?,?,?)`,
		evt.RunID, time.Now().Unix(), evt.Input, evt.Output,
		strings.Join(evt.Dropped, ","), evt.Backup,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
