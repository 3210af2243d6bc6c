package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRecorder(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	r, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)

	start := time.Date(2025, 9, 17, 13, 0, 0, 0, time.UTC)
	runID := NewRunID()
	require.NoError(t, r.RecordAdjustment(&AdjustmentEvent{
		RunID:      runID,
		Path:       "bars.csv",
		Start:      start,
		End:        start.Add(time.Hour),
		Columns:    []string{"open", "close"},
		Adjustment: "60",
		Rows:       5,
	}))
	require.NoError(t, r.RecordDrop(&DropEvent{
		RunID:   NewRunID(),
		Input:   "bars.csv",
		Output:  "bars.csv",
		Dropped: []string{"symbol"},
	}))

	var columns, adj string
	var rows int
	require.NoError(t, r.db.QueryRow(
		`SELECT columns, adjustment, row_count FROM adjustments WHERE run_id = ?`, runID,
	).Scan(&columns, &adj, &rows))
	assert.Equal(t, "open,close", columns)
	assert.Equal(t, "60", adj)
	assert.Equal(t, 5, rows)

	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM column_drops`).Scan(&n))
	assert.Equal(t, 1, n)
	require.NoError(t, r.Close())

	// Reopening runs the migration again without error and keeps history.
	r2, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)
	defer r2.Close()
	require.NoError(t, r2.db.QueryRow(`SELECT COUNT(*) FROM adjustments`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordAdjustment(&AdjustmentEvent{}))
	assert.NoError(t, r.RecordDrop(&DropEvent{}))
	assert.NoError(t, r.Close())
}

func TestNewRunIDUnique(t *testing.T) {
	assert.NotEqual(t, NewRunID(), NewRunID())
	assert.Len(t, NewRunID(), 36)
}
