// Package journal keeps a history of edits applied to OHLCV files.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// AdjustmentEvent describes one successful price adjustment.
type AdjustmentEvent struct {
	RunID      string
	Path       string
	Start      time.Time
	End        time.Time
	Columns    []string
	Adjustment string
	Rows       int
	Backup     string // empty when no backup was taken
}

// DropEvent describes one successful column drop.
type DropEvent struct {
	RunID   string
	Input   string
	Output  string
	Dropped []string
	Backup  string
}

// Recorder persists edit history.
type Recorder interface {
	RecordAdjustment(evt *AdjustmentEvent) error
	RecordDrop(evt *DropEvent) error
	Close() error
}

// NewRunID returns an identifier for one tool invocation.
func NewRunID() string {
	return uuid.NewString()
}
