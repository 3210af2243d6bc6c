package dropcols

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlcv-tools/internal/backup"
	"ohlcv-tools/internal/frame"
	"ohlcv-tools/internal/journal"
	"ohlcv-tools/internal/slogx"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func checksum(t *testing.T, path string) [32]byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return sha256.Sum256(data)
}

func TestRunDropsOnlyPresentColumns(t *testing.T) {
	path := writeTempFile(t, "ts_event,volume,close\n2025-09-17 13:00:00,10,100\n2025-09-17 13:15:00,20,101\n")
	d := &Dropper{Columns: []string{"open", "volume"}, Logger: slogx.Discard()}

	res, err := d.Run(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"volume"}, res.Dropped)
	assert.Equal(t, path, res.Output)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ts_event,close\n2025-09-17 13:00:00,100\n2025-09-17 13:15:00,101\n", string(got))
	assert.Contains(t, res.Summary(), "Dropped columns: volume")
}

func TestRunSeparateOutput(t *testing.T) {
	in := writeTempFile(t, "a,b,c\n1,2,3\n")
	out := filepath.Join(t.TempDir(), "out.csv")
	before := checksum(t, in)

	res, err := (&Dropper{Columns: []string{"c", "a"}, Logger: slogx.Discard()}).Run(in, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, res.Dropped)
	assert.Equal(t, before, checksum(t, in), "input must be left alone")

	f, err := frame.Read(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, f.Columns)
	assert.Equal(t, [][]string{{"2"}}, f.Rows)
}

func TestRunNoMatchLeavesFileUntouched(t *testing.T) {
	path := writeTempFile(t, "ts_event,close\n2025-09-17 13:00:00,100\n")
	before := checksum(t, path)

	_, err := (&Dropper{Columns: []string{"open", "volume"}, Logger: slogx.Discard()}).Run(path, "")
	require.ErrorIs(t, err, ErrNoMatchingColumns)
	assert.Equal(t, before, checksum(t, path))
}

func TestRunMissingInput(t *testing.T) {
	_, err := (&Dropper{Columns: []string{"volume"}, Logger: slogx.Discard()}).Run(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.ErrorIs(t, err, frame.ErrNotFound)
}

func TestRunBackupAndJournal(t *testing.T) {
	content := "ts_event,symbol,close\n2025-09-17 13:00:00,ESZ5,100\n"
	path := writeTempFile(t, content)
	dir := t.TempDir()

	rec, err := journal.NewSQLiteRecorder(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	defer rec.Close()

	d := &Dropper{
		Columns:  []string{"symbol"},
		Backup:   backup.New(filepath.Join(dir, "backups")),
		Recorder: rec,
		Logger:   slogx.Discard(),
	}
	res, err := d.Run(path, "")
	require.NoError(t, err)
	require.NotEmpty(t, res.Backup)

	restored := filepath.Join(dir, "restored.csv")
	require.NoError(t, backup.Restore(res.Backup, restored))
	data, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
