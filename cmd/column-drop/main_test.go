package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlcv-tools/internal/app"
)

const fixture = `ts_event,rtype,publisher_id,instrument_id,open,high,low,close,volume,symbol
2024-01-02 09:30:00-05:00,33,1,42,100,101,99,100.5,1200,ES
`

func setup(t *testing.T) (cfg, csvPath string) {
	t.Helper()
	dir := t.TempDir()
	csvPath = filepath.Join(dir, "bars.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(fixture), 0644))
	return filepath.Join(dir, "missing.yaml"), csvPath
}

func TestRunDropsDefaultColumnsInPlace(t *testing.T) {
	cfg, path := setup(t)
	var out bytes.Buffer

	code := run([]string{"-config", cfg, path}, &out)

	require.Equal(t, app.ExitOK, code, out.String())
	assert.Contains(t, out.String(), "Dropped columns: rtype, publisher_id, instrument_id, symbol")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ts_event,open,high,low,close,volume\n2024-01-02 09:30:00-05:00,100,101,99,100.5,1200\n", string(data))
}

func TestRunWritesToOutputFlag(t *testing.T) {
	cfg, path := setup(t)
	dst := filepath.Join(filepath.Dir(path), "slim.csv")
	var out bytes.Buffer

	code := run([]string{"-config", cfg, "-columns", "symbol, volume", "-o", dst, path}, &out)

	require.Equal(t, app.ExitOK, code, out.String())
	assert.Contains(t, out.String(), "Saved to "+dst)
	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixture, string(orig))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ts_event,rtype,publisher_id,instrument_id,open,high,low,close\n2024-01-02 09:30:00-05:00,33,1,42,100,101,99,100.5\n", string(data))
}

func TestRunExitCodes(t *testing.T) {
	cfg, path := setup(t)

	var out bytes.Buffer
	assert.Equal(t, app.ExitNotFound, run([]string{"-config", cfg, path + ".missing"}, &out))
	assert.Contains(t, out.String(), "Error: ")

	out.Reset()
	assert.Equal(t, app.ExitNoMatch, run([]string{"-config", cfg, "-columns", "foo,bar", path}, &out))
	assert.Contains(t, out.String(), "Error: no matching columns")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixture, string(data))
}
