// Package backup keeps compressed copies of files before they are overwritten.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Archiver snapshots files into Dir. A zero Dir disables snapshots.
type Archiver struct {
	Dir string
	now func() time.Time
}

// New returns an Archiver writing into dir.
func New(dir string) *Archiver {
	return &Archiver{Dir: dir, now: time.Now}
}

// Enabled reports whether snapshots are taken.
func (a *Archiver) Enabled() bool {
	return a != nil && a.Dir != ""
}

// Snapshot compresses path into Dir as <name>.<UTC stamp>.<id>.zst and returns the
// archive path. It returns "" without error when the archiver is disabled.
func (a *Archiver) Snapshot(path string) (string, error) {
	if !a.Enabled() {
		return "", nil
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	now := time.Now
	if a.now != nil {
		now = a.now
	}
	name := fmt.Sprintf("%s.%s.%s.zst",
		filepath.Base(path), now().UTC().Format("20060102T150405"), uuid.NewString()[:8])
	dst := filepath.Join(a.Dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	enc, err := zstd.NewWriter(out)
	if err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := io.Copy(enc, src); err != nil {
		enc.Close()
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("compress %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("finish %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close %s: %w", dst, err)
	}
	return dst, nil
}

// Restore decompresses archive into dst, replacing it.
func Restore(archive, dst string) error {
	in, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("open %s: %w", archive, err)
	}
	defer in.Close()

	dec, err := zstd.NewReader(in)
	if err != nil {
		return fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, dec); err != nil {
		out.Close()
		return fmt.Errorf("decompress %s: %w", archive, err)
	}
	return out.Close()
}
