// Package frame holds a CSV file in memory as a header-ordered table of string cells.
// Untouched cells are written back with their original text.
package frame

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Read when the input file does not exist.
var ErrNotFound = errors.New("file not found")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Frame is a fully loaded CSV table.
type Frame struct {
	Columns []string
	Rows    [][]string

	bom  bool // input started with a UTF-8 BOM
	crlf bool // input used \r\n line endings
}

// New builds a frame from a header and rows. Rows are used as is.
func New(columns []string, rows [][]string) *Frame {
	return &Frame{Columns: columns, Rows: rows}
}

// Read loads the CSV at path. A missing file yields an error wrapping ErrNotFound.
func Read(path string) (*Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Decode parses a CSV stream with a header row. Short rows are padded with empty cells;
// rows wider than the header are rejected.
func Decode(r io.Reader) (*Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) (*Frame, error) {
	f := &Frame{}
	if bytes.HasPrefix(data, utf8BOM) {
		f.bom = true
		data = data[len(utf8BOM):]
	}
	// The first line break decides the line ending of the whole file.
	if i := bytes.IndexByte(data, '\n'); i > 0 && data[i-1] == '\r' {
		f.crlf = true
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty CSV: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	f.Columns = header

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(f.Rows)+1, err)
		}
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", len(f.Rows)+1, len(rec), len(header))
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		f.Rows = append(f.Rows, rec)
	}
	return f, nil
}

// Encode writes the frame as CSV, header first, without an index column. A field is
// quoted only when it holds a comma, a double quote or a line break, so cells with
// leading or trailing spaces come back exactly as they were read.
func (f *Frame) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if f.bom {
		if _, err := bw.Write(utf8BOM); err != nil {
			return err
		}
	}
	if err := f.writeRecord(bw, f.Columns); err != nil {
		return err
	}
	for _, row := range f.Rows {
		if err := f.writeRecord(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (f *Frame) writeRecord(w *bufio.Writer, rec []string) error {
	for i, field := range rec {
		if i > 0 {
			w.WriteByte(',')
		}
		if !strings.ContainsAny(field, ",\"\r\n") {
			w.WriteString(field)
			continue
		}
		field = strings.ReplaceAll(field, `"`, `""`)
		if f.crlf {
			// csv.Reader folds \r\n inside quoted fields to \n.
			field = strings.ReplaceAll(field, "\n", "\r\n")
		}
		w.WriteByte('"')
		w.WriteString(field)
		w.WriteByte('"')
	}
	eol := "\n"
	if f.crlf {
		eol = "\r\n"
	}
	_, err := w.WriteString(eol)
	return err
}

// Write replaces path with the encoded frame. The data goes to a temp file in the same
// directory first, so a failed write never leaves a truncated target behind.
func (f *Frame) Write(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	bw := bufio.NewWriter(tmp)
	if err := f.Encode(bw); err != nil {
		tmp.Close()
		return fmt.Errorf("encode CSV: %w", err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	mode := fs.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Len returns the number of data rows.
func (f *Frame) Len() int { return len(f.Rows) }

// Index returns the position of the first column called name, or -1.
func (f *Frame) Index(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has reports whether the frame has a column called name.
func (f *Frame) Has(name string) bool { return f.Index(name) >= 0 }

// Missing returns the names not present in the header, in the given order.
func (f *Frame) Missing(names ...string) []string {
	var out []string
	for _, n := range names {
		if !f.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Column returns the cells of the named column. It panics if the column does not exist.
func (f *Frame) Column(name string) []string {
	idx := f.Index(name)
	if idx < 0 {
		panic(fmt.Sprintf("frame: no column %q", name))
	}
	out := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row[idx]
	}
	return out
}

// Drop removes every column whose name is in names and returns the names actually
// dropped, in the order given, without duplicates.
func (f *Frame) Drop(names ...string) []string {
	var dropped []string
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if !seen[n] && f.Has(n) {
			dropped = append(dropped, n)
		}
		seen[n] = true
	}
	if len(dropped) == 0 {
		return nil
	}

	remove := make(map[string]bool, len(dropped))
	for _, n := range dropped {
		remove[n] = true
	}
	keep := make([]int, 0, len(f.Columns))
	for i, c := range f.Columns {
		if !remove[c] {
			keep = append(keep, i)
		}
	}

	f.Columns = pick(f.Columns, keep)
	for i, row := range f.Rows {
		f.Rows[i] = pick(row, keep)
	}
	return dropped
}

func pick(src []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}
