// Package prompt collects operator answers, either from a terminal or from a fixed set.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Field names one question asked by the price adjuster.
type Field string

const (
	FieldStart      Field = "start"
	FieldEnd        Field = "end"
	FieldColumns    Field = "columns"
	FieldAdjustment Field = "adjustment"
)

// Prompter returns the answer for one field.
type Prompter interface {
	Prompt(field Field) (string, error)
}

type question struct {
	guidance []string
	label    string
}

var questions = map[Field]question{
	FieldStart: {
		guidance: []string{
			"Enter the start date and time (format: YYYY-MM-DD HH:MM:SS, e.g. 2025-09-17 14:00:00)",
			"Leave blank to start at the first row's timestamp (oldest)",
		},
		label: "Start date and time: ",
	},
	FieldEnd: {
		guidance: []string{
			"Enter the end date and time (format: YYYY-MM-DD HH:MM:SS, e.g. 2025-09-17 16:00:00)",
			"Leave blank to end at the last row's timestamp (most recent)",
		},
		label: "End date and time: ",
	},
	FieldColumns: {
		guidance: []string{
			"Select columns to modify (comma-separated: open, high, low, close, or 'all' for every price column):",
		},
		label: "Columns: ",
	},
	FieldAdjustment: {
		guidance: []string{
			"Enter the adjustment value (e.g. +60 or -40):",
		},
		label: "Adjustment value: ",
	},
}

// Console asks on out and reads one line per answer from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole builds a Console. Typically NewConsole(os.Stdin, os.Stdout).
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt prints the guidance for field and returns the trimmed line typed back.
// End of input on an empty line counts as a blank answer.
func (c *Console) Prompt(field Field) (string, error) {
	q, ok := questions[field]
	if !ok {
		q = question{label: string(field) + ": "}
	}
	for _, line := range q.guidance {
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprint(c.out, q.label)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", field, err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
	}
	return strings.TrimSpace(line), nil
}

// Answers serves pre-set answers, asking Fallback for anything not in Values.
type Answers struct {
	Values   map[Field]string
	Fallback Prompter
}

// Prompt implements Prompter.
func (a Answers) Prompt(field Field) (string, error) {
	if v, ok := a.Values[field]; ok {
		return strings.TrimSpace(v), nil
	}
	if a.Fallback != nil {
		return a.Fallback.Prompt(field)
	}
	return "", fmt.Errorf("no answer for %s", field)
}
