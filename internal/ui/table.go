package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows in aligned columns under a header line.
type Table struct {
	out     io.Writer
	headers []string
	rows    [][]string
	empty   string
}

// NewTable creates a table with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	return &Table{out: out, headers: headers}
}

// WhenEmpty sets the message printed instead of the table when it has no rows.
func (t *Table) WhenEmpty(msg string) *Table {
	t.empty = msg
	return t
}

// Row appends a row. Missing trailing values render as empty cells.
func (t *Table) Row(values ...string) {
	t.rows = append(t.rows, values)
}

// Flush writes the table.
func (t *Table) Flush() error {
	if len(t.rows) == 0 && t.empty != "" {
		_, err := fmt.Fprintln(t.out, t.empty)
		return err
	}
	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(t.headers, "\t"))
	for _, r := range t.rows {
		cells := make([]string, len(t.headers))
		copy(cells, r)
		_, _ = fmt.Fprintln(tw, strings.TrimRight(strings.Join(cells, "\t"), "\t"))
	}
	return tw.Flush()
}
