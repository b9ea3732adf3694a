package automaton

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
)

// WriteTable Writes t in the table text format, one row per line.
func WriteTable(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for _, r := range t.rows {
		if _, err := bw.WriteString(r.String()); err != nil {
			return errors.Wrap(err, "writing table")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "writing table")
		}
	}
	return errors.Wrap(bw.Flush(), "writing table")
}

// RenderTable Pretty-prints t as a grid with one column per symbol. cm may be nil, in which case the columns
// are headed by symbol index.
func RenderTable(w io.Writer, t *Table, cm *CharacterMap) {
	header := make([]string, 0, t.alphabetSize+2)
	header = append(header, "", "state")
	for c := 0; c < t.alphabetSize; c++ {
		if cm != nil && c < cm.Len() {
			header = append(header, string(cm.Symbol(c)))
		} else {
			header = append(header, strconv.Itoa(c))
		}
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	for _, r := range t.rows {
		line := make([]string, 0, len(header))
		marker := "-"
		if r.Accept {
			marker = "+"
		}
		line = append(line, marker, strconv.Itoa(r.ID))
		for _, d := range r.Trans {
			line = append(line, formatTarget(d))
		}
		tw.Append(line)
	}
	tw.Render()
}
