package automaton

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformedTable marks tables that break the row invariants: every row carries one slot per alphabet
// symbol, row i has id i, and every transition names an existing row or is absent.
var ErrMalformedTable = errors.New("malformed DFA table")

// Table A DFA as an ordered list of rows. Row 0 is the start state. The table owns its rows; Optimize
// edits them in place.
type Table struct {
	alphabetSize int
	rows         []*Row
	assign       *Assignment
}

// NewTable Takes ownership of rows after checking them against the table invariants.
func NewTable(alphabetSize int, rows []*Row) (*Table, error) {
	if alphabetSize < 0 {
		return nil, errors.Mark(errors.Newf("negative alphabet size %d", alphabetSize), ErrMalformedTable)
	}
	t := newTable(alphabetSize, rows)
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func newTable(alphabetSize int, rows []*Row) *Table {
	return &Table{
		alphabetSize: alphabetSize,
		rows:         rows,
		assign:       newAssignment(len(rows)),
	}
}

func (t *Table) validate() error {
	for i, r := range t.rows {
		if r == nil {
			return errors.Mark(errors.Newf("row %d is missing", i), ErrMalformedTable)
		}
		if r.ID != i {
			return errors.Mark(errors.Newf("row %d has id %d", i, r.ID), ErrMalformedTable)
		}
		if len(r.Trans) != t.alphabetSize {
			return errors.Mark(
				errors.Newf("row %d has %d transitions, want %d", i, len(r.Trans), t.alphabetSize),
				ErrMalformedTable)
		}
		for s, d := range r.Trans {
			if d != NoTransition && (d < 0 || d >= len(t.rows)) {
				return errors.Mark(
					errors.Newf("row %d symbol %d points at unknown row %d", i, s, d),
					ErrMalformedTable)
			}
		}
	}
	return nil
}

// AlphabetSize Length of every row's transition vector.
func (t *Table) AlphabetSize() int {
	return t.alphabetSize
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

// Rows The rows in id order. The slice is shared with the table.
func (t *Table) Rows() []*Row {
	return t.rows
}

// IsAccept Returns true if state is an accept state.
func (t *Table) IsAccept(state int) bool {
	return t.rows[state].Accept
}

// Step Returns the target of state on symbol, or NoTransition.
func (t *Table) Step(state, symbol int) int {
	return t.rows[state].Step(symbol)
}

// Resolve Maps a state id of the table as it was constructed to the row that represents it now, or
// NoTransition if the state was removed.
func (t *Table) Resolve(id int) int {
	return t.assign.Resolve(id)
}

// Clone Deep copy with a fresh assignment: ids of the clone resolve to themselves.
func (t *Table) Clone() *Table {
	rows := make([]*Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.Clone()
	}
	return newTable(t.alphabetSize, rows)
}

// String One table line per row.
func (t *Table) String() string {
	var b strings.Builder
	for _, r := range t.rows {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// mergeRows Folds remove into keep. Transitions into remove are redirected at commit.
func (t *Table) mergeRows(keep, remove int) {
	t.assign.begin(len(t.rows))
	t.rows[keep].Accept = t.rows[keep].Accept || t.rows[remove].Accept
	t.assign.merge(keep, remove)
}

// removeRow Drops id. Transitions into it become absent at commit.
func (t *Table) removeRow(id int) {
	t.assign.begin(len(t.rows))
	t.assign.remove(id)
}

// commit Applies the pending batch: surviving rows are renumbered densely in order and every transition
// is rewritten through the same mapping, so no stale id survives.
func (t *Table) commit() {
	mapping, survivors := t.assign.commit()
	if mapping == nil {
		return
	}

	rows := make([]*Row, len(survivors))
	for i, old := range survivors {
		r := t.rows[old]
		r.ID = i
		for s, d := range r.Trans {
			if d != NoTransition {
				r.Trans[s] = mapping[d]
			}
		}
		rows[i] = r
	}
	t.rows = rows
}
