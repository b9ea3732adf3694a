package automaton

import (
	"github.com/cockroachdb/errors"
)

// Automata Factory for small canned tables.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a table with the empty language: one rejecting row with every transition absent.
func (*Automata) MakeEmpty(alphabetSize int) *Table {
	return newTable(alphabetSize, []*Row{NewRow(0, false, alphabetSize)})
}

// MakeEmptyString
// Returns a table that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabetSize int) *Table {
	return newTable(alphabetSize, []*Row{NewRow(0, true, alphabetSize)})
}

// MakeAnyString
// Returns a table that accepts all strings over the alphabet.
func (*Automata) MakeAnyString(alphabetSize int) *Table {
	r := NewRow(0, true, alphabetSize)
	for c := range r.Trans {
		r.Trans[c] = 0
	}
	return newTable(alphabetSize, []*Row{r})
}

// MakeString
// Returns a table that accepts exactly s.
func (*Automata) MakeString(cm *CharacterMap, s string) (*Table, error) {
	rows := []*Row{NewRow(0, false, cm.Len())}
	for _, ch := range s {
		c, ok := cm.Index(ch)
		if !ok {
			return nil, errors.Newf("symbol %q is not in the alphabet %s", ch, cm)
		}
		next := NewRow(len(rows), false, cm.Len())
		rows[len(rows)-1].Trans[c] = next.ID
		rows = append(rows, next)
	}
	rows[len(rows)-1].Accept = true
	return newTable(cm.Len(), rows), nil
}
