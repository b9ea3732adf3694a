package automaton

import (
	"strconv"
	"strings"
)

// NoTransition marks an absent transition, and a state that no longer exists.
const NoTransition = -1

// Row One DFA state: its id, whether it accepts, and one target per alphabet symbol.
type Row struct {
	ID     int
	Accept bool
	Trans  []int
}

// NewRow Returns a row with every transition absent.
func NewRow(id int, accept bool, alphabetSize int) *Row {
	trans := make([]int, alphabetSize)
	for i := range trans {
		trans[i] = NoTransition
	}
	return &Row{ID: id, Accept: accept, Trans: trans}
}

// Step Returns the target for symbol, or NoTransition.
func (r *Row) Step(symbol int) int {
	return r.Trans[symbol]
}

func (r *Row) Clone() *Row {
	trans := make([]int, len(r.Trans))
	copy(trans, r.Trans)
	return &Row{ID: r.ID, Accept: r.Accept, Trans: trans}
}

// String Formats the row as a table line: "<+|-> <id> <t0> ... <tk-1>", E for absent.
func (r *Row) String() string {
	var b strings.Builder
	if r.Accept {
		b.WriteByte('+')
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(r.ID))
	for _, t := range r.Trans {
		b.WriteByte(' ')
		b.WriteString(formatTarget(t))
	}
	return b.String()
}

func formatTarget(t int) string {
	if t == NoTransition {
		return "E"
	}
	return strconv.Itoa(t)
}
