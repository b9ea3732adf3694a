package automaton

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"
)

// Determinize Converts n into an equivalent DFA by subset construction. Row 0 stands for the epsilon
// closure of the initial state; every other row is created the first time its closed state-set is reached,
// so the result has no unreachable rows. A step that leads to no NFA state at all is left absent. The
// result may still have rows that cannot reach an accept state; Optimize removes those.
func Determinize(n *NFA, opts ...Option) *Table {
	o := newOptions(opts...)
	alphabetSize := n.Alphabet().Len()

	start := bitset.New(uint(n.NumStates()))
	start.Set(0)
	closure := n.EpsilonClosure(start)
	initialSet := FreezeBitSet(closure, 0)

	rows := []*Row{NewRow(0, n.intersectsAccept(closure), alphabetSize)}
	newState := NewHashMap[int](WithCapacity(16))
	newState.Set(initialSet, 0)
	workList := []*FrozenIntSet{initialSet}

	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		states := s.BitSet(n.NumStates())

		for c := 0; c < alphabetSize; c++ {
			closure := n.EpsilonClosure(n.Step(states, c))
			if closure.None() {
				continue
			}
			key := FreezeBitSet(closure, len(rows))

			dest, ok := newState.Get(key)
			if !ok {
				dest = len(rows)
				rows = append(rows, NewRow(dest, n.intersectsAccept(closure), alphabetSize))
				newState.Set(key, dest)
				workList = append(workList, key)

				o.logger.WithFields(logrus.Fields{
					"row":    dest,
					"states": key.GetArray(),
				}).Debug("discovered DFA state")
			}
			rows[s.State()].Trans[c] = dest
		}
	}

	o.logger.WithFields(logrus.Fields{
		"nfaStates": n.NumStates(),
		"rows":      len(rows),
	}).Debug("subset construction done")
	return newTable(alphabetSize, rows)
}

// IsEmpty Returns true if t accepts no strings.
func IsEmpty(t *Table) bool {
	if t.NumRows() == 0 {
		return true
	}
	return !t.reachesAccept(0, bitset.New(uint(t.NumRows())))
}

// reachesAccept Returns true if some path from state, including the empty one, ends in an accept state. seen
// is owned by this call; a state already in it is not expanded again, so cycles terminate.
func (t *Table) reachesAccept(state int, seen *bitset.BitSet) bool {
	workList := []int{state}
	seen.Set(uint(state))

	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		if t.rows[s].Accept {
			return true
		}
		for _, d := range t.rows[s].Trans {
			if d != NoTransition && !seen.Test(uint(d)) {
				seen.Set(uint(d))
				workList = append(workList, d)
			}
		}
	}
	return false
}

// reachableFromStart Returns the set of rows reachable from row 0.
func (t *Table) reachableFromStart() *bitset.BitSet {
	live := bitset.New(uint(t.NumRows()))
	if t.NumRows() == 0 {
		return live
	}
	live.Set(0)
	workList := []int{0}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, d := range t.rows[s].Trans {
			if d != NoTransition && !live.Test(uint(d)) {
				live.Set(uint(d))
				workList = append(workList, d)
			}
		}
	}
	return live
}
