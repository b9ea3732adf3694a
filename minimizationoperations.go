package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/btree"
	"github.com/sirupsen/logrus"
)

// Optimize Minimizes t in place. Each pass removes the states that cannot reach an accept state (and those
// the start state cannot reach), refines the accept/reject partition until it is stable and merges every
// class of equivalent states into its smallest member. Passes repeat until one changes nothing. The
// result has dense ids in [0, NumRows()) and the start state at 0.
//
// If no accept state is reachable from the start state the table collapses to a single rejecting row 0
// with every transition absent.
func (t *Table) Optimize(opts ...Option) {
	o := newOptions(opts...)
	if len(t.rows) == 0 {
		return
	}

	for pass := 1; ; pass++ {
		removed := t.removeDeadStates()
		merged := t.mergeEquivalent(t.refine())

		o.logger.WithFields(logrus.Fields{
			"pass":    pass,
			"removed": removed,
			"merged":  merged,
			"rows":    len(t.rows),
		}).Debug("optimize pass")

		if removed == 0 && merged == 0 {
			return
		}
	}
}

// removeDeadStates Deletes every row from which no accept state is reachable, and every row the start
// state cannot reach, and returns how many were removed.
func (t *Table) removeDeadStates() int {
	n := len(t.rows)
	reachable := t.reachableFromStart()
	var dead []int
	for s := 0; s < n; s++ {
		if !reachable.Test(uint(s)) || !t.reachesAccept(s, bitset.New(uint(n))) {
			dead = append(dead, s)
		}
	}
	if len(dead) == 0 {
		return 0
	}
	if dead[0] == 0 {
		return t.collapseEmpty()
	}

	for _, s := range dead {
		t.removeRow(s)
	}
	t.commit()
	return len(dead)
}

// collapseEmpty Reduces a table whose language is empty to its rejecting start row with no transitions.
func (t *Table) collapseEmpty() int {
	changed := len(t.rows) - 1
	for s := 1; s < len(t.rows); s++ {
		t.removeRow(s)
	}
	t.commit()

	start := t.rows[0]
	for c, d := range start.Trans {
		if d != NoTransition {
			start.Trans[c] = NoTransition
			changed = max(changed, 1)
		}
	}
	return changed
}

type refineFrame struct {
	states []int
	symbol int
}

// bucket Members of a frame whose transition on the frame's symbol lands in class target.
type bucket struct {
	target  int
	members []int
}

func (b *bucket) Less(than btree.Item) bool {
	return b.target < than.(*bucket).target
}

// refine Returns the classes of equivalent states that have more than one member, each sorted, ordered by
// their smallest member.
func (t *Table) refine() [][]int {
	var accepting, rejecting []int
	for i, r := range t.rows {
		if r.Accept {
			accepting = append(accepting, i)
		} else {
			rejecting = append(rejecting, i)
		}
	}

	partition := make([][]int, 0, 2)
	if len(rejecting) > 0 {
		partition = append(partition, rejecting)
	}
	if len(accepting) > 0 {
		partition = append(partition, accepting)
	}

	class := make([]int, len(t.rows))
	for {
		for id, members := range partition {
			for _, s := range members {
				class[s] = id
			}
		}
		next := t.refinePass(partition, class)
		stable := len(next) == len(partition)
		partition = next
		if stable {
			break
		}
	}

	var candidates [][]int
	for _, members := range partition {
		if len(members) > 1 {
			slices.Sort(members)
			candidates = append(candidates, members)
		}
	}
	slices.SortFunc(candidates, func(a, b []int) int {
		return a[0] - b[0]
	})
	return candidates
}

// refinePass Splits every class of partition, depth first over the alphabet, by the class its members move
// to. An absent transition is a class of its own.
func (t *Table) refinePass(partition [][]int, class []int) [][]int {
	next := make([][]int, 0, len(partition))
	stack := make([]refineFrame, 0, len(partition))
	for _, members := range partition {
		stack = append(stack, refineFrame{states: members})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.states) == 1 || f.symbol == t.alphabetSize {
			next = append(next, f.states)
			continue
		}

		buckets := btree.New(2)
		for _, s := range f.states {
			target := NoTransition
			if d := t.rows[s].Trans[f.symbol]; d != NoTransition {
				target = class[d]
			}
			probe := &bucket{target: target}
			if item := buckets.Get(probe); item != nil {
				b := item.(*bucket)
				b.members = append(b.members, s)
			} else {
				probe.members = []int{s}
				buckets.ReplaceOrInsert(probe)
			}
		}

		buckets.Ascend(func(item btree.Item) bool {
			stack = append(stack, refineFrame{states: item.(*bucket).members, symbol: f.symbol + 1})
			return true
		})
	}
	return next
}

// mergeEquivalent Merges every candidate class into its smallest member and returns the number of rows
// merged away.
func (t *Table) mergeEquivalent(candidates [][]int) int {
	merged := 0
	for _, members := range candidates {
		keep := members[0]
		for _, remove := range members[1:] {
			t.mergeRows(keep, remove)
			merged++
		}
	}
	if merged > 0 {
		t.commit()
	}
	return merged
}
