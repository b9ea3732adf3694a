package automaton

// Assignment The row indirection of a Table. Structural edits (merging one row into another, removing a
// row) are recorded against the ids of the current rows and applied together by commit, which assigns
// dense ids in row order. Between batches, Resolve maps the ids the table was constructed with to the
// row that currently stands for them.
//
// Resolve must not be called while a batch is pending.
type Assignment struct {
	// id at construction -> current row id, or NoTransition once removed.
	logical []int

	// Current row -> itself, the row it was merged into, or NoTransition. Only meaningful while pending.
	forward []int
	pending bool
}

func newAssignment(numRows int) *Assignment {
	a := &Assignment{logical: make([]int, numRows)}
	for i := range a.logical {
		a.logical[i] = i
	}
	return a
}

// Resolve Returns the current row for an id the table was constructed with, or NoTransition when that
// state was removed as dead or id was never a row.
func (a *Assignment) Resolve(id int) int {
	if a.pending {
		panic("automaton: Resolve called during a pending batch")
	}
	if id < 0 || id >= len(a.logical) {
		return NoTransition
	}
	return a.logical[id]
}

// begin Starts a batch over numRows current rows. merge and remove are only valid inside a batch.
func (a *Assignment) begin(numRows int) {
	if a.pending {
		return
	}
	a.forward = make([]int, numRows)
	for i := range a.forward {
		a.forward[i] = i
	}
	a.pending = true
}

// root follows merge chains to the surviving row. The chain length is bounded by the row count so a
// corrupted forward table cannot loop.
func (a *Assignment) root(id int) int {
	for steps := 0; steps <= len(a.forward); steps++ {
		next := a.forward[id]
		if next == id || next == NoTransition {
			return next
		}
		id = next
	}
	panic("automaton: cyclic row assignment")
}

// merge Records that remove is now represented by keep.
func (a *Assignment) merge(keep, remove int) {
	rk, rr := a.root(keep), a.root(remove)
	if rk == NoTransition || rr == NoTransition || rk == rr {
		return
	}
	a.forward[rr] = rk
}

// remove Records that id no longer exists; transitions into it become absent.
func (a *Assignment) remove(id int) {
	if r := a.root(id); r != NoTransition {
		a.forward[r] = NoTransition
	}
}

// commit Ends the batch. mapping[old] is the new dense id standing for old row (NoTransition if removed),
// survivors lists the old ids of the rows that remain, in their new order.
func (a *Assignment) commit() (mapping []int, survivors []int) {
	if !a.pending {
		return nil, nil
	}

	n := len(a.forward)
	dense := make([]int, n)
	for i := 0; i < n; i++ {
		if a.forward[i] == i {
			dense[i] = len(survivors)
			survivors = append(survivors, i)
		} else {
			dense[i] = NoTransition
		}
	}

	mapping = make([]int, n)
	for i := 0; i < n; i++ {
		if r := a.root(i); r == NoTransition {
			mapping[i] = NoTransition
		} else {
			mapping[i] = dense[r]
		}
	}

	for i, cur := range a.logical {
		if cur != NoTransition {
			a.logical[i] = mapping[cur]
		}
	}

	a.forward = nil
	a.pending = false
	return mapping, survivors
}

// Pending Reports whether edits are recorded but not yet committed.
func (a *Assignment) Pending() bool {
	return a.pending
}
