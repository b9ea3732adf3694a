package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignment(t *testing.T) {
	a := newAssignment(6)
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, a.Resolve(i))
	}
	assert.Equal(t, NoTransition, a.Resolve(6))
	assert.Equal(t, NoTransition, a.Resolve(-1))

	a.begin(6)
	assert.True(t, a.Pending())
	assert.Panics(t, func() { a.Resolve(0) })

	a.merge(1, 3)
	a.merge(3, 5) // 3 already stands for 1
	a.remove(2)
	mapping, survivors := a.commit()

	assert.False(t, a.Pending())
	assert.Equal(t, []int{0, 1, 2}, []int{mapping[0], mapping[1], mapping[4]})
	assert.Equal(t, []int{0, 1, NoTransition, 1, 2, 1}, mapping)
	assert.Equal(t, []int{0, 1, 4}, survivors)

	assert.Equal(t, 1, a.Resolve(5))
	assert.Equal(t, NoTransition, a.Resolve(2))
	assert.Equal(t, 2, a.Resolve(4))

	// A second batch composes with the first.
	a.begin(3)
	a.merge(0, 2)
	mapping, survivors = a.commit()
	assert.Equal(t, []int{0, 1, 0}, mapping)
	assert.Equal(t, []int{0, 1}, survivors)
	assert.Equal(t, 0, a.Resolve(4))
	assert.Equal(t, 1, a.Resolve(3))
	assert.Equal(t, NoTransition, a.Resolve(2))
}

func TestAssignmentMergeIntoRemoved(t *testing.T) {
	a := newAssignment(3)
	a.begin(3)
	a.remove(1)
	a.merge(1, 2) // no-op: 1 is gone
	mapping, survivors := a.commit()
	assert.Equal(t, []int{0, NoTransition, 1}, mapping)
	assert.Equal(t, []int{0, 2}, survivors)
}

func TestAssignmentCommitWithoutBatch(t *testing.T) {
	a := newAssignment(2)
	mapping, survivors := a.commit()
	assert.Nil(t, mapping)
	assert.Nil(t, survivors)
}

func TestTableCommitRewritesTransitions(t *testing.T) {
	tbl := mustParseTable(t, "- 0 1 2 3\n- 1 2 3 0\n+ 2 3 3 3\n+ 3 3 1 2\n")

	tbl.mergeRows(2, 3)
	tbl.removeRow(1)
	require.True(t, tbl.assign.Pending())
	tbl.commit()

	assert.Equal(t, "- 0 E 1 1\n+ 1 1 1 1\n", tbl.String())
	assert.Equal(t, 1, tbl.Resolve(3))
	assert.Equal(t, NoTransition, tbl.Resolve(1))
}
