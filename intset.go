package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable, sorted set of NFA states. state is the DFA row it was assigned to, or -1 while it
// is only used as a lookup key.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func (f *FrozenIntSet) Hash() uint64 {
	if f == nil {
		return 0
	}
	return f.hashCode
}

// Equals Two sets are equal when they hold the same states; the assigned row is not part of the key.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenIntSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

// NewFrozenIntSet values must already be sorted and free of duplicates.
func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

// FreezeBitSet Snapshots the members of b into a FrozenIntSet.
func FreezeBitSet(b *bitset.BitSet, state int) *FrozenIntSet {
	values := make([]int, 0, b.Count())
	hashCode := uint64(b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		values = append(values, int(i))
		hashCode += uint64(uint32(mix(int(i))))
	}
	return NewFrozenIntSet(values, hashCode, state)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State The DFA row this set was assigned to.
func (f *FrozenIntSet) State() int {
	return f.state
}

// BitSet Expands the set back into a bitset sized for numStates states.
func (f *FrozenIntSet) BitSet(numStates int) *bitset.BitSet {
	b := bitset.New(uint(numStates))
	for _, v := range f.values {
		b.Set(uint(v))
	}
	return b
}
