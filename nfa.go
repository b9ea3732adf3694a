package automaton

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// NFA A nondeterministic automaton with epsilon moves. State 0 is the initial state. An NFA is immutable
// once NFABuilder.Finish returns it.
type NFA struct {
	numStates int
	epsilon   rune
	alphabet  *CharacterMap

	// epsilons[s] holds the epsilon targets of s, delta[s][c] the targets of s on symbol c.
	epsilons []*bitset.BitSet
	delta    [][]*bitset.BitSet
	accept   *bitset.BitSet
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return n.numStates
}

// Alphabet The DFA alphabet: every symbol except epsilon.
func (n *NFA) Alphabet() *CharacterMap {
	return n.alphabet
}

func (n *NFA) Epsilon() rune {
	return n.epsilon
}

func (n *NFA) IsAccept(state int) bool {
	return n.accept.Test(uint(state))
}

// EpsilonClosure Returns the smallest superset of states closed under epsilon moves. The closure doubles as
// the seen-set: a state is expanded only when it is first added, so epsilon cycles terminate.
func (n *NFA) EpsilonClosure(states *bitset.BitSet) *bitset.BitSet {
	closure := bitset.New(uint(n.numStates))
	closure.InPlaceUnion(states)

	workList := make([]uint, 0, states.Count())
	for s, ok := states.NextSet(0); ok; s, ok = states.NextSet(s + 1) {
		workList = append(workList, s)
	}

	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		targets := n.epsilons[s]
		for d, ok := targets.NextSet(0); ok; d, ok = targets.NextSet(d + 1) {
			if !closure.Test(d) {
				closure.Set(d)
				workList = append(workList, d)
			}
		}
	}
	return closure
}

// Step Returns the union of the targets on symbol of every state in states. The result is not closed.
func (n *NFA) Step(states *bitset.BitSet, symbol int) *bitset.BitSet {
	next := bitset.New(uint(n.numStates))
	for s, ok := states.NextSet(0); ok; s, ok = states.NextSet(s + 1) {
		next.InPlaceUnion(n.delta[s][symbol])
	}
	return next
}

// intersectsAccept Returns true if any state of states accepts.
func (n *NFA) intersectsAccept(states *bitset.BitSet) bool {
	return states.IntersectionCardinality(n.accept) > 0
}

// NFABuilder Collects the transitions of an NFA. Unlike Table rows, NFA edges may be added in any order.
type NFABuilder struct {
	nfa *NFA
}

// NewNFABuilder symbols is the DFA alphabet in index order; epsilon must not be one of them.
func NewNFABuilder(numStates int, epsilon rune, symbols []rune) (*NFABuilder, error) {
	if numStates < 1 {
		return nil, errors.Newf("an NFA needs at least one state, got %d", numStates)
	}
	alphabet, err := NewCharacterMap(symbols)
	if err != nil {
		return nil, err
	}
	if _, ok := alphabet.Index(epsilon); ok {
		return nil, &DuplicateSymbolError{Symbol: epsilon}
	}

	n := &NFA{
		numStates: numStates,
		epsilon:   epsilon,
		alphabet:  alphabet,
		epsilons:  make([]*bitset.BitSet, numStates),
		delta:     make([][]*bitset.BitSet, numStates),
		accept:    bitset.New(uint(numStates)),
	}
	for s := 0; s < numStates; s++ {
		n.epsilons[s] = bitset.New(uint(numStates))
		n.delta[s] = make([]*bitset.BitSet, alphabet.Len())
		for c := range n.delta[s] {
			n.delta[s][c] = bitset.New(uint(numStates))
		}
	}
	return &NFABuilder{nfa: n}, nil
}

func (b *NFABuilder) checkState(state int) error {
	if state < 0 || state >= b.nfa.numStates {
		return errors.Newf("state %d out of range [0, %d)", state, b.nfa.numStates)
	}
	return nil
}

// AddTransition Adds an edge labeled symbol; the epsilon symbol adds an epsilon move.
func (b *NFABuilder) AddTransition(from, to int, symbol rune) error {
	if symbol == b.nfa.epsilon {
		return b.AddEpsilon(from, to)
	}
	if err := b.checkState(from); err != nil {
		return err
	}
	if err := b.checkState(to); err != nil {
		return err
	}
	c, ok := b.nfa.alphabet.Index(symbol)
	if !ok {
		return errors.Newf("symbol %q is not in the alphabet %s", symbol, b.nfa.alphabet)
	}
	b.nfa.delta[from][c].Set(uint(to))
	return nil
}

func (b *NFABuilder) AddEpsilon(from, to int) error {
	if err := b.checkState(from); err != nil {
		return err
	}
	if err := b.checkState(to); err != nil {
		return err
	}
	b.nfa.epsilons[from].Set(uint(to))
	return nil
}

// SetAccept Marks state as an accept state.
func (b *NFABuilder) SetAccept(state int) error {
	if err := b.checkState(state); err != nil {
		return err
	}
	b.nfa.accept.Set(uint(state))
	return nil
}

// Finish Returns the NFA. The builder must not be used afterwards.
func (b *NFABuilder) Finish() *NFA {
	n := b.nfa
	b.nfa = nil
	return n
}
