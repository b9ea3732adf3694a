package automaton

import (
	"fmt"
	"strings"
)

// DuplicateSymbolError is returned when an alphabet lists the same symbol twice.
type DuplicateSymbolError struct {
	Symbol rune
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate alphabet symbol %q", e.Symbol)
}

// CharacterMap Bidirectional mapping between input symbols and dense indices. Indices are assigned in the
// order the symbols were supplied.
type CharacterMap struct {
	symbols []rune
	index   map[rune]int
}

func NewCharacterMap(symbols []rune) (*CharacterMap, error) {
	m := &CharacterMap{
		symbols: make([]rune, 0, len(symbols)),
		index:   make(map[rune]int, len(symbols)),
	}
	for _, s := range symbols {
		if _, ok := m.index[s]; ok {
			return nil, &DuplicateSymbolError{Symbol: s}
		}
		m.index[s] = len(m.symbols)
		m.symbols = append(m.symbols, s)
	}
	return m, nil
}

// Index Returns the index of r, or false if r is not part of the alphabet.
func (m *CharacterMap) Index(r rune) (int, bool) {
	i, ok := m.index[r]
	return i, ok
}

func (m *CharacterMap) Symbol(i int) rune {
	return m.symbols[i]
}

// Len Size of the alphabet.
func (m *CharacterMap) Len() int {
	return len(m.symbols)
}

func (m *CharacterMap) Symbols() []rune {
	out := make([]rune, len(m.symbols))
	copy(out, m.symbols)
	return out
}

func (m *CharacterMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range m.symbols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%c:%d", s, i)
	}
	b.WriteByte('}')
	return b.String()
}
