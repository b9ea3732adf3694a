package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeMergesEquivalentStates(t *testing.T) {
	tbl := mustParseTable(t, "- 0 1 2\n- 1 3 3\n- 2 3 3\n+ 3 3 3\n")

	tbl.Optimize()
	assert.Equal(t, "- 0 1 1\n- 1 2 2\n+ 2 2 2\n", tbl.String())

	cm, err := NewCharacterMap([]rune("ab"))
	require.NoError(t, err)
	assert.Equal(t, MatchResult{Matched: true}, Match(tbl, cm, "ab"))
	assert.Equal(t, MatchResult{Pos: 0}, Match(tbl, cm, ""))

	assert.Equal(t, 0, tbl.Resolve(0))
	assert.Equal(t, 1, tbl.Resolve(1))
	assert.Equal(t, 1, tbl.Resolve(2))
	assert.Equal(t, 2, tbl.Resolve(3))
	assert.Equal(t, NoTransition, tbl.Resolve(4))
}

func TestOptimizeRemovesDeadStates(t *testing.T) {
	tbl := mustParseTable(t, "- 0 1 E\n+ 1 1 E\n- 2 2 2\n")

	tbl.Optimize()
	assert.Equal(t, "- 0 1 E\n+ 1 1 E\n", tbl.String())
	assert.Equal(t, NoTransition, tbl.Resolve(2))
}

func TestOptimizeClearsTransitionsIntoDeadStates(t *testing.T) {
	// 2 is reachable but can never accept; 3 is unreachable.
	tbl := mustParseTable(t, "- 0 1 2\n+ 1 E 2\n- 2 2 2\n+ 3 0 0\n")

	tbl.Optimize()
	assert.Equal(t, "- 0 1 E\n+ 1 E E\n", tbl.String())
	assert.Equal(t, NoTransition, tbl.Resolve(3))
}

func TestOptimizeMergesCycles(t *testing.T) {
	// Even-length strings, unrolled over four states. No two rows are identical, the classes only show up
	// through refinement.
	tbl := mustParseTable(t, "+ 0 1\n- 1 2\n+ 2 3\n- 3 0\n")

	tbl.Optimize()
	assert.Equal(t, "+ 0 1\n- 1 0\n", tbl.String())
	assert.Equal(t, 0, tbl.Resolve(2))
	assert.Equal(t, 1, tbl.Resolve(3))
}

func TestOptimizeEmptyLanguage(t *testing.T) {
	tbl := mustParseTable(t, "- 0 1 0\n- 1 1 0\n")

	tbl.Optimize()
	assert.Equal(t, "- 0 E E\n", tbl.String())
	assert.True(t, IsEmpty(tbl))

	tbl.Optimize()
	assert.Equal(t, "- 0 E E\n", tbl.String())
}

func TestOptimizeZeroAlphabet(t *testing.T) {
	tbl := mustParseTable(t, "+ 0\n+ 1\n")
	tbl.Optimize()
	assert.Equal(t, "+ 0\n", tbl.String())

	tbl = mustParseTable(t, "- 0\n")
	tbl.Optimize()
	assert.Equal(t, "- 0\n", tbl.String())
}

func TestOptimizeNoRows(t *testing.T) {
	tbl := newTable(3, nil)
	tbl.Optimize()
	assert.Equal(t, 0, tbl.NumRows())
}

func TestOptimizeCannedAutomata(t *testing.T) {
	cm, err := NewCharacterMap([]rune("xyz"))
	require.NoError(t, err)

	a, err := defaultAutomata.MakeString(cm, "xyzzy")
	require.NoError(t, err)
	a.Optimize()
	assert.Equal(t, 6, a.NumRows())
	assert.True(t, Run(a, cm, "xyzzy"))
	assert.Equal(t, MatchResult{Pos: 5}, Match(a, cm, "xyzz"))

	anyString := defaultAutomata.MakeAnyString(3)
	anyString.Optimize()
	assert.Equal(t, "+ 0 0 0 0\n", anyString.String())

	_, err = defaultAutomata.MakeString(cm, "xa")
	assert.Error(t, err)
}

// randomTable Builds a table with ids in order and arbitrary, possibly absent, transitions.
func randomTable(r *rand.Rand, numRows, alphabetSize int) *Table {
	rows := make([]*Row, numRows)
	for i := range rows {
		rows[i] = NewRow(i, r.Intn(3) == 0, alphabetSize)
		for c := range rows[i].Trans {
			if r.Intn(5) > 0 {
				rows[i].Trans[c] = r.Intn(numRows)
			}
		}
	}
	return newTable(alphabetSize, rows)
}

// allStrings Every string over symbols up to maxLen characters long.
func allStrings(symbols []rune, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, prefix := range level {
			for _, s := range symbols {
				next = append(next, prefix+string(s))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

func accepts(t *Table, state int) bool {
	return state != NoTransition && t.IsAccept(state)
}

func step(t *Table, state, symbol int) int {
	if state == NoTransition {
		return NoTransition
	}
	return t.Step(state, symbol)
}

// distinguishable Returns true if some string is accepted from exactly one of p and q.
func distinguishable(t *Table, p, q int) bool {
	type pair struct{ p, q int }
	seen := map[pair]bool{{p, q}: true}
	workList := []pair{{p, q}}
	for len(workList) > 0 {
		cur := workList[0]
		workList = workList[1:]
		if accepts(t, cur.p) != accepts(t, cur.q) {
			return true
		}
		for c := 0; c < t.AlphabetSize(); c++ {
			next := pair{step(t, cur.p, c), step(t, cur.q, c)}
			if !seen[next] {
				seen[next] = true
				workList = append(workList, next)
			}
		}
	}
	return false
}

func TestOptimizeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(20261017))
	cm, err := NewCharacterMap([]rune("abc"))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		numRows := 1 + r.Intn(9)
		alphabetSize := 1 + r.Intn(3)
		symbols := cm.Symbols()[:alphabetSize]
		prefix, err := NewCharacterMap(symbols)
		require.NoError(t, err)

		original := randomTable(r, numRows, alphabetSize)
		optimized := original.Clone()
		optimized.Optimize()

		require.Greater(t, optimized.NumRows(), 0)
		assert.LessOrEqual(t, optimized.NumRows(), original.NumRows())
		assert.Equal(t, original.IsAccept(0), optimized.IsAccept(0))

		// Every row has its own id and every transition names a row.
		for i, row := range optimized.Rows() {
			require.Equal(t, i, row.ID)
			require.Len(t, row.Trans, alphabetSize)
			for _, d := range row.Trans {
				if d != NoTransition {
					require.True(t, d >= 0 && d < optimized.NumRows(), "dangling target %d in\n%s", d, optimized)
				}
			}
		}

		for _, s := range allStrings(symbols, 6) {
			require.Equal(t, Run(original, prefix, s), Run(optimized, prefix, s),
				"input %q\noriginal:\n%s\noptimized:\n%s", s, original, optimized)
		}

		if IsEmpty(original) {
			assert.Equal(t, defaultAutomata.MakeEmpty(alphabetSize).String(), optimized.String())
		} else {
			for s := 0; s < optimized.NumRows(); s++ {
				assert.True(t, optimized.reachesAccept(s, setOf(optimized.NumRows())), "dead state %d", s)
			}
			for p := 0; p < optimized.NumRows(); p++ {
				for q := p + 1; q < optimized.NumRows(); q++ {
					assert.True(t, distinguishable(optimized, p, q), "states %d and %d are equivalent in\n%s", p, q, optimized)
				}
			}
		}

		again := optimized.Clone()
		again.Optimize()
		assert.Equal(t, optimized.String(), again.String())

		for id := 0; id < original.NumRows(); id++ {
			resolved := optimized.Resolve(id)
			assert.True(t, resolved == NoTransition || resolved < optimized.NumRows())
		}
	}
}
