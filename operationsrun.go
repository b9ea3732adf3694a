package automaton

import "strconv"

// MatchResult Outcome of running a string through a Table. Pos is the 1-based position of the first
// character that could not be followed, 0 when the table is empty or rejects the empty string, and
// len+1 when the whole input was consumed without ending in an accept state.
type MatchResult struct {
	Matched bool
	Pos     int
}

// MatchedMarker is how a successful match is reported.
const MatchedMarker = ":M:"

func (r MatchResult) String() string {
	if r.Matched {
		return MatchedMarker
	}
	return strconv.Itoa(r.Pos)
}

// Match Walks t from row 0 over input, mapping each character through cm. A character outside the
// alphabet fails like a missing transition would.
func Match(t *Table, cm *CharacterMap, input string) MatchResult {
	if t.NumRows() == 0 {
		return MatchResult{}
	}
	if input == "" && !t.IsAccept(0) {
		return MatchResult{}
	}

	state := 0
	n := 0
	for _, ch := range input {
		c, ok := cm.Index(ch)
		if !ok || c >= t.AlphabetSize() {
			return MatchResult{Pos: n + 1}
		}
		next := t.Step(state, c)
		if next == NoTransition {
			return MatchResult{Pos: n + 1}
		}
		state = next
		n++
	}

	if t.IsAccept(state) {
		return MatchResult{Matched: true}
	}
	return MatchResult{Pos: n + 1}
}

// Run Returns true if t accepts s.
func Run(t *Table, cm *CharacterMap, s string) bool {
	return Match(t, cm, s).Matched
}
