package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ParseError A line of an automaton description that could not be read. Nothing is built from an input
// that has one.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type line struct {
	num    int
	text   string
	fields []string
}

// readLines Returns the non-blank lines of r, split on whitespace.
func readLines(r io.Reader) ([]line, error) {
	var lines []line
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, line{num: num, text: text, fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading automaton")
	}
	return lines, nil
}

func (l line) errorf(format string, args ...interface{}) error {
	return &ParseError{Line: l.num, Text: l.text, Err: errors.Newf(format, args...)}
}

func (l line) wrap(err error) error {
	return &ParseError{Line: l.num, Text: l.text, Err: err}
}

func parseSymbol(field string) (rune, bool) {
	if utf8.RuneCountInString(field) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(field)
	return r, true
}

func parseAccept(field string) (bool, bool) {
	switch field {
	case "+":
		return true, true
	case "-":
		return false, true
	default:
		return false, false
	}
}

// ParseNFA Reads the NFA text format. The header is "<numStates> <epsilon> <symbol>...", the DFA alphabet
// taking its indices from the order of the symbols after epsilon. Each further line is
// "<+|-> <from> <to> <symbol>...": one edge from -> to per listed symbol, and "+" marks from as accepting.
func ParseNFA(r io.Reader) (*NFA, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("NFA description is empty")
	}

	header := lines[0]
	if len(header.fields) < 2 {
		return nil, header.errorf("header needs a state count and an epsilon symbol, got %d fields", len(header.fields))
	}
	numStates, err := strconv.Atoi(header.fields[0])
	if err != nil {
		return nil, header.wrap(errors.Wrap(err, "state count"))
	}
	symbols := make([]rune, 0, len(header.fields)-1)
	for _, f := range header.fields[1:] {
		s, ok := parseSymbol(f)
		if !ok {
			return nil, header.errorf("symbol %q is not a single character", f)
		}
		symbols = append(symbols, s)
	}

	b, err := NewNFABuilder(numStates, symbols[0], symbols[1:])
	if err != nil {
		return nil, header.wrap(err)
	}

	for _, l := range lines[1:] {
		if len(l.fields) < 3 {
			return nil, l.errorf("edge needs an accept marker, a source and a target, got %d fields", len(l.fields))
		}
		accept, ok := parseAccept(l.fields[0])
		if !ok {
			return nil, l.errorf("accept marker %q is neither + nor -", l.fields[0])
		}
		from, err := strconv.Atoi(l.fields[1])
		if err != nil {
			return nil, l.wrap(errors.Wrap(err, "source state"))
		}
		to, err := strconv.Atoi(l.fields[2])
		if err != nil {
			return nil, l.wrap(errors.Wrap(err, "target state"))
		}
		if accept {
			if err := b.SetAccept(from); err != nil {
				return nil, l.wrap(err)
			}
		}
		for _, f := range l.fields[3:] {
			s, ok := parseSymbol(f)
			if !ok {
				return nil, l.errorf("symbol %q is not a single character", f)
			}
			if err := b.AddTransition(from, to, s); err != nil {
				return nil, l.wrap(err)
			}
		}
	}
	return b.Finish(), nil
}

// ParseTable Reads the DFA table format: one "<+|-> <id> <t0> ... <tk-1>" line per state in id order,
// E for an absent transition. The alphabet size is taken from the first row.
func ParseTable(r io.Reader) (*Table, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	alphabetSize := 0
	if len(lines) > 0 {
		alphabetSize = len(lines[0].fields) - 2
	}

	rows := make([]*Row, 0, len(lines))
	for _, l := range lines {
		if len(l.fields) < 2 {
			return nil, l.errorf("row needs an accept marker and an id, got %d fields", len(l.fields))
		}
		accept, ok := parseAccept(l.fields[0])
		if !ok {
			return nil, l.errorf("accept marker %q is neither + nor -", l.fields[0])
		}
		id, err := strconv.Atoi(l.fields[1])
		if err != nil {
			return nil, l.wrap(errors.Wrap(err, "row id"))
		}
		if id != len(rows) {
			return nil, l.wrap(errors.Mark(errors.Newf("row id %d out of order, want %d", id, len(rows)), ErrMalformedTable))
		}
		if len(l.fields)-2 != alphabetSize {
			return nil, l.wrap(errors.Mark(
				errors.Newf("row has %d transitions, want %d", len(l.fields)-2, alphabetSize), ErrMalformedTable))
		}

		row := NewRow(id, accept, alphabetSize)
		for c, f := range l.fields[2:] {
			if f == "E" {
				continue
			}
			d, err := strconv.Atoi(f)
			if err != nil {
				return nil, l.wrap(errors.Wrapf(err, "transition %d", c))
			}
			if d < 0 {
				return nil, l.wrap(errors.Mark(errors.Newf("negative target %d", d), ErrMalformedTable))
			}
			row.Trans[c] = d
		}
		rows = append(rows, row)
	}

	return NewTable(alphabetSize, rows)
}
