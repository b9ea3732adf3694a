package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	automaton "github.com/geange/fatable"
)

// Batch Runs one source automaton through minimization, reports a match result per token and writes the
// minimal table.
type Batch struct {
	Fs      afero.Fs
	Stdout  io.Writer
	Logger  *logrus.Logger
	Verbose bool
}

// RunNFA Reads an NFA from source, determinizes and minimizes it.
func (b *Batch) RunNFA(source, out string, tokens []string) error {
	log := b.Logger.WithField("source", source)

	f, err := b.Fs.Open(source)
	if err != nil {
		return errors.Wrapf(err, "opening %s", source)
	}
	defer f.Close()

	nfa, err := automaton.ParseNFA(f)
	if err != nil {
		return errors.Wrapf(err, "reading NFA %s", source)
	}
	log.WithFields(logrus.Fields{
		"states":   nfa.NumStates(),
		"alphabet": nfa.Alphabet().String(),
	}).Info("read NFA")

	table := automaton.Determinize(nfa, automaton.WithLogger(log))
	return b.finish(table, nfa.Alphabet(), out, tokens)
}

// RunDFA Reads a table from source and minimizes it. alphabet names the table's symbols in column order;
// it is required when there are tokens to match.
func (b *Batch) RunDFA(source, out string, alphabet string, tokens []string) error {
	log := b.Logger.WithField("source", source)

	f, err := b.Fs.Open(source)
	if err != nil {
		return errors.Wrapf(err, "opening %s", source)
	}
	defer f.Close()

	table, err := automaton.ParseTable(f)
	if err != nil {
		return errors.Wrapf(err, "reading table %s", source)
	}

	var cm *automaton.CharacterMap
	if alphabet != "" {
		if cm, err = automaton.NewCharacterMap([]rune(alphabet)); err != nil {
			return errors.Wrap(err, "alphabet")
		}
		if table.NumRows() > 0 && cm.Len() != table.AlphabetSize() {
			return errors.Newf("alphabet %q has %d symbols, the table has %d columns",
				alphabet, cm.Len(), table.AlphabetSize())
		}
	} else if len(tokens) > 0 {
		return errors.New("matching tokens against a table needs --alphabet")
	}
	log.WithField("rows", table.NumRows()).Info("read table")

	return b.finish(table, cm, out, tokens)
}

func (b *Batch) finish(table *automaton.Table, cm *automaton.CharacterMap, out string, tokens []string) error {
	log := b.Logger.WithField("out", out)

	if b.Verbose {
		fmt.Fprintln(b.Stdout, "Input DFA:")
		automaton.RenderTable(b.Stdout, table, cm)
	}

	before := table.NumRows()
	table.Optimize(automaton.WithLogger(log))
	log.WithFields(logrus.Fields{
		"before": before,
		"after":  table.NumRows(),
	}).Info("optimized table")

	if b.Verbose {
		fmt.Fprintln(b.Stdout, "Optimal DFA:")
		automaton.RenderTable(b.Stdout, table, cm)
	}

	for _, tok := range tokens {
		res := automaton.Match(table, cm, tok)
		log.WithFields(logrus.Fields{"token": tok, "result": res.String()}).Debug("checked token")
		fmt.Fprintf(b.Stdout, "OUTPUT %s\n", res)
	}

	w, err := b.Fs.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	if err := automaton.WriteTable(w, table); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "writing %s", out)
	}
	return errors.Wrapf(w.Close(), "closing %s", out)
}
