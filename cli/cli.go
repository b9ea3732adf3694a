package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/geange/fatable/cli/cliflags"
)

type cliContext struct {
	alphabet string
	verbose  bool
	logLevel string
}

// newRootCmd Builds the command tree around b. Flags bind to a fresh context per tree.
func newRootCmd(b *Batch) *cobra.Command {
	ctx := &cliContext{}

	root := &cobra.Command{
		Use:           "fatable",
		Short:         "minimize finite automata and match strings against them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(ctx.logLevel)
			if err != nil {
				return errors.Wrapf(err, "--%s", cliflags.LogLevel.Name)
			}
			b.Logger.SetLevel(level)
			b.Verbose = ctx.verbose
			b.Stdout = cmd.OutOrStdout()
			return nil
		},
	}
	StringFlag(root.PersistentFlags(), &ctx.logLevel, cliflags.LogLevel, logrus.WarnLevel.String())
	BoolFlag(root.PersistentFlags(), &ctx.verbose, cliflags.Verbose, false)

	nfaCmd := &cobra.Command{
		Use:   "nfa <source> <out> [tokens...]",
		Short: "convert an NFA to a minimal DFA",
		Long: `Reads an NFA, builds the equivalent minimal DFA, writes it to <out> in the table
format and prints one OUTPUT line per token: :M: for a match, otherwise the
position of the first character that could not be followed.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return b.RunNFA(args[0], args[1], args[2:])
		},
	}

	dfaCmd := &cobra.Command{
		Use:   "dfa <source> <out> [tokens...]",
		Short: "minimize a DFA table",
		Long: `Reads a DFA table, minimizes it, writes it to <out> and prints one OUTPUT line
per token. Matching tokens requires --alphabet.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return b.RunDFA(args[0], args[1], ctx.alphabet, args[2:])
		},
	}
	StringFlag(dfaCmd.Flags(), &ctx.alphabet, cliflags.Alphabet, "")

	root.AddCommand(nfaCmd, dfaCmd)
	return root
}

// Run Executes the command line args against b.
func Run(b *Batch, args []string) error {
	if b.Logger == nil {
		b.Logger = logrus.New()
	}
	root := newRootCmd(b)
	if b.Stdout != nil {
		root.SetOut(b.Stdout)
	}
	root.SetArgs(args)
	return root.Execute()
}

// Main is the entry point of the fatable binary.
func Main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	b := &Batch{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Logger: logger,
	}
	if err := Run(b, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
