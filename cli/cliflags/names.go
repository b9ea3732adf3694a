package cliflags

import "strings"

// FlagInfo Describes a command line flag.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string
	// Shorthand is the one-character abbreviation, if any.
	Shorthand string
	// EnvVar names an environment variable that provides the default.
	EnvVar string
	// Description is shown in the help text.
	Description string
}

// Usage Returns the help text, mentioning the environment variable if there is one.
func (f FlagInfo) Usage() string {
	desc := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		desc += "\nEnvironment variable: " + f.EnvVar
	}
	return desc
}

var (
	Alphabet = FlagInfo{
		Name:        "alphabet",
		Shorthand:   "a",
		Description: `The table's symbols, one character per column, in column order.`,
	}

	Verbose = FlagInfo{
		Name:        "verbose",
		Shorthand:   "v",
		Description: `Print the input and the optimal DFA as grids.`,
	}

	LogLevel = FlagInfo{
		Name:   "log-level",
		EnvVar: "FATABLE_LOG_LEVEL",
		Description: `
Level of the diagnostics written to stderr: panic, fatal, error, warning, info,
debug or trace.`,
	}
)
