package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"github.com/geange/fatable/cli/cliflags"
)

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar == "" {
		return
	}
	if v, ok := os.LookupEnv(flagInfo.EnvVar); ok {
		if err := f.Set(flagInfo.Name, v); err != nil {
			panic(errors.Wrapf(err, "%s=%q", flagInfo.EnvVar, v))
		}
	}
}
