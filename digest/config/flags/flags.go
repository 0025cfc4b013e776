// Package flags wraps the pflag definers so every flag can also be
// given as a DIGESTBRIDGE_ environment variable.
package flags

import (
	"log"
	"os"

	"github.com/digestbridge/digestbridge/digest"
	"github.com/spf13/pflag"
)

// setValueFromEnv applies the environment variable for the flag name,
// if set, as both its value and its default.  A value given on the
// command line still wins since it is parsed afterwards.
func setValueFromEnv(flags *pflag.FlagSet, name string) {
	envKey := digest.OptionToEnv(name)
	envValue, found := os.LookupEnv(envKey)
	if !found {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil {
		log.Fatalf("No flag --%s to set from %s", name, envKey)
	}
	if err := flags.Set(name, envValue); err != nil {
		log.Fatalf("Bad %s=%q for --%s: %v", envKey, envValue, name, err)
	}
	digest.Debugf(nil, "--%s set to %q from %s", name, flag.Value, envKey)
	flag.DefValue = envValue
}

// StringVarP is pflag.StringVarP reading the environment too
func StringVarP(flags *pflag.FlagSet, p *string, name, shorthand string, value string, usage string) {
	flags.StringVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// BoolVarP is pflag.BoolVarP reading the environment too
func BoolVarP(flags *pflag.FlagSet, p *bool, name, shorthand string, value bool, usage string) {
	flags.BoolVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// IntVarP is pflag.IntVarP reading the environment too
func IntVarP(flags *pflag.FlagSet, p *int, name, shorthand string, value int, usage string) {
	flags.IntVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// Uint64VarP is pflag.Uint64VarP reading the environment too.
// Identifiers may be given in hex with a 0x prefix.
func Uint64VarP(flags *pflag.FlagSet, p *uint64, name, shorthand string, value uint64, usage string) {
	flags.Uint64VarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// CountVarP is pflag.CountVarP reading the environment too, so
// DIGESTBRIDGE_VERBOSE=2 is the same as -vv
func CountVarP(flags *pflag.FlagSet, p *int, name, shorthand string, usage string) {
	flags.CountVarP(p, name, shorthand, usage)
	setValueFromEnv(flags, name)
}

// FVarP is pflag.VarP reading the environment too
func FVarP(flags *pflag.FlagSet, value pflag.Value, name, shorthand, usage string) {
	flags.VarP(value, name, shorthand, usage)
	setValueFromEnv(flags, name)
}
