// Package configflags defines the flags used by digestbridge.  It is
// decoupled into a separate package so it can be replaced.
package configflags

// Options set by command line flags
import (
	"github.com/digestbridge/digestbridge/digest"
	"github.com/digestbridge/digestbridge/digest/config/flags"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var (
	// these will get interpreted into digest.Config via SetFlags() below
	verbose int
	quiet   bool
)

// AddFlags adds the non command specific flags to the command
func AddFlags(ci *digest.ConfigInfo, flagSet *pflag.FlagSet) {
	// NB defaults which aren't the zero for the type should be set in digest/config.go NewConfig
	flags.CountVarP(flagSet, &verbose, "verbose", "v", "Print lots more stuff (repeat for more)")
	flags.BoolVarP(flagSet, &quiet, "quiet", "q", false, "Print as little stuff as possible")
	flags.FVarP(flagSet, &ci.LogLevel, "log-level", "", "Log level DEBUG|INFO|NOTICE|ERROR")
	flags.BoolVarP(flagSet, &ci.UseJSONLog, "use-json-log", "", ci.UseJSONLog, "Use json log format.")
	flags.StringVarP(flagSet, &ci.LogFile, "log-file", "", ci.LogFile, "Log everything to this file")
	flags.IntVarP(flagSet, &ci.LogFileMaxSize, "log-file-max-size", "", ci.LogFileMaxSize, "Maximum size in megabytes of the log file before it's rotated")
	flags.IntVarP(flagSet, &ci.LogFileMaxBackups, "log-file-max-backups", "", ci.LogFileMaxBackups, "Maximum number of rotated log files to retain")
	flags.BoolVarP(flagSet, &ci.LogFileCompress, "log-file-compress", "", ci.LogFileCompress, "Compress rotated log files using gzip")
	flags.BoolVarP(flagSet, &ci.OutputBase64, "base64", "", ci.OutputBase64, "Output base64 encoded digests instead of hex")
}

// SetFlags converts any flags into config which weren't straight forward
func SetFlags(ci *digest.ConfigInfo, flagSet *pflag.FlagSet) error {
	if verbose >= 2 {
		ci.LogLevel = digest.LogLevelDebug
	} else if verbose >= 1 {
		ci.LogLevel = digest.LogLevelInfo
	}
	if quiet {
		if verbose > 0 {
			return errors.New("can't set -v and -q")
		}
		ci.LogLevel = digest.LogLevelError
	}
	logLevelFlag := flagSet.Lookup("log-level")
	if logLevelFlag != nil && logLevelFlag.Changed {
		if verbose > 0 {
			return errors.New("can't set -v and --log-level")
		}
		if quiet {
			return errors.New("can't set -q and --log-level")
		}
	}
	if ci.LogFileMaxSize < 0 {
		return errors.Errorf("--log-file-max-size must not be negative, got %d", ci.LogFileMaxSize)
	}
	return nil
}
