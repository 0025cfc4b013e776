// Package cmd implements the digestbridge command
//
// It is in a sub package so it's internals can be re-used elsewhere
package cmd

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/digestbridge/digestbridge/digest"
	"github.com/digestbridge/digestbridge/digest/config/configflags"
	"github.com/digestbridge/digestbridge/digest/dispatch"
	digestlog "github.com/digestbridge/digestbridge/digest/log"
	"github.com/digestbridge/digestbridge/lib/buildinfo"
	"github.com/digestbridge/digestbridge/lib/exitcode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Globals
var (
	// Flags
	version bool
	// Errors
	errorNotEnoughArguments = errors.New("not enough arguments")
	errorTooManyArguments   = errors.New("too many arguments")
	// ErrMismatch is returned when one or more digests don't match
	ErrMismatch = errors.New("checksum mismatch")
)

// Root is the main digestbridge command
var Root = &cobra.Command{
	Use:   "digestbridge",
	Short: "Run any of a family of digests and HKDF through one dispatch core",
	Long: `
digestbridge exposes a large family of hash functions and HKDF behind
one fixed shape interface, selected by a 64 bit algorithm identifier.

The same core is built as a C library (see libdigest) for use by test
harnesses.  This command line tool runs it by hand, which is useful to
reproduce a finding or to look up an identifier.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initConfig(cmd)
	},
	Run: func(command *cobra.Command, args []string) {
		if version {
			ShowVersion()
			resolveExitCode(nil)
		}
		_ = command.Usage()
	},
}

func init() {
	Root.Flags().BoolVarP(&version, "version", "V", false, "Print the version number")
	configflags.AddFlags(digest.GetConfig(context.Background()), Root.PersistentFlags())
}

// ShowVersion prints the version to stdout
func ShowVersion() {
	osVersion, osKernel := buildinfo.GetOSVersion()
	if osVersion == "" {
		osVersion = "unknown"
	}
	if osKernel == "" {
		osKernel = "unknown"
	}
	linking, tagString := buildinfo.GetLinkingAndTags()

	fmt.Printf("digestbridge %s\n", digest.Version)
	fmt.Printf("- os/version: %s\n", osVersion)
	fmt.Printf("- os/kernel: %s\n", osKernel)
	fmt.Printf("- os/type: %s\n", runtime.GOOS)
	fmt.Printf("- os/arch: %s\n", runtime.GOARCH)
	fmt.Printf("- go/version: %s\n", runtime.Version())
	fmt.Printf("- go/linking: %s\n", linking)
	fmt.Printf("- go/tags: %s\n", tagString)
}

// Run the function and exit with a code which reflects the error
func Run(cmd *cobra.Command, f func() error) {
	cmdErr := f()
	if cmdErr != nil {
		log.Printf("Failed to %s: %v", cmd.Name(), cmdErr)
	}
	resolveExitCode(cmdErr)
}

// CheckArgs checks there are enough arguments and prints a message if not
func CheckArgs(MinArgs, MaxArgs int, cmd *cobra.Command, args []string) {
	if len(args) < MinArgs {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments minimum: you provided %d non flag arguments: %q\n", cmd.Name(), MinArgs, len(args), args)
		resolveExitCode(errorNotEnoughArguments)
	} else if len(args) > MaxArgs {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments maximum: you provided %d non flag arguments: %q\n", cmd.Name(), MaxArgs, len(args), args)
		resolveExitCode(errorTooManyArguments)
	}
}

func initConfig(cmd *cobra.Command) {
	ci := digest.GetConfig(context.Background())

	// Finish parsing any command line flags
	if err := configflags.SetFlags(ci, cmd.Flags()); err != nil {
		log.Fatalf("Bad flags: %v", err)
	}

	// Start the logger
	digestlog.InitLogging()
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return exitcode.Success
	}
	switch dispatch.Status(err) {
	case dispatch.StatusUnrecognized:
		return exitcode.Unrecognized
	case dispatch.StatusInvalidPartition:
		return exitcode.InvalidPartition
	case dispatch.StatusKeyTooLong:
		return exitcode.KeyTooLong
	case dispatch.StatusUnsupported:
		return exitcode.Unsupported
	}
	switch errors.Cause(err) {
	case errorNotEnoughArguments, errorTooManyArguments:
		return exitcode.UsageError
	case ErrMismatch:
		return exitcode.Mismatch
	}
	return exitcode.UncategorizedError
}

func resolveExitCode(err error) {
	if closeErr := digestlog.Close(); closeErr != nil {
		log.Printf("Failed to close log file: %v", closeErr)
	}
	os.Exit(ExitCode(err))
}

// Main runs digestbridge interpreting flags and commands out of os.Args
func Main() {
	if err := Root.Execute(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

// FormatDigest renders sum as hex, or as base64 if --base64 is set
func FormatDigest(sum []byte) string {
	if digest.GetConfig(context.Background()).OutputBase64 {
		return base64.URLEncoding.EncodeToString(sum)
	}
	return hex.EncodeToString(sum)
}

// OpenInput opens the named file, or stdin for "" or "-".  The
// returned close function must be called when done.
func OpenInput(name string) (io.Reader, func() error, error) {
	if name == "" || name == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open input")
	}
	return f, f.Close, nil
}

// ReadInput reads all of the named file, or stdin for "" or "-"
func ReadInput(name string) ([]byte, error) {
	in, closeInput, err := OpenInput(name)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(in)
	closeErr := closeInput()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", name)
	}
	return data, closeErr
}
