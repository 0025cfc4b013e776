// Define the internal rc functions

package rc

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/digestbridge/digestbridge/digest"
	"github.com/digestbridge/digestbridge/lib/buildinfo"
	"github.com/pkg/errors"
)

func init() {
	Add(Call{
		Path:  "rc/noop",
		Fn:    rcNoop,
		Title: "Echo the input to the output parameters",
		Help: `
This echoes the input parameters to the output parameters for testing
purposes.  It can be used to check that the library is still alive and
to check that parameter passing is working properly.`,
	})
	Add(Call{
		Path:  "rc/error",
		Fn:    rcError,
		Title: "This returns an error",
		Help: `
This returns an error with the input as part of its error string.
Useful for testing error handling.`,
	})
	Add(Call{
		Path:  "rc/list",
		Fn:    rcList,
		Title: "List the registered RPC calls",
		Help: `
This returns every registered call with its title and help under
"commands".`,
	})
	Add(Call{
		Path:  "core/pid",
		Fn:    rcPid,
		Title: "Return PID of current process",
		Help: `
This returns PID of current process.`,
	})
	Add(Call{
		Path:  "core/version",
		Fn:    rcVersion,
		Title: "Shows the current version and build information",
		Help: `
This shows the current version and build information.

- version - version string, eg "v0.3.0"
- decomposed - version number as [major, minor, patch]
- isGit - boolean - true if this was compiled from the git version
- goVersion - version of Go runtime in use
- os - OS in use according to Go
- arch - cpu architecture in use according to Go
- linking - type of executable, "static" or "dynamic"
- goTags - space separated build tags or "none"`,
	})
}

// Echo the input to the ouput parameters
func rcNoop(ctx context.Context, in Params) (out Params, err error) {
	return in, nil
}

// Return an error regardless
func rcError(ctx context.Context, in Params) (out Params, err error) {
	return nil, errors.Errorf("arbitrary error on input %+v", in)
}

// List the registered commands
func rcList(ctx context.Context, in Params) (out Params, err error) {
	out = make(Params)
	out["commands"] = Calls.List()
	return out, nil
}

// Return PID of current process
func rcPid(ctx context.Context, in Params) (out Params, err error) {
	out = make(Params)
	out["pid"] = os.Getpid()
	return out, nil
}

// Return version info
func rcVersion(ctx context.Context, in Params) (out Params, err error) {
	version, err := semver.NewVersion(strings.TrimPrefix(digest.Version, "v"))
	if err != nil {
		return nil, errors.Wrapf(err, "bad version %q", digest.Version)
	}
	linking, tagString := buildinfo.GetLinkingAndTags()
	out = Params{
		"version":    digest.Version,
		"decomposed": []int64{version.Major, version.Minor, version.Patch},
		"isGit":      strings.HasSuffix(digest.Version, "-DEV"),
		"goVersion":  runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"linking":    linking,
		"goTags":     tagString,
	}
	return out, nil
}
