// Package rc provides the rc command.
package rc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/digestbridge/digestbridge/cmd"
	"github.com/digestbridge/digestbridge/digest/rc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "rc commands [json]",
	Short: `Run an RPC call in process.`,
	Long: strings.ReplaceAll(`
Runs an RPC call against the in process registry, the same
way the |DigestRPC| entry point of the C library does.  The second
argument is the input as a JSON object and may be left out.

    digestbridge rc digest/hash '{"name":"sha256","input":"616263"}'

The reply is printed as JSON.  If the call fails the error reply is
printed and the command exits with a non zero status.

With no arguments the available calls are listed.
`, "|", "`"),
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 2, command, args)
		cmd.Run(command, func() error {
			if len(args) == 0 {
				return List(os.Stdout)
			}
			input := ""
			if len(args) > 1 {
				input = args[1]
			}
			return Call(context.Background(), os.Stdout, args[0], input)
		})
	},
}

// Call runs method with the JSON input and writes the reply to w.  A
// reply with a status other than 200 is written and also returned as
// an error.
func Call(ctx context.Context, w io.Writer, method, input string) error {
	output, status := rc.CallJSON(ctx, method, input)
	if _, err := io.WriteString(w, output); err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("%s failed with status %d", method, status)
	}
	return nil
}

// List writes the registered calls and their titles to w
func List(w io.Writer) error {
	for _, call := range rc.Calls.List() {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", call.Path, call.Title); err != nil {
			return err
		}
	}
	return nil
}
