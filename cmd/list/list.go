// Package list provides the list command.
package list

import (
	"fmt"
	"io"
	"os"

	"github.com/digestbridge/digestbridge/cmd"
	"github.com/digestbridge/digestbridge/digest/config/flags"
	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/rc"
	"github.com/spf13/cobra"
)

// Globals
var (
	listJSON      bool
	listSupported bool
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.BoolVarP(cmdFlags, &listJSON, "json", "", listJSON, "Write the list as JSON")
	flags.BoolVarP(cmdFlags, &listSupported, "supported", "s", listSupported, "Only list algorithms which can be computed")
}

var commandDefinition = &cobra.Command{
	Use:   "list",
	Short: `List the registered digest algorithms.`,
	Long: `
Lists every registered algorithm with its identifier, digest length
and the longest HKDF output it can derive.

An algorithm registered without an implementation is shown as
unsupported.  Use --supported to leave such entries out and --json for
output in the same shape as the digest/list RPC call.
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		cmd.Run(command, func() error {
			return List(os.Stdout, listJSON, listSupported)
		})
	},
}

// List writes the registered algorithms to w as a table or as JSON
func List(w io.Writer, asJSON, supportedOnly bool) error {
	var algorithms []dispatch.Algorithm
	for _, algorithm := range dispatch.Algorithms() {
		if supportedOnly && !algorithm.Supported {
			continue
		}
		algorithms = append(algorithms, algorithm)
	}
	if asJSON {
		return rc.WriteJSON(w, rc.Params{"algorithms": algorithms})
	}
	maxlen := 1
	for _, algorithm := range algorithms {
		if len(algorithm.Name) > maxlen {
			maxlen = len(algorithm.Name)
		}
	}
	for _, algorithm := range algorithms {
		if algorithm.Supported {
			_, err := fmt.Fprintf(w, "%-*s %-18s %3d %6d\n", maxlen, algorithm.Name, algorithm.ID, algorithm.Size, algorithm.MaxKey)
			if err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(w, "%-*s %-18s %3d unsupported\n", maxlen, algorithm.Name, algorithm.ID, algorithm.Size)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
