// Package sha1sum provides the sha1sum command.
package sha1sum

import (
	"os"

	"github.com/digestbridge/digestbridge/cmd"
	"github.com/digestbridge/digestbridge/cmd/hashsum"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "sha1sum [file...]",
	Short: `Produces an sha1sum file for the files named, or for stdin.`,
	Long: `
Produces an sha1sum file for the files named.  This is in the same
format as the standard sha1sum tool produces.  It is the same as
"digestbridge hashsum sha1".
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 1<<20, command, args)
		if len(args) == 0 {
			args = []string{"-"}
		}
		id := uint64(hash.SHA1.ID())
		cmd.Run(command, func() error {
			for _, name := range args {
				if err := hashsum.SumFile(os.Stdout, name, nil, id); err != nil {
					return err
				}
			}
			return nil
		})
	},
}
