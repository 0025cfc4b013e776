// Package md5sum provides the md5sum command.
package md5sum

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
	Use:   "md5sum [file...]",
	Short: `Produces an md5sum file for the files named, or for stdin.`,
	Long: `
Produces an md5sum file for the files named.  This is in the same
format as the standard md5sum tool produces.  It is the same as
"digestbridge hashsum md5".
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 1<<20, command, args)
		if len(args) == 0 {
			args = []string{"-"}
		}
		id := uint64(hash.MD5.ID())
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
