// Package hashsum provides the hashsum command.
package hashsum

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/digestbridge/digestbridge/cmd"
	"github.com/digestbridge/digestbridge/digest/config/flags"
	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/digestbridge/digestbridge/lib/chunks"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	partsFlag = ""
	idFlag    = ""
	all       = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.StringVarP(cmdFlags, &partsFlag, "parts", "p", partsFlag, "Comma separated part lengths to feed the input in, eg 1,2,3")
	flags.StringVarP(cmdFlags, &idFlag, "id", "", idFlag, "Select the algorithm by numeric identifier (decimal or 0x prefixed) instead of by name")
	flags.BoolVarP(cmdFlags, &all, "all", "", all, "Print every supported digest of the input")
}

var commandDefinition = &cobra.Command{
	Use:   "hashsum <hash> [file...]",
	Short: `Produces a digest of each file named, or of stdin.`,
	Long: `
Produces a digest of the files named using the algorithm named.  The
output is in the same format as the standard md5sum/sha1sum tool.  Use
"-" or no file to read from stdin.

Run without a hash to see the list of supported hashes, eg

    $ digestbridge hashsum
    Supported hashes are:
      * sha1
      * sha224
      ...

Then

    $ digestbridge hashsum sha256 file.bin

The --parts flag feeds the input to the digest in pieces of the given
lengths, exactly as the C library does, eg

    $ digestbridge hashsum sha256 --parts 5,6 file.bin

Bytes after the last part are ignored and parts which run past the end
of the input are an error.

Use --id to select the algorithm by its numeric identifier, as shown
by "digestbridge list", in which case every argument is a file.

Use --all to print the digest of every supported algorithm.
`,
	RunE: func(command *cobra.Command, args []string) error {
		cmd.CheckArgs(0, 1<<20, command, args)
		if len(args) == 0 && idFlag == "" && !all {
			fmt.Print(hash.HelpString(0))
			return nil
		}
		var id uint64
		switch {
		case all:
			// every argument is a file
		case idFlag != "":
			var err error
			id, err = strconv.ParseUint(idFlag, 0, 64)
			if err != nil {
				return errors.Wrapf(err, "bad --id %q", idFlag)
			}
		default:
			var hashType hash.Type
			if err := hashType.Set(args[0]); err != nil {
				fmt.Print(hash.HelpString(0))
				return err
			}
			id = uint64(hashType.ID())
			args = args[1:]
		}
		var parts []uint64
		if partsFlag != "" {
			var err error
			parts, err = chunks.Parse(partsFlag)
			if err != nil {
				return err
			}
		}
		if len(args) == 0 {
			args = []string{"-"}
		}
		cmd.Run(command, func() error {
			for _, name := range args {
				var err error
				if all {
					err = SumAll(os.Stdout, name)
				} else {
					err = SumFile(os.Stdout, name, parts, id)
				}
				if err != nil {
					return err
				}
			}
			return nil
		})
		return nil
	},
}

// SumFile writes the digest of the named file to w in md5sum format.
// A nil parts feeds the whole file in one go.
func SumFile(w io.Writer, name string, parts []uint64, id uint64) error {
	data, err := cmd.ReadInput(name)
	if err != nil {
		return err
	}
	if parts == nil {
		parts = chunks.Whole(len(data))
	}
	sum, err := dispatch.Hash(data, parts, id)
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	_, err = fmt.Fprintf(w, "%s  %s\n", cmd.FormatDigest(sum), name)
	return err
}

// SumAll writes every supported digest of the named file to w, one
// per line, prefixed by the algorithm name.
func SumAll(w io.Writer, name string) error {
	in, closeInput, err := cmd.OpenInput(name)
	if err != nil {
		return err
	}
	defer func() { _ = closeInput() }()
	hasher := hash.NewMultiHasher()
	if _, err := io.Copy(hasher, in); err != nil {
		return errors.Wrapf(err, "failed to read %q", name)
	}
	types := hash.Supported().Array()
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })
	for _, hashType := range types {
		sum, err := hasher.Sum(hashType)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-16s %s  %s\n", hashType, cmd.FormatDigest(sum), name); err != nil {
			return err
		}
	}
	return nil
}
