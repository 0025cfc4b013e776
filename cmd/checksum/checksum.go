// Package checksum provides the checksum command.
package checksum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/digestbridge/digestbridge/cmd"
	"github.com/digestbridge/digestbridge/digest"
	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/digestbridge/digestbridge/lib/chunks"
	"github.com/digestbridge/digestbridge/lib/errcount"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrMismatch is returned when one or more files don't match
var ErrMismatch = cmd.ErrMismatch

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "checksum <hash> sumfile",
	Short: `Checks files against a SUM file.`,
	Long: strings.ReplaceAll(`Checks that the digests of the files listed in a SUM file match.

The SUM file is in the format written by |hashsum| and the standard
md5sum/sha1sum tools, one |digest  filename| per line.  Each file is
read and digested and a line with OK or FAILED is printed for it.

Note that hash values in the SUM file are treated as case insensitive.
Base64 digests are accepted if |--base64| is set.
`, "|", "`"),
	RunE: func(command *cobra.Command, args []string) error {
		cmd.CheckArgs(2, 2, command, args)
		var hashType hash.Type
		if err := hashType.Set(args[0]); err != nil {
			fmt.Println(hash.HelpString(0))
			return err
		}
		cmd.Run(command, func() error {
			in, closeInput, err := cmd.OpenInput(args[1])
			if err != nil {
				return err
			}
			defer func() { _ = closeInput() }()
			return CheckSum(os.Stdout, in, hashType)
		})
		return nil
	},
}

// CheckSum reads md5sum style lines from sums and checks each file
// listed against its digest, reporting to w.  It returns ErrMismatch
// if any file failed.
func CheckSum(w io.Writer, sums io.Reader, hashType hash.Type) error {
	id := uint64(hashType.ID())
	failed := errcount.New()
	scanner := bufio.NewScanner(sums)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return errors.Errorf("line %d: expecting \"digest  filename\"", lineNumber)
		}
		want := fields[0]
		name := strings.TrimPrefix(strings.TrimLeft(fields[1], " "), "*")

		data, err := cmd.ReadInput(name)
		if err != nil {
			digest.Errorf(name, "%v", err)
			failed.Add(errors.Wrap(ErrMismatch, name))
			_, _ = fmt.Fprintf(w, "%s: FAILED open or read\n", name)
			continue
		}
		sum, err := dispatch.Hash(data, chunks.Whole(len(data)), id)
		if err != nil {
			return err
		}
		got := cmd.FormatDigest(sum)
		if strings.EqualFold(got, want) {
			digest.Debugf(name, "%v OK", hashType)
			_, _ = fmt.Fprintf(w, "%s: OK\n", name)
		} else {
			digest.Infof(name, "%v differ: want %s got %s", hashType, want, got)
			failed.Add(errors.Wrap(ErrMismatch, name))
			_, _ = fmt.Fprintf(w, "%s: FAILED\n", name)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read SUM file")
	}
	return failed.Err(fmt.Sprintf("%d file(s) did not match", failed.Count()))
}
