// Package hkdf provides the hkdf command.
package hkdf

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/digestbridge/digestbridge/cmd"
	"github.com/digestbridge/digestbridge/digest/config/flags"
	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Options for the hkdf command
type Options struct {
	Salt     string
	Info     string
	Length   uint64
	HexInput bool
	Extract  bool
	ID       string
}

// Opt is the options set on the command line
var Opt = Options{
	Length: 32,
}

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.StringVarP(cmdFlags, &Opt.Salt, "salt", "", Opt.Salt, "Salt for the extract step")
	flags.StringVarP(cmdFlags, &Opt.Info, "info", "", Opt.Info, "Context info for the expand step")
	flags.Uint64VarP(cmdFlags, &Opt.Length, "length", "l", Opt.Length, "Number of bytes of key material to derive")
	flags.BoolVarP(cmdFlags, &Opt.HexInput, "hex", "", Opt.HexInput, "Password, salt and info are hex encoded")
	flags.BoolVarP(cmdFlags, &Opt.Extract, "extract", "", Opt.Extract, "Only run the extract step and print the pseudorandom key")
	flags.StringVarP(cmdFlags, &Opt.ID, "id", "", Opt.ID, "Select the algorithm by numeric identifier (decimal or 0x prefixed) instead of by name")
}

var commandDefinition = &cobra.Command{
	Use:   "hkdf <hash> password",
	Short: `Derives key material with HKDF.`,
	Long: `
Derives --length bytes of key material from the password with HKDF
(RFC 5869) using the hash named for HMAC, and prints it.

    $ digestbridge hkdf sha256 --salt NaCl --info example --length 16 secret

Use --hex to pass binary password, salt and info as hex.  At most 255
times the digest length of the hash may be derived.

Use --extract to stop after the extract step and print the
pseudorandom key, which is always the digest length.  --info and
--length are ignored then.

Use --id to select the algorithm by its numeric identifier, in which
case the only argument is the password.
`,
	RunE: func(command *cobra.Command, args []string) error {
		var id uint64
		if Opt.ID != "" {
			cmd.CheckArgs(1, 1, command, args)
			var err error
			id, err = strconv.ParseUint(Opt.ID, 0, 64)
			if err != nil {
				return errors.Wrapf(err, "bad --id %q", Opt.ID)
			}
		} else {
			cmd.CheckArgs(2, 2, command, args)
			var hashType hash.Type
			if err := hashType.Set(args[0]); err != nil {
				fmt.Print(hash.HelpString(0))
				return err
			}
			id = uint64(hashType.ID())
			args = args[1:]
		}
		cmd.Run(command, func() error {
			return Derive(os.Stdout, &Opt, args[0], id)
		})
		return nil
	},
}

// decode reads s as hex if opt.HexInput is set, or as raw bytes
func (opt *Options) decode(what, s string) ([]byte, error) {
	if !opt.HexInput {
		return []byte(s), nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "bad hex in %s", what)
	}
	return b, nil
}

// Derive writes the key derived from password with opt to w
func Derive(w io.Writer, opt *Options, password string, id uint64) error {
	pw, err := opt.decode("password", password)
	if err != nil {
		return err
	}
	salt, err := opt.decode("salt", opt.Salt)
	if err != nil {
		return err
	}
	info, err := opt.decode("info", opt.Info)
	if err != nil {
		return err
	}
	var key []byte
	if opt.Extract {
		key, err = dispatch.Extract(pw, salt, id)
	} else {
		key, err = dispatch.HKDF(pw, salt, info, opt.Length, id)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, cmd.FormatDigest(key))
	return err
}
