package dispatch

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"github.com/digestbridge/digestbridge/digest"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/digestbridge/digestbridge/digest/hkdf"
	"github.com/digestbridge/digestbridge/digest/rc"
	"github.com/digestbridge/digestbridge/lib/chunks"
	"github.com/pkg/errors"
)

func init() {
	rc.Add(rc.Call{
		Path:  "digest/hash",
		Fn:    rcHash,
		Title: "Digest some data with a chosen algorithm",
		Help: `
This takes the following parameters

- input - the data to digest as a hex string
- inputBase64 - the data as standard base64, used if input is not given
- parts - optional list of part lengths, default is all of input
- id - the algorithm identifier as a decimal or 0x prefixed string
- name - the algorithm name, used if id is not given
- base64 - if true return the digest as standard base64 instead of hex

The result is

- digest - the digest as a hex (or base64) string
- size - the length of the digest in bytes
- status - the status code the C library would return

Identifiers don't fit in a JSON number without losing precision so
pass them as strings.`,
	})
	rc.Add(rc.Call{
		Path:  "digest/hkdf",
		Fn:    rcHKDF,
		Title: "Derive key material with HKDF over a chosen algorithm",
		Help: `
This takes the following parameters

- password - the input keying material as a hex string
- salt - optional salt as a hex string
- info - optional context info as a hex string
- length - the number of bytes to derive
- id - the algorithm identifier as a decimal or 0x prefixed string
- name - the algorithm name, used if id is not given
- extract - if true stop after the extract step and return the
  pseudorandom key, length is ignored
- prk - a pseudorandom key as a hex string to run only the expand step
  on, password and salt are ignored
- base64 - if true return the key as standard base64 instead of hex

Each of password, salt, info and prk may instead be given as standard
base64 under the same name with a Base64 suffix, eg passwordBase64.

The result is

- key - the derived key as a hex (or base64) string
- status - the status code the C library would return`,
	})
	rc.Add(rc.Call{
		Path:  "digest/alias",
		Fn:    rcAlias,
		Title: "Make another identifier select an algorithm",
		Help: `
This takes the following parameters

- alias - the new identifier as a decimal or 0x prefixed string
- id - the identifier of the algorithm to select
- name - the algorithm name, used if id is not given

or, to register several at once

- aliases - a list of objects each with alias and name keys

Once registered the alias works in every call that takes an id.  An
alias which already selects a different algorithm is refused.

The result is

- registered - the number of aliases now in place`,
	})
	rc.Add(rc.Call{
		Path:  "digest/list",
		Fn:    rcList,
		Title: "List the known algorithms",
		Help: `
This returns an "algorithms" list with one entry for every algorithm
with its name, id (as a 0x prefixed string), size in bytes and whether
it is supported by this build.`,
	})
	rc.Add(rc.Call{
		Path:  "digest/stats",
		Fn:    rcStats,
		Title: "Count the calls made so far",
		Help: `
This returns a "calls" list with one entry for every combination of
operation (hash, hkdf, extract or expand), algorithm name and status code seen since
the library was loaded, with the number of calls.  Calls with an
unknown identifier are counted under the algorithm "unknown".`,
	})
}

// getID reads the algorithm from "id" or else "name"
func getID(in rc.Params) (uint64, error) {
	id, err := in.GetUint64("id")
	if err == nil {
		return id, nil
	}
	if rc.NotErrParamNotFound(err) {
		return 0, err
	}
	name, err := in.GetString("name")
	if err != nil {
		return 0, err
	}
	var hashType hash.Type
	if err := hashType.Set(name); err != nil {
		return 0, rc.NewErrParamInvalid(err)
	}
	return uint64(hashType.ID()), nil
}

// getBytes reads key as hex, or else key+"Base64" as base64
func getBytes(in rc.Params, key string) ([]byte, error) {
	b, err := in.GetHex(key)
	if !rc.IsErrParamNotFound(err) {
		return b, err
	}
	b, err = in.GetBase64(key + "Base64")
	if rc.IsErrParamNotFound(err) {
		return nil, rc.ErrParamNotFound(key)
	}
	return b, err
}

// getOptionalBytes is getBytes returning nil if key is missing
func getOptionalBytes(in rc.Params, key string) ([]byte, error) {
	b, err := getBytes(in, key)
	if rc.NotErrParamNotFound(err) {
		return nil, err
	}
	return b, nil
}

// getFlag reads an optional boolean
func getFlag(in rc.Params, key string) (bool, error) {
	flag, err := in.GetBool(key)
	if rc.NotErrParamNotFound(err) {
		return false, err
	}
	return flag, nil
}

// encoder returns the function to encode output with
func encoder(in rc.Params) (func([]byte) string, error) {
	asBase64, err := getFlag(in, "base64")
	if err != nil {
		return nil, err
	}
	if asBase64 {
		return base64.StdEncoding.EncodeToString, nil
	}
	return hex.EncodeToString, nil
}

func rcHash(ctx context.Context, in rc.Params) (out rc.Params, err error) {
	input, err := getBytes(in, "input")
	if err != nil {
		return nil, err
	}
	encode, err := encoder(in)
	if err != nil {
		return nil, err
	}
	parts, err := in.GetUint64Slice("parts")
	if rc.IsErrParamNotFound(err) {
		parts = chunks.Whole(len(input))
	} else if err != nil {
		return nil, err
	}
	id, err := getID(in)
	if err != nil {
		return nil, err
	}
	sum, err := Hash(input, parts, id)
	if err != nil {
		return nil, rc.NewErrParamInvalid(errors.Wrapf(err, "status %d", Status(err)))
	}
	return rc.Params{
		"digest": encode(sum),
		"size":   len(sum),
		"status": len(sum),
	}, nil
}

func rcHKDF(ctx context.Context, in rc.Params) (out rc.Params, err error) {
	id, err := getID(in)
	if err != nil {
		return nil, err
	}
	encode, err := encoder(in)
	if err != nil {
		return nil, err
	}
	extract, err := getFlag(in, "extract")
	if err != nil {
		return nil, err
	}
	info, err := getOptionalBytes(in, "info")
	if err != nil {
		return nil, err
	}
	prk, err := getOptionalBytes(in, "prk")
	if err != nil {
		return nil, err
	}
	var length uint64
	if !extract || prk != nil {
		length, err = in.GetUint64("length")
		if err != nil {
			return nil, err
		}
	}
	var password, salt, key []byte
	if prk == nil {
		password, err = getBytes(in, "password")
		if err != nil {
			return nil, err
		}
		salt, err = getOptionalBytes(in, "salt")
		if err != nil {
			return nil, err
		}
	}
	switch {
	case prk != nil:
		key, err = Expand(prk, info, length, id)
	case extract:
		key, err = Extract(password, salt, id)
	default:
		key, err = HKDF(password, salt, info, length, id)
	}
	if err != nil {
		return nil, rc.NewErrParamInvalid(errors.Wrapf(err, "status %d", Status(err)))
	}
	return rc.Params{
		"key":    encode(key),
		"status": StatusOK,
	}, nil
}

// aliasEntry is one item of the aliases list for digest/alias
type aliasEntry struct {
	Alias string `json:"alias"`
	Name  string `json:"name"`
}

// register makes alias select the algorithm id already selects
func register(alias, id uint64) error {
	hashType, err := hash.Resolve(hash.ID(id))
	if err != nil {
		return err
	}
	if err := hash.RegisterAlias(hash.ID(alias), hashType); err != nil {
		return err
	}
	digest.Infof(hashType, "alias 0x%016x registered", alias)
	return nil
}

func rcAlias(ctx context.Context, in rc.Params) (out rc.Params, err error) {
	var entries []aliasEntry
	err = in.GetStruct("aliases", &entries)
	if rc.NotErrParamNotFound(err) {
		return nil, err
	}
	var items []rc.Params
	if err == nil {
		for _, entry := range entries {
			items = append(items, rc.Params{"alias": entry.Alias, "name": entry.Name})
		}
	} else {
		items = []rc.Params{in}
	}
	for i, item := range items {
		alias, err := item.GetUint64("alias")
		if err != nil {
			return nil, err
		}
		id, err := getID(item)
		if err != nil {
			return nil, err
		}
		if err := register(alias, id); err != nil {
			return nil, rc.NewErrParamInvalid(errors.Wrapf(err, "alias %d", i))
		}
	}
	return rc.Params{"registered": len(items)}, nil
}

// Algorithm describes one entry of the digest/list output
type Algorithm struct {
	Name      string `json:"name"`
	Alias     string `json:"alias"`
	ID        string `json:"id"`
	Size      int    `json:"size"`
	Supported bool   `json:"supported"`
	MaxKey    uint64 `json:"maxKey"`
}

// Algorithms describes every registered algorithm in registration
// order.
func Algorithms() []Algorithm {
	all := hash.All()
	out := make([]Algorithm, 0, len(all))
	for _, hashType := range all {
		out = append(out, Algorithm{
			Name:      hashType.String(),
			Alias:     hashType.Alias(),
			ID:        "0x" + strconv.FormatUint(uint64(hashType.ID()), 16),
			Size:      hashType.Size(),
			Supported: hashType.IsSupported(),
			MaxKey:    hkdf.MaxLength(hashType),
		})
	}
	return out
}

func rcList(ctx context.Context, in rc.Params) (out rc.Params, err error) {
	return rc.Params{
		"algorithms": Algorithms(),
	}, nil
}

func rcStats(ctx context.Context, in rc.Params) (out rc.Params, err error) {
	calls, err := CallCounts()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read metrics")
	}
	return rc.Params{
		"calls": calls,
	}, nil
}
