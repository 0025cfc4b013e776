// Package libdigest exports the digest dispatch core for use as a
// library.  It is shared by the C shims in the parent directory and the
// gomobile bindings.
package libdigest

import (
	"context"
	"runtime"

	"github.com/digestbridge/digestbridge/digest"
	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/rc"
)

// MaxDigestSize is the longest digest any algorithm produces.  Callers
// of Hash across the C boundary must supply at least this many bytes.
const MaxDigestSize = 64

// Initialize initializes the library
func Initialize() {
	digest.Debugf("libdigest", "Version %q initialized", digest.Version)
}

// Finalize finalizes the library
func Finalize() {
	runtime.GC()
}

// Hash digests the parts of input with the algorithm selected by id.
// It returns the digest, or nil and a negative status code.
//
// input is never retained.
func Hash(input []byte, parts []uint64, id uint64) ([]byte, int) {
	sum, err := dispatch.Hash(input, parts, id)
	if err != nil {
		return nil, dispatch.Status(err)
	}
	return sum, len(sum)
}

// HKDF derives keySize bytes with the algorithm selected by id.  It
// returns the key and 0, or nil and a negative status code.
func HKDF(password, salt, info []byte, keySize, id uint64) ([]byte, int) {
	key, err := dispatch.HKDF(password, salt, info, keySize, id)
	if err != nil {
		return nil, dispatch.Status(err)
	}
	return key, dispatch.StatusOK
}

// RPC does a single RPC call. The inputs are (method, input)
// and the output is (output, status).
//
//   method is a string, eg "digest/hash"
//   input should be a serialized JSON object
//   output will be returned as a serialized JSON object
//   status is a HTTP status return (200=OK anything else fail)
func RPC(method string, input string) (output string, status int) {
	return rc.CallJSON(context.Background(), method, input)
}
