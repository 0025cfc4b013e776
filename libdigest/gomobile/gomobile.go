// Package gomobile exports shims for gomobile use
package gomobile

import (
	"encoding/binary"

	"github.com/digestbridge/digestbridge/digest/dispatch"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/digestbridge/digestbridge/libdigest/libdigest"

	_ "golang.org/x/mobile/event/key" // make go.mod add this as a dependency
)

// DigestInitialize initializes the library
func DigestInitialize() {
	libdigest.Initialize()
}

// DigestFinalize finalizes the library
func DigestFinalize() {
	libdigest.Finalize()
}

// DigestResult is returned from DigestHash and DigestHKDF
//
//   Output holds the digest or derived key, empty on failure
//   Status is the digest length, 0 for a derived key, or a negative
//   error code
type DigestResult struct {
	Output []byte
	Status int
}

// DigestHash digests input fed as parts of the lengths in parts.
// gobind can only pass byte slices so parts holds each length as 8
// little endian bytes.  A parts whose length isn't a multiple of 8 is
// reported as an invalid partition.
//
// id is the algorithm identifier reinterpreted as a signed integer.
func DigestHash(input []byte, parts []byte, id int64) *DigestResult {
	partList, ok := decodeParts(parts)
	if !ok {
		if _, err := hash.Resolve(hash.ID(id)); err != nil {
			return &DigestResult{Status: dispatch.Status(err)}
		}
		return &DigestResult{Status: dispatch.StatusInvalidPartition}
	}
	sum, status := libdigest.Hash(input, partList, uint64(id))
	return &DigestResult{Output: sum, Status: status}
}

// DigestHKDF derives keySize bytes with HKDF.  id is the algorithm
// identifier reinterpreted as a signed integer.
func DigestHKDF(password, salt, info []byte, keySize int64, id int64) *DigestResult {
	if keySize < 0 {
		return &DigestResult{Status: dispatch.StatusKeyTooLong}
	}
	key, status := libdigest.HKDF(password, salt, info, uint64(keySize), uint64(id))
	return &DigestResult{Output: key, Status: status}
}

// decodeParts reads little endian 8 byte part lengths
func decodeParts(b []byte) ([]uint64, bool) {
	if len(b)%8 != 0 {
		return nil, false
	}
	parts := make([]uint64, len(b)/8)
	for i := range parts {
		parts[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return parts, true
}

// DigestRPCResult is returned from DigestRPC
//
//   Output will be returned as a serialized JSON object
//   Status is a HTTP status return (200=OK anything else fail)
type DigestRPCResult struct {
	Output string
	Status int
}

// DigestRPC has an interface optimised for gomobile, in particular
// the function signature is valid under gobind rules.
//
// https://pkg.go.dev/golang.org/x/mobile/cmd/gobind#hdr-Type_restrictions
func DigestRPC(method string, input string) (result *DigestRPCResult) { //nolint:deadcode
	output, status := libdigest.RPC(method, input)
	return &DigestRPCResult{
		Output: output,
		Status: status,
	}
}
