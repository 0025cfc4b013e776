// Package dispatch is the fixed shape boundary in front of the digest
// registry.  Callers pass an algorithm identifier and plain byte
// slices and get back either the output or one of a small set of
// errors, each of which maps onto an integer status code.
package dispatch

import (
	"github.com/digestbridge/digestbridge/digest"
	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/digestbridge/digestbridge/digest/hkdf"
	"github.com/digestbridge/digestbridge/lib/chunks"
	"github.com/pkg/errors"
)

// Status codes returned across the boundary.  A hash call returns the
// digest length on success and an hkdf call returns StatusOK.
const (
	StatusOK               = 0
	StatusUnrecognized     = -1
	StatusInvalidPartition = -2
	StatusKeyTooLong       = -3
	StatusUnsupported      = -4
	StatusShortBuffer      = -5
	StatusInternal         = -6
)

// ErrShortBuffer is returned by the *Into functions when the output
// slice can't hold the result.
var ErrShortBuffer = errors.New("output buffer too small")

// Hash cuts input into parts and digests the pieces in order with the
// algorithm selected by id.
//
// The identifier is checked before the partition so an unknown id is
// always reported as such.
func Hash(input []byte, parts []uint64, id uint64) (out []byte, err error) {
	algorithm := "unknown"
	defer func() { DefaultMetrics.onCall("hash", algorithm, out, err) }()
	hashType, err := hash.Resolve(hash.ID(id))
	if err != nil {
		return nil, err
	}
	algorithm = hashType.String()
	pieces, err := chunks.Split(input, parts)
	if err != nil {
		return nil, err
	}
	out, err = hash.Sum(hashType, pieces)
	if err != nil {
		return nil, err
	}
	digest.Debugf(hashType, "hashed %d bytes in %d parts", len(input), len(parts))
	return out, nil
}

// HKDF derives keySize bytes from password, salt and info with the
// algorithm selected by id.
func HKDF(password, salt, info []byte, keySize uint64, id uint64) (out []byte, err error) {
	algorithm := "unknown"
	defer func() { DefaultMetrics.onCall("hkdf", algorithm, out, err) }()
	hashType, err := hash.Resolve(hash.ID(id))
	if err != nil {
		return nil, err
	}
	algorithm = hashType.String()
	out, err = hkdf.Derive(hashType, password, salt, info, keySize)
	if err != nil {
		return nil, err
	}
	digest.Debugf(hashType, "derived %d bytes", keySize)
	return out, nil
}

// Extract runs only the extract step of HKDF and returns the
// pseudorandom key, which is as long as the digest.
func Extract(password, salt []byte, id uint64) (out []byte, err error) {
	algorithm := "unknown"
	defer func() { DefaultMetrics.onCall("extract", algorithm, out, err) }()
	hashType, err := hash.Resolve(hash.ID(id))
	if err != nil {
		return nil, err
	}
	algorithm = hashType.String()
	return hkdf.Extract(hashType, password, salt)
}

// Expand runs only the expand step of HKDF, stretching prk to keySize
// bytes.
func Expand(prk, info []byte, keySize uint64, id uint64) (out []byte, err error) {
	algorithm := "unknown"
	defer func() { DefaultMetrics.onCall("expand", algorithm, out, err) }()
	hashType, err := hash.Resolve(hash.ID(id))
	if err != nil {
		return nil, err
	}
	algorithm = hashType.String()
	return hkdf.Expand(hashType, prk, info, keySize)
}

// Status maps an error from this package onto its status code.  nil
// maps to StatusOK.
func Status(err error) int {
	if err == nil {
		return StatusOK
	}
	switch errors.Cause(err) {
	case hash.ErrUnrecognized:
		return StatusUnrecognized
	case chunks.ErrInvalidPartition:
		return StatusInvalidPartition
	case hkdf.ErrKeyTooLong:
		return StatusKeyTooLong
	case hash.ErrUnsupported:
		return StatusUnsupported
	case ErrShortBuffer:
		return StatusShortBuffer
	}
	return StatusInternal
}

// fail logs err and returns its status
func fail(op string, id uint64, err error) int {
	status := Status(err)
	digest.Debugf(op, "id 0x%016x: status %v: %v", id, digest.LogValue("status", status), err)
	return status
}

// HashInto runs Hash and writes the digest to the start of out.  It
// returns the digest length, or a negative status in which case out is
// untouched.
func HashInto(out []byte, input []byte, parts []uint64, id uint64) int {
	sum, err := Hash(input, parts, id)
	if err != nil {
		return fail("hash", id, err)
	}
	if len(out) < len(sum) {
		return fail("hash", id, errors.Wrapf(ErrShortBuffer, "need %d bytes, have %d", len(sum), len(out)))
	}
	return copy(out, sum)
}

// HKDFInto runs HKDF and writes the key to the start of out.  It
// returns StatusOK, or a negative status in which case out is
// untouched.
func HKDFInto(out []byte, password, salt, info []byte, keySize uint64, id uint64) int {
	key, err := HKDF(password, salt, info, keySize, id)
	if err != nil {
		return fail("hkdf", id, err)
	}
	if uint64(len(out)) < keySize {
		return fail("hkdf", id, errors.Wrapf(ErrShortBuffer, "need %d bytes, have %d", keySize, len(out)))
	}
	copy(out, key)
	return StatusOK
}
