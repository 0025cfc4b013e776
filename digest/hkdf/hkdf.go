// Package hkdf derives key material with HKDF (RFC 5869) over any
// digest in the registry.
package hkdf

import (
	"io"

	"github.com/digestbridge/digestbridge/digest/hash"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// ErrKeyTooLong is returned when more output is asked for than
// 255 blocks of the underlying digest.
var ErrKeyTooLong = errors.New("requested key too long")

// MaxLength returns the most key material HKDF can produce with
// hashType, or 0 if hashType has no digest.
func MaxLength(hashType hash.Type) uint64 {
	return 255 * uint64(hashType.Size())
}

func checkLength(hashType hash.Type, length uint64) error {
	if limit := MaxLength(hashType); length > limit {
		return errors.Wrapf(ErrKeyTooLong, "%d bytes asked for but %v can make at most %d", length, hashType, limit)
	}
	return nil
}

// Derive runs extract then expand and returns exactly length bytes.
//
// An empty salt is replaced by a string of zeros as long as the digest.
func Derive(hashType hash.Type, password, salt, info []byte, length uint64) ([]byte, error) {
	newFunc, err := hashType.NewFunc()
	if err != nil {
		return nil, err
	}
	if err := checkLength(hashType, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(newFunc, password, salt, info), out); err != nil {
		return nil, errors.Wrap(err, "hkdf expand")
	}
	return out, nil
}

// Extract returns the pseudorandom key for password and salt.
func Extract(hashType hash.Type, password, salt []byte) ([]byte, error) {
	newFunc, err := hashType.NewFunc()
	if err != nil {
		return nil, err
	}
	return hkdf.Extract(newFunc, password, salt), nil
}

// Expand stretches a pseudorandom key from Extract to length bytes.
func Expand(hashType hash.Type, prk, info []byte, length uint64) ([]byte, error) {
	newFunc, err := hashType.NewFunc()
	if err != nil {
		return nil, err
	}
	if err := checkLength(hashType, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(newFunc, prk, info), out); err != nil {
		return nil, errors.Wrap(err, "hkdf expand")
	}
	return out, nil
}
