// Package libdigest exports shims for C library use
//
// This directory contains code to build the digest dispatch core as a
// C library and the shims for calling it from C.
//
// Build a shared library like this:
//
//     go build --buildmode=c-shared -o libdigest.so github.com/digestbridge/digestbridge/libdigest
//
// Build a static library like this:
//
//     go build --buildmode=c-archive -o libdigest.a github.com/digestbridge/digestbridge/libdigest
//
// Both the above commands will also generate `libdigest.h` which should
// be `#include`d in `C` programs wishing to use the library.
//
// The library will depend on `libdl` and `libpthread`.
package main

/*
#include <stdint.h>
#include <stddef.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/digestbridge/digestbridge/libdigest/libdigest"
)

// DigestInitialize initializes the library
//
//export DigestInitialize
func DigestInitialize() {
	libdigest.Initialize()
}

// DigestFinalize finalizes the library
//
//export DigestFinalize
func DigestFinalize() {
	libdigest.Finalize()
}

// goBytes copies n bytes at p into Go memory.  A nil p is only valid
// with n == 0.
func goBytes(p *C.uint8_t, n C.size_t) []byte {
	out := make([]byte, int(n))
	if n > 0 {
		copy(out, unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n)))
	}
	return out
}

// goSizes copies n part lengths at p into Go memory
func goSizes(p *C.size_t, n C.size_t) []uint64 {
	out := make([]uint64, int(n))
	if n > 0 {
		for i, size := range unsafe.Slice(p, int(n)) {
			out[i] = uint64(size)
		}
	}
	return out
}

// cBytes returns the n bytes at p as a slice for writing
func cBytes(p *C.uint8_t, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// digest_hash digests in_len bytes at in, fed as parts_len pieces
// whose lengths are at parts, with the algorithm selected by
// algorithm.  On success the digest is written to out, which must
// have room for 64 bytes, and its length returned.  On failure a
// negative status is returned and out is not touched.
//
//export digest_hash
func digest_hash(in *C.uint8_t, inLen C.size_t, parts *C.size_t, partsLen C.size_t, algorithm C.uint64_t, out *C.uint8_t) C.int { //nolint:golint
	sum, status := libdigest.Hash(goBytes(in, inLen), goSizes(parts, partsLen), uint64(algorithm))
	if status < 0 {
		return C.int(status)
	}
	copy(cBytes(out, len(sum)), sum)
	return C.int(status)
}

// digest_hkdf derives key_size bytes from the password, salt and info
// buffers with HKDF over the algorithm selected by algorithm.  On
// success the key is written to out, which must have room for
// key_size bytes, and 0 returned.  On failure a negative status is
// returned and out is not touched.
//
//export digest_hkdf
func digest_hkdf(pw *C.uint8_t, pwLen C.size_t, salt *C.uint8_t, saltLen C.size_t, info *C.uint8_t, infoLen C.size_t, keySize C.uint64_t, algorithm C.uint64_t, out *C.uint8_t) C.int { //nolint:golint
	key, status := libdigest.HKDF(goBytes(pw, pwLen), goBytes(salt, saltLen), goBytes(info, infoLen), uint64(keySize), uint64(algorithm))
	if status < 0 {
		return C.int(status)
	}
	copy(cBytes(out, len(key)), key)
	return C.int(status)
}

// DigestRPC does a single RPC call. The inputs are (method, input)
// and the output is (output, status).
//
//   method is a string, eg "digest/hash"
//   input should be a serialized JSON object
//   output will be returned as a serialized JSON object
//   status is a HTTP status return (200=OK anything else fail)
//
// Caller is responsible for freeing the memory for output with
// DigestFreeString.
//
// Note that when calling from C output and status are returned in a
// DigestRPC_return which has two members r0 which is output and r1
// which is status.
//
//export DigestRPC
func DigestRPC(method *C.char, input *C.char) (output *C.char, status C.int) { //nolint:golint
	res, s := libdigest.RPC(C.GoString(method), C.GoString(input))
	return C.CString(res), C.int(s)
}

// DigestFreeString frees the output returned by DigestRPC
//
//export DigestFreeString
func DigestFreeString(str *C.char) {
	C.free(unsafe.Pointer(str))
}

// do nothing here - necessary for building into a C library
func main() {}
