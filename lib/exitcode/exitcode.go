// Package exitcode exports digestbridge's exit status numbers.
//
// The codes after UncategorizedError follow the boundary status codes
// so a failing command tells a script what the C library would have
// returned.
package exitcode

const (
	// Success is returned when the command finished without error.
	Success = iota
	// UsageError is returned when there was a syntax or usage error in the arguments.
	UsageError
	// UncategorizedError is returned for any error not categorised otherwise.
	UncategorizedError
	// Unrecognized is returned when the algorithm identifier is unknown.
	Unrecognized
	// InvalidPartition is returned when the part lengths run past the input.
	InvalidPartition
	// KeyTooLong is returned when more HKDF output is asked for than the hash allows.
	KeyTooLong
	// Unsupported is returned when the algorithm is registered without an implementation.
	Unsupported
	// Mismatch is returned by checksum when a file did not match.
	Mismatch
)
