// Package chunks cuts a flat buffer into the ordered pieces a caller
// wants fed to an incremental digest.
package chunks

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPartition is returned when the part lengths run past the
// end of the input.
var ErrInvalidPartition = errors.New("invalid partition")

// Check returns an error if parts can't be cut from a buffer of total
// bytes.  It never overflows however large the parts are.
func Check(total uint64, parts []uint64) error {
	var pos uint64
	for i, part := range parts {
		if part > total-pos {
			return errors.Wrapf(ErrInvalidPartition, "part %d of length %d starts at %d but input is only %d bytes", i, part, pos, total)
		}
		pos += part
	}
	return nil
}

// Split copies consecutive slices of input with the lengths in parts.
//
// Each returned chunk is a fresh copy so input may be reused as soon
// as Split returns.  Bytes after the last part are ignored.  An empty
// parts gives an empty, non nil, result.
func Split(input []byte, parts []uint64) ([][]byte, error) {
	if err := Check(uint64(len(input)), parts); err != nil {
		return nil, err
	}
	out := make([][]byte, 0, len(parts))
	var pos uint64
	for _, part := range parts {
		chunk := make([]byte, part)
		copy(chunk, input[pos:pos+part])
		out = append(out, chunk)
		pos += part
	}
	return out, nil
}

// Whole returns the parts list which feeds all of a buffer of size n in
// one go.
func Whole(n int) []uint64 {
	if n == 0 {
		return []uint64{}
	}
	return []uint64{uint64(n)}
}

// Parse reads a comma separated list of part lengths such as "1,2,3".
// An empty string is an empty list.
func Parse(s string) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []uint64{}, nil
	}
	fields := strings.Split(s, ",")
	parts := make([]uint64, 0, len(fields))
	for _, field := range fields {
		part, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad part length %q", field)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// Format is the inverse of Parse
func Format(parts []uint64) string {
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = strconv.FormatUint(part, 10)
	}
	return strings.Join(fields, ",")
}
