// Package rc implements the JSON RPC registry in front of the digest
// dispatch core.
//
// To register your internal calls, call rc.Add(call).  Your function
// should take and return a Params.  It can also return an error.
// Errors of type ErrParamInvalid or ErrParamNotFound are reported as
// bad requests, everything else as an internal error.
package rc

import (
	"encoding/json"
	"io"
)

// WriteJSON writes JSON in out to w
func WriteJSON(w io.Writer, out Params) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(out)
}
