package rc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/digestbridge/digestbridge/digest"
	"github.com/pkg/errors"
)

// writeError returns a formatted error string and the status passed in
func writeError(path string, in Params, err error, status int) (string, int) {
	digest.Errorf(nil, "rc: %q: error: %v", path, err)
	var w strings.Builder
	// Adjust the error return for some well known errors
	if IsErrParamInvalid(err) || IsErrParamNotFound(err) {
		status = http.StatusBadRequest
	}
	err = WriteJSON(&w, Params{
		"status": status,
		"error":  err.Error(),
		"input":  in,
		"path":   path,
	})
	if err != nil {
		// can't return the error at this point
		return fmt.Sprintf(`{"error": "rc: failed to write JSON output: %v"}`, err), status
	}
	return w.String(), status
}

// CallJSON runs the method with input, which should be a serialized
// JSON object, and returns a serialized JSON object along with an HTTP
// style status (200=OK anything else fail).
//
// An empty input is treated as {}.
func CallJSON(ctx context.Context, method string, input string) (output string, status int) {
	in := make(Params)
	if strings.TrimSpace(input) != "" {
		err := json.NewDecoder(strings.NewReader(input)).Decode(&in)
		if err != nil {
			return writeError(method, in, errors.Wrap(err, "failed to read input JSON"), http.StatusBadRequest)
		}
	}

	// Find the call
	call := Calls.Get(strings.Trim(method, "/"))
	if call == nil {
		return writeError(method, in, errors.Errorf("couldn't find method %q", method), http.StatusNotFound)
	}

	digest.Debugf(nil, "rc: %q: with parameters %+v", method, in)
	out, err := call.Fn(ctx, in)
	if err != nil {
		return writeError(method, in, err, http.StatusInternalServerError)
	}
	if out == nil {
		out = make(Params)
	}

	digest.Debugf(nil, "rc: %q: reply %+v: %v", method, out, err)

	var w strings.Builder
	err = WriteJSON(&w, out)
	if err != nil {
		digest.Errorf(nil, "rc: failed to write JSON output: %v", err)
		return writeError(method, in, err, http.StatusInternalServerError)
	}
	return w.String(), http.StatusOK
}
