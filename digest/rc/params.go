// Parameter parsing

package rc

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Params is the input and output type for the Func
type Params map[string]interface{}

// ErrParamNotFound - this is returned from the Get* functions if the
// parameter isn't found along with a zero value of the requested
// item.
//
// Returning an error of this type from an rc.Func will cause the http
// method to return http.StatusBadRequest
type ErrParamNotFound string

// Error turns this error into a string
func (e ErrParamNotFound) Error() string {
	return fmt.Sprintf("Didn't find key %q in input", string(e))
}

// IsErrParamNotFound returns whether err is ErrParamNotFound
func IsErrParamNotFound(err error) bool {
	_, isNotFound := err.(ErrParamNotFound)
	return isNotFound
}

// NotErrParamNotFound returns true if err != nil and
// !IsErrParamNotFound(err)
//
// This is for checking error returns of the Get* functions to ignore
// error not found returns and take the default value.
func NotErrParamNotFound(err error) bool {
	return err != nil && !IsErrParamNotFound(err)
}

// ErrParamInvalid - this is returned from the Get* functions if the
// parameter is invalid.
//
// Returning an error of this type from an rc.Func will cause the http
// method to return http.StatusBadRequest
type ErrParamInvalid struct {
	error
}

// NewErrParamInvalid returns new ErrParamInvalid from err
func NewErrParamInvalid(err error) ErrParamInvalid {
	return ErrParamInvalid{err}
}

// IsErrParamInvalid returns whether err is ErrParamInvalid
func IsErrParamInvalid(err error) bool {
	_, isInvalid := err.(ErrParamInvalid)
	return isInvalid
}

// Reshape reshapes one blob of data into another via json serialization
//
// out should be a pointer type
//
// This isn't a very efficient way of dealing with this!
func Reshape(out interface{}, in interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "Reshape failed to Marshal")
	}
	err = json.Unmarshal(b, out)
	if err != nil {
		return errors.Wrapf(err, "Reshape failed to Unmarshal")
	}
	return nil
}

// Get gets a parameter from the input
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and the returned value will be nil.
func (p Params) Get(key string) (interface{}, error) {
	value, ok := p[key]
	if !ok {
		return nil, ErrParamNotFound(key)
	}
	return value, nil
}

// GetString gets a string parameter from the input
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and the returned value will be "".
func (p Params) GetString(key string) (string, error) {
	value, err := p.Get(key)
	if err != nil {
		return "", err
	}
	str, ok := value.(string)
	if !ok {
		return "", ErrParamInvalid{errors.Errorf("expecting string value for key %q (was %T)", key, value)}
	}
	return str, nil
}

// maxExactFloat is the largest integer a float64 holds exactly
const maxExactFloat = 1 << 53

// GetUint64 gets a uint64 parameter from the input
//
// Strings may be decimal or carry a 0x prefix.  JSON numbers above
// 2^53 lose precision so they are rejected; send those as strings.
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and the returned value will be 0.
func (p Params) GetUint64(key string) (uint64, error) {
	value, err := p.Get(key)
	if err != nil {
		return 0, err
	}
	switch x := value.(type) {
	case int:
		if x < 0 {
			return 0, ErrParamInvalid{errors.Errorf("key %q (%v) is negative", key, value)}
		}
		return uint64(x), nil
	case int64:
		if x < 0 {
			return 0, ErrParamInvalid{errors.Errorf("key %q (%v) is negative", key, value)}
		}
		return uint64(x), nil
	case uint64:
		return x, nil
	case float64:
		if x < 0 || x > maxExactFloat || x != math.Trunc(x) {
			return 0, ErrParamInvalid{errors.Errorf("key %q (%v) is not an exact uint64 - pass it as a string", key, value)}
		}
		return uint64(x), nil
	case string:
		u, err := strconv.ParseUint(x, 0, 64)
		if err != nil {
			return 0, ErrParamInvalid{errors.Wrapf(err, "couldn't parse key %q (%v) as uint64", key, value)}
		}
		return u, nil
	}
	return 0, ErrParamInvalid{errors.Errorf("expecting uint64 value for key %q (was %T)", key, value)}
}

// GetBool gets a boolean parameter from the input
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and the returned value will be false.
func (p Params) GetBool(key string) (bool, error) {
	value, err := p.Get(key)
	if err != nil {
		return false, err
	}
	switch x := value.(type) {
	case int:
		return x != 0, nil
	case int64:
		return x != 0, nil
	case float64:
		return x != 0, nil
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return false, ErrParamInvalid{errors.Wrapf(err, "couldn't parse key %q (%v) as bool", key, value)}
		}
		return b, nil
	}
	return false, ErrParamInvalid{errors.Errorf("expecting bool value for key %q (was %T)", key, value)}
}

// GetHex gets a hex encoded byte string parameter from the input
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and the returned value will be nil.
func (p Params) GetHex(key string) ([]byte, error) {
	str, err := p.GetString(key)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, ErrParamInvalid{errors.Wrapf(err, "couldn't parse key %q as hex", key)}
	}
	return b, nil
}

// GetBase64 gets a standard base64 encoded byte string parameter from
// the input
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and the returned value will be nil.
func (p Params) GetBase64(key string) ([]byte, error) {
	str, err := p.GetString(key)
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return nil, ErrParamInvalid{errors.Wrapf(err, "couldn't parse key %q as base64", key)}
	}
	return b, nil
}

// GetUint64Slice gets a list of uint64 from the input.  Each element
// is parsed as by GetUint64.
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and the returned value will be nil.
func (p Params) GetUint64Slice(key string) ([]uint64, error) {
	value, err := p.Get(key)
	if err != nil {
		return nil, err
	}
	var items []interface{}
	switch x := value.(type) {
	case []interface{}:
		items = x
	case []uint64:
		return append([]uint64{}, x...), nil
	case []int:
		items = make([]interface{}, len(x))
		for i := range x {
			items[i] = x[i]
		}
	default:
		return nil, ErrParamInvalid{errors.Errorf("expecting list value for key %q (was %T)", key, value)}
	}
	out := make([]uint64, len(items))
	for i, item := range items {
		u, err := Params{key: item}.GetUint64(key)
		if err != nil {
			return nil, ErrParamInvalid{errors.Wrapf(err, "item %d", i)}
		}
		out[i] = u
	}
	return out, nil
}

// GetStruct gets a struct from key from the input into the struct
// pointed to by out. out must be a pointer type.
//
// If the parameter isn't found then error will be of type
// ErrParamNotFound and out will be unchanged.
func (p Params) GetStruct(key string, out interface{}) error {
	value, err := p.Get(key)
	if err != nil {
		return err
	}
	err = Reshape(out, value)
	if err != nil {
		return ErrParamInvalid{errors.Wrapf(err, "key %q", key)}
	}
	return nil
}
