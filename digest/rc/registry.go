package rc

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/digestbridge/digestbridge/digest"
)

// Func is the signature every RPC handler implements
type Func func(ctx context.Context, in Params) (out Params, err error)

// Call binds a path to its handler along with the text shown by
// rc/list.
type Call struct {
	Path  string // eg "digest/hash", no leading or trailing /
	Fn    Func   `json:"-"`
	Title string // one line summary
	Help  string // parameters and results, markdown
}

// Registry maps paths to Calls.  It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	call map[string]*Call
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		call: make(map[string]*Call),
	}
}

// Add registers call, replacing any Call already at its path
func (r *Registry) Add(call Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	call.Path = strings.Trim(call.Path, "/")
	call.Help = strings.TrimSpace(call.Help)
	digest.Debugf(nil, "RPC: registered %q", call.Path)
	r.call[call.Path] = &call
}

// Get returns the Call at path or nil
func (r *Registry) Get(path string) *Call {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.call[path]
}

// List returns the Calls sorted by path
func (r *Registry) List() (out []*Call) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var keys []string
	for key := range r.call {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, r.call[key])
	}
	return out
}

// Calls holds every handler the packages register from init
var Calls = NewRegistry()

// Add registers call in Calls
func Add(call Call) {
	Calls.Add(call)
}
