// Package errcount counts errors and keeps the last one so that a run
// over many inputs reports one summary rather than every failure.
package errcount

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrCount stores the state of the error counter.
type ErrCount struct {
	mu      sync.Mutex
	lastErr error
	count   int
}

// New makes a new error counter
func New() *ErrCount {
	return new(ErrCount)
}

// Add an error to the error count.
//
// err may be nil.
//
// Thread safe.
func (ec *ErrCount) Add(err error) {
	if err == nil {
		return
	}
	ec.mu.Lock()
	ec.count++
	ec.lastErr = err
	ec.mu.Unlock()
}

// Count returns the number of errors added so far
func (ec *ErrCount) Count() int {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.count
}

// Err returns the error summary so far - may be nil
//
// txt is put in front of the error summary
//
//	txt: %d errors: last error: %v
//
// or this if only one error
//
//	txt: %v
//
// errors.Cause of the result is the cause of the last error.
func (ec *ErrCount) Err(txt string) error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.count == 0 {
		return nil
	} else if ec.count == 1 {
		return errors.Wrap(ec.lastErr, txt)
	}
	return errors.Wrapf(ec.lastErr, "%s: %d errors: last error", txt, ec.count)
}
