package pool

import (
	"errors"
	"fmt"
)

// Construction errors. These are fatal configuration problems reported
// synchronously by New.
var (
	// ErrInvalidCapacity indicates the requested pool capacity was not positive.
	ErrInvalidCapacity = errors.New("pool capacity must be positive")
	// ErrNilFactory indicates no factory was provided for creating servers.
	ErrNilFactory = errors.New("pool factory must not be nil")
)

// InitializationError is returned by Initialize when one of the factory
// calls fails. The pool is unusable afterwards: every server created
// during the attempt has been disposed and the pool is in StateShutdown.
// The original factory error is available via Unwrap.
type InitializationError struct {
	Pool string
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("pool %q: initialization failed: %v", e.Pool, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// StateError is returned when an operation is attempted in a state that
// does not allow it, e.g. Acquire before Initialize or after Shutdown.
// Unlike InitializationError it does not indicate the pool lost any
// servers; the caller simply used it at the wrong time.
type StateError struct {
	Pool  string
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("pool %q: cannot %s while %s", e.Pool, e.Op, e.State)
}
