package disposable

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInUse is returned by DisposableResource.Dispose to indicate that the
// resource is currently acquired and cannot be disposed yet.
var ErrInUse = errors.New("resource is currently in use")

// The DisposedError type is returned by Tracker.CheckDisposed once the
// owning object has been disposed. It is an expected guard-clause signal,
// not a fatal condition: callers use it to reject operations that are
// invalid post-disposal.
type DisposedError struct {
	owner string
}

// Error returns the error message and adheres to the error interface.
func (e DisposedError) Error() string {
	return fmt.Sprintf("%s has been disposed", e.owner)
}

// Owner returns the human-readable identification of the disposed object,
// as given to New or generated for anonymous trackers.
func (e DisposedError) Owner() string {
	return e.owner
}

// IsDisposedError casts error to DisposedError.
//
// This is mostly because it's hard to remember that error isn't supposed to
// be cast to *DisposedError.
func IsDisposedError(err error) (e DisposedError, ok bool) {
	e, ok = err.(DisposedError)
	return
}
