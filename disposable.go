package disposable

import (
	"io"

	"github.com/pkg/errors"
)

// The Disposable interface to be implemented by values that hold resources
// requiring a one-time release. To have the release happen when an owning
// object is disposed you must call Tracker.Register(value), after which the
// tracker will call value.Dispose() during its drain.
//
// Note, a tracker never invokes a single registration more than once, but it
// does no deduplication either: register the same value twice and its
// Dispose method is called twice.
type Disposable interface {
	// Dispose releases the resources held by this value. Returning an error
	// aborts the drain of whatever tracker invoked it, so only return errors
	// the owner cannot possibly handle internally.
	Dispose() error
}

// DisposeFunc is a functional implementation of the Disposable interface.
type DisposeFunc func() error

// Dispose calls f and adheres to the Disposable interface.
func (f DisposeFunc) Dispose() error {
	return f()
}

// FromCloser adapts an io.Closer as a Disposable. If closing fails the error
// is annotated with name, so that a drain failure identifies which resource
// broke. The annotation happens here in the adapter; trackers themselves
// propagate cleanup errors untouched.
func FromCloser(name string, c io.Closer) Disposable {
	return DisposeFunc(func() error {
		if err := c.Close(); err != nil {
			return errors.Wrapf(err, "failed to close %s", name)
		}
		return nil
	})
}
