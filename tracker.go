package disposable

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/taskcluster/slugid-go/slugid"
)

var discardLogger = func() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	logger.Level = logrus.PanicLevel
	return logger
}()

// An Option configures a Tracker created with New.
type Option func(*Tracker)

// WithLogger sets the logger used to trace registrations and drains.
// Registrations and drains are logged at debug level, drain failures at
// warning level. By default all messages are discarded.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

// A Tracker owns the disposal state for exactly one object: whether the
// object has been disposed yet, and the ordered list of cleanup actions to
// run when it is. The zero value is a valid tracker; use New to give the
// tracker an owner name for error messages, or to attach a logger.
//
// A Tracker is itself Disposable, so a tracker may be registered with
// another tracker to tie their life-times together.
//
// Trackers are meant for a single logical owner and do no internal locking.
// Callers needing to share one across goroutines must synchronize
// externally.
type Tracker struct {
	owner    string
	disposed bool
	pending  []func() error
	log      logrus.FieldLogger
}

// New creates a Tracker identifying its owner as owner in error messages
// and log entries. If owner is empty a generated identity is assigned, so
// DisposedError messages stay debuggable even for anonymous trackers.
func New(owner string, options ...Option) *Tracker {
	t := &Tracker{owner: owner}
	for _, option := range options {
		option(t)
	}
	if t.log != nil {
		t.log = t.log.WithField("owner", t.ident())
	}
	return t
}

func (t *Tracker) ident() string {
	if t.owner == "" {
		t.owner = "disposable-" + slugid.Nice()
	}
	return t.owner
}

func (t *Tracker) logger() logrus.FieldLogger {
	if t.log == nil {
		return discardLogger
	}
	return t.log
}

// Owner returns the human-readable identification of the owning object.
func (t *Tracker) Owner() string {
	return t.ident()
}

// IsDisposed reports whether Dispose has been called. Once true it never
// reverts.
func (t *Tracker) IsDisposed() bool {
	return t.disposed
}

// CheckDisposed returns nil while the owning object is active, and a
// DisposedError naming the owner once it has been disposed. It is intended
// as a guard at the top of any operation that is invalid post-disposal.
func (t *Tracker) CheckDisposed() error {
	if t.disposed {
		return DisposedError{owner: t.ident()}
	}
	return nil
}

// Register takes a Disposable whose Dispose method will be invoked when the
// owning object is disposed. Nothing is invoked at registration time.
//
// Registering on an already disposed tracker never fails, but the
// registration is dead: the drain has already run, and will never run
// again, so the Dispose method will never be invoked. Callers wanting a
// hard failure instead should guard with CheckDisposed first.
func (t *Tracker) Register(d Disposable) {
	t.pending = append(t.pending, d.Dispose)
	t.logger().Debug("registered disposable for cleanup")
}

// RegisterFunc is like Register for a bare cleanup function.
func (t *Tracker) RegisterFunc(fn func() error) {
	t.pending = append(t.pending, fn)
	t.logger().Debug("registered cleanup function")
}

// Dispose runs all pending cleanup actions in reverse registration order
// and marks the tracker disposed. Calling Dispose again is a no-op, so all
// registered actions run at-most-once regardless of how many times the
// owning object is disposed.
//
// The disposed flag is flipped before the drain starts. This is the
// reentrancy guard: a cleanup action that calls back into Dispose, directly
// or indirectly, observes the disposed state and no-ops instead of
// recursing. A cleanup action that registers new actions during the drain
// is also fine, the new actions are picked up and run before Dispose
// returns.
//
// If a cleanup action returns an error the drain is aborted and the error
// propagates to the caller untouched; actions not yet invoked are abandoned
// and will never run, as the tracker is already marked disposed. There is
// no aggregation of multiple failures, the first failure wins.
func (t *Tracker) Dispose() error {
	if t.disposed {
		return nil
	}
	t.disposed = true
	t.logger().WithField("pending", len(t.pending)).Debug("disposing")
	for len(t.pending) > 0 {
		i := len(t.pending) - 1
		fn := t.pending[i]
		t.pending = t.pending[:i]
		if err := fn(); err != nil {
			t.logger().WithError(err).Warn("cleanup action failed, aborting drain")
			return err
		}
	}
	return nil
}
