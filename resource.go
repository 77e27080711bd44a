package disposable

// The DisposableResource implements a reference counted disposal guard for
// types embedding it. Acquire and Release bracket sections where the
// resource is in use; Dispose refuses to drain while the count is non-zero,
// returning ErrInUse instead.
//
// Embedding DisposableResource gives a type the full Tracker surface plus
// the in-use guard. Types that do not need the guard should embed Tracker
// directly.
//
// Like the Tracker this is meant for a single logical owner, there is no
// internal locking.
type DisposableResource struct {
	Tracker
	refCount uint32
}

// Acquire marks the resource as in use, incrementing the reference count.
// It fails with a DisposedError if the resource was already disposed, a
// disposed resource cannot come back into use.
func (r *DisposableResource) Acquire() error {
	if err := r.CheckDisposed(); err != nil {
		return err
	}
	r.refCount++
	return nil
}

// Release decrements the reference count. It panics if called without a
// matching Acquire.
func (r *DisposableResource) Release() {
	if r.refCount == 0 {
		panic("disposable: Release called without matching Acquire")
	}
	r.refCount--
}

// CanDispose returns ErrInUse if the resource is currently acquired. This
// is intended for embedders that override Dispose with extra steps of their
// own.
func (r *DisposableResource) CanDispose() error {
	if r.refCount > 0 {
		return ErrInUse
	}
	return nil
}

// Dispose drains the embedded Tracker, unless the resource is in use in
// which case it returns ErrInUse and remains active.
func (r *DisposableResource) Dispose() error {
	if err := r.CanDispose(); err != nil {
		return err
	}
	return r.Tracker.Dispose()
}
