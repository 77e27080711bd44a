package disposable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempStore shows the intended embedding pattern: the owning type embeds
// DisposableResource and re-exposes Dispose as its disposal entry point.
type tempStore struct {
	DisposableResource
	flushed bool
}

func newTempStore() *tempStore {
	s := &tempStore{}
	s.RegisterFunc(func() error {
		s.flushed = true
		return nil
	})
	return s
}

func TestResourceDisposeWhileInUse(t *testing.T) {
	s := newTempStore()
	require.NoError(t, s.Acquire())

	err := s.Dispose()
	require.ErrorIs(t, err, ErrInUse)
	assert.False(t, s.IsDisposed())
	assert.False(t, s.flushed)

	s.Release()
	require.NoError(t, s.Dispose())
	assert.True(t, s.IsDisposed())
	assert.True(t, s.flushed)
}

func TestResourceNestedAcquire(t *testing.T) {
	s := newTempStore()
	require.NoError(t, s.Acquire())
	require.NoError(t, s.Acquire())

	s.Release()
	require.ErrorIs(t, s.Dispose(), ErrInUse)

	s.Release()
	require.NoError(t, s.CanDispose())
	require.NoError(t, s.Dispose())
	assert.True(t, s.flushed)
}

func TestResourceAcquireAfterDispose(t *testing.T) {
	s := newTempStore()
	require.NoError(t, s.Dispose())

	err := s.Acquire()
	require.Error(t, err)
	_, ok := IsDisposedError(err)
	assert.True(t, ok)
}

func TestResourceReleaseWithoutAcquire(t *testing.T) {
	s := newTempStore()
	assert.Panics(t, func() { s.Release() })
}

func TestResourceCanDispose(t *testing.T) {
	s := newTempStore()
	require.NoError(t, s.CanDispose())

	require.NoError(t, s.Acquire())
	require.ErrorIs(t, s.CanDispose(), ErrInUse)

	s.Release()
	require.NoError(t, s.CanDispose())
}
