package syncbridge

import (
	"context"
	"testing"
	"time"

	"github.com/hack-pad/gameboot/internal/vfs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSyncer struct {
	calls chan vfs.Direction
}

func (c *countingSyncer) Sync(ctx context.Context, dir vfs.Direction) error {
	c.calls <- dir
	return nil
}

func TestDeferredWaitsForResolve(t *testing.T) {
	t.Parallel()
	deferred := NewDeferred(0)
	syncer := &countingSyncer{calls: make(chan vfs.Direction, 1)}

	errs := make(chan error, 1)
	go func() {
		errs <- deferred.Sync(context.Background(), vfs.Load)
	}()

	select {
	case <-errs:
		t.Fatal("Sync returned before Resolve")
	case <-time.After(20 * time.Millisecond):
	}

	deferred.Resolve(syncer, nil)
	require.NoError(t, <-errs)
	assert.Equal(t, vfs.Load, <-syncer.calls)
}

func TestDeferredResolveError(t *testing.T) {
	t.Parallel()
	deferred := NewDeferred(0)
	deferred.Resolve(nil, errors.New("quota exceeded"))
	deferred.Resolve(&countingSyncer{calls: make(chan vfs.Direction, 1)}, nil)

	err := deferred.Sync(context.Background(), vfs.Save)
	assert.EqualError(t, err, "Storage unavailable: quota exceeded")
}

func TestDeferredNilSyncer(t *testing.T) {
	t.Parallel()
	deferred := NewDeferred(0)
	deferred.Resolve(nil, nil)
	assert.EqualError(t, deferred.Sync(context.Background(), vfs.Save), "Storage unavailable: no storage configured")
}

func TestDeferredContextDone(t *testing.T) {
	t.Parallel()
	deferred := NewDeferred(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := deferred.Sync(ctx, vfs.Load)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDeferredTimeout(t *testing.T) {
	t.Parallel()
	deferred := NewDeferred(10 * time.Millisecond)
	err := deferred.Sync(context.Background(), vfs.Load)
	assert.EqualError(t, err, "Storage was not opened within 10ms")
}

func TestUnresolvedStorageStillCallsBack(t *testing.T) {
	t.Parallel()
	host := &recordingHost{}
	bridge := New(NewDeferred(10*time.Millisecond), host)

	result := awaitResult(t, bridge.RequestSync(vfs.Load, 42))
	require.Error(t, result.Err)
	assert.Equal(t, []callback{
		{isLoad: true, errMessage: "Storage was not opened within 10ms", handle: 42},
	}, host.Callbacks())
	assert.Equal(t, Idle, bridge.Status())
}
