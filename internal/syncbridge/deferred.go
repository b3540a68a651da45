package syncbridge

import (
	"context"
	"sync"
	"time"

	"github.com/hack-pad/gameboot/internal/vfs"
	"github.com/pkg/errors"
)

// Deferred is a Syncer whose storage is opened after the bridge is exposed.
// Sync calls wait until Resolve is called, their context ends, or the timeout passes.
type Deferred struct {
	once    sync.Once
	ready   chan struct{}
	timeout time.Duration
	syncer  Syncer
	err     error
}

var _ Syncer = &Deferred{}

// NewDeferred returns an unresolved Deferred. A zero timeout waits for Resolve indefinitely.
func NewDeferred(timeout time.Duration) *Deferred {
	return &Deferred{
		ready:   make(chan struct{}),
		timeout: timeout,
	}
}

// Resolve sets the underlying Syncer, or the error every Sync returns when storage failed to open.
// Only the first call has any effect.
func (d *Deferred) Resolve(syncer Syncer, err error) {
	d.once.Do(func() {
		if err == nil && syncer == nil {
			err = errors.New("no storage configured")
		}
		d.syncer, d.err = syncer, err
		close(d.ready)
	})
}

func (d *Deferred) Sync(ctx context.Context, dir vfs.Direction) error {
	var expired <-chan time.Time
	if d.timeout > 0 {
		timer := time.NewTimer(d.timeout)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case <-d.ready:
	case <-expired:
		return errors.Errorf("Storage was not opened within %s", d.timeout)
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "Storage not ready")
	}
	if d.err != nil {
		return errors.Wrap(d.err, "Storage unavailable")
	}
	return d.syncer.Sync(ctx, dir)
}
