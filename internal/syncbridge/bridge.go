// Package syncbridge lets native code start a persistent filesystem sync and
// get exactly one completion callback for it.
package syncbridge

import (
	"context"

	"github.com/hack-pad/gameboot/internal/log"
	"github.com/hack-pad/gameboot/internal/vfs"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// CallbackHandle identifies the native continuation to resume. It is never interpreted.
type CallbackHandle float64

// Syncer is the storage collaborator that performs the actual sync.
type Syncer interface {
	Sync(ctx context.Context, dir vfs.Direction) error
}

// Host receives completion callbacks. errMessage is empty on success.
type Host interface {
	SyncCallback(isLoad bool, errMessage string, handle CallbackHandle)
}

type Status int

const (
	Idle Status = iota
	Syncing
)

func (s Status) String() string {
	if s == Syncing {
		return "syncing"
	}
	return "idle"
}

type Result struct {
	Direction vfs.Direction
	Handle    CallbackHandle
	Err       error
}

// unknownError stands in for errors with no message, which the host would otherwise read as success.
const unknownError = "unknown sync error"

type Bridge struct {
	syncer   Syncer
	host     Host
	inFlight *atomic.Int64
}

func New(syncer Syncer, host Host) *Bridge {
	return &Bridge{
		syncer:   syncer,
		host:     host,
		inFlight: atomic.NewInt64(0),
	}
}

// Status reports Syncing while any request is in flight.
func (b *Bridge) Status() Status {
	if b.inFlight.Load() > 0 {
		return Syncing
	}
	return Idle
}

// RequestSync starts a sync and returns immediately. The host is called back
// exactly once, then the same outcome is delivered on the returned channel.
func (b *Bridge) RequestSync(dir vfs.Direction, handle CallbackHandle) <-chan Result {
	results := make(chan Result, 1)
	b.inFlight.Inc()
	go func() {
		defer close(results)
		err := b.sync(dir)
		b.inFlight.Dec()

		var errMessage string
		if err != nil {
			errMessage = err.Error()
			if errMessage == "" {
				errMessage = unknownError
			}
			log.Warnf("Sync %s failed: %s", dir, errMessage)
		} else {
			log.Debugf("Sync %s completed for %v", dir, handle)
		}
		b.callback(dir, errMessage, handle)
		results <- Result{
			Direction: dir,
			Handle:    handle,
			Err:       err,
		}
	}()
	return results
}

func (b *Bridge) sync(dir vfs.Direction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic during %s: %v", dir, r)
		}
	}()
	return b.syncer.Sync(context.Background(), dir)
}

// callback recovers host panics so a failed delivery is logged instead of ending the runtime.
func (b *Bridge) callback(dir vfs.Direction, errMessage string, handle CallbackHandle) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Sync %s callback for %v panicked: %v", dir, handle, r)
		}
	}()
	b.host.SyncCallback(dir.IsLoad(), errMessage, handle)
}
