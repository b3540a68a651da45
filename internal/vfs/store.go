package vfs

import (
	"context"
	"sync"
	"time"

	"github.com/hack-pad/gameboot/internal/log"
	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
)

// Store pairs the engine's in-memory save directory with its persistent copy.
type Store struct {
	mu     sync.Mutex
	local  hackpadfs.FS
	remote hackpadfs.FS
}

type Options struct {
	// Database is the IndexedDB database name
	Database          string
	RelaxedDurability bool
}

func NewStore(local, remote hackpadfs.FS) *Store {
	return &Store{
		local:  local,
		remote: remote,
	}
}

// Sync mirrors one side onto the other. Concurrent calls run one at a time in arrival order of the lock.
func (s *Store) Sync(ctx context.Context, dir Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, dst := s.remote, s.local
	if dir == Save {
		src, dst = s.local, s.remote
	}
	start := time.Now()
	stats, err := Mirror(ctx, src, dst)
	if err != nil {
		return errors.Wrapf(err, "Failed to %s persistent files", dir)
	}
	log.Debugf("Sync %s finished in %s: %d created, %d updated, %d removed",
		dir, time.Since(start), stats.Created, stats.Updated, stats.Removed)
	return nil
}
