//go:build !js
// +build !js

package vfs

import (
	"context"

	"github.com/hack-pad/gameboot/internal/log"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
)

// NewIndexedDBStore falls back to an in-memory remote outside the browser.
func NewIndexedDBStore(ctx context.Context, local hackpadfs.FS, options Options) (*Store, error) {
	log.Warnf("IndexedDB is unavailable, %q will not survive a restart", options.Database)
	remote, err := mem.NewFS()
	if err != nil {
		return nil, err
	}
	return NewStore(local, remote), nil
}
