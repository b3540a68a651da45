//go:build js
// +build js

package vfs

import (
	"context"

	"github.com/hack-pad/go-indexeddb/idb"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/indexeddb"
	"github.com/pkg/errors"
)

// NewIndexedDBStore persists 'local' into an IndexedDB database.
func NewIndexedDBStore(ctx context.Context, local hackpadfs.FS, options Options) (*Store, error) {
	durability := idb.DurabilityDefault
	if options.RelaxedDurability {
		durability = idb.DurabilityRelaxed
	}
	remote, err := indexeddb.NewFS(ctx, options.Database, indexeddb.Options{
		TransactionDurability: durability,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open IndexedDB database %q", options.Database)
	}
	return NewStore(local, remote), nil
}
