//go:build js
// +build js

package emfs

import (
	"context"
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/common"
	"github.com/hack-pad/gameboot/internal/jsfunc"
	"github.com/hack-pad/gameboot/internal/vfs"
	"github.com/pkg/errors"
)

// IDBFS syncs through the engine's own FS.syncfs, for pages that mount Emscripten's IDBFS.
type IDBFS struct {
	fs js.Value
}

func NewIDBFS(fsObject js.Value) *IDBFS {
	return &IDBFS{fs: fsObject}
}

// Mount mounts Emscripten's IDBFS at mountPath. Must run during preRun.
func (s *IDBFS) Mount(idbfs js.Value, mountPath string) (err error) {
	defer common.CatchException(&err)
	if !s.fs.Call("analyzePath", mountPath).Get("exists").Bool() {
		s.fs.Call("mkdir", mountPath)
	}
	s.fs.Call("mount", idbfs, map[string]interface{}{}, mountPath)
	return nil
}

func (s *IDBFS) Sync(ctx context.Context, dir vfs.Direction) error {
	errs := make(chan error, 1)
	callback := jsfunc.SingleUse(func(this js.Value, args []js.Value) interface{} {
		syncErr := jsfunc.Arg(args, 0)
		if syncErr.Truthy() {
			errs <- js.Error{Value: syncErr}
		} else {
			errs <- nil
		}
		return nil
	})
	if err := s.start(dir, callback); err != nil {
		callback.Release()
		return errors.Wrap(err, "Failed to start syncfs")
	}

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *IDBFS) start(dir vfs.Direction, callback js.Func) (err error) {
	defer common.CatchException(&err)
	s.fs.Call("syncfs", dir.IsLoad(), callback)
	return nil
}
