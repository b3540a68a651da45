//go:build js
// +build js

package host

import (
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/interop"
	"github.com/hack-pad/gameboot/internal/jsfunc"
	"github.com/hack-pad/gameboot/internal/syncbridge"
	"github.com/hack-pad/gameboot/internal/vfs"
	"github.com/pkg/errors"
)

// ExposeSyncFS sets the global SyncFS(isLoad, callbackPtr) called by native code.
// It returns immediately; completion arrives through vfs_sync_callback.
func ExposeSyncFS(bridge *syncbridge.Bridge) js.Func {
	return interop.SetFunc(js.Global(), syncFSKey, func(args []js.Value) (interface{}, error) {
		handle := jsfunc.Arg(args, 1)
		if handle.Type() != js.TypeNumber {
			return nil, errors.Errorf("expected callback pointer, got %s", handle.Type())
		}
		dir := vfs.DirectionFromLoad(jsfunc.Arg(args, 0).Truthy())
		bridge.RequestSync(dir, syncbridge.CallbackHandle(handle.Float()))
		return nil, nil
	})
}
