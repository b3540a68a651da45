//go:build js
// +build js

package emfs

import (
	"syscall/js"

	"github.com/hack-pad/hackpadfs"
)

// errno values from Emscripten's WASI-numbered ErrnoError
var errnoErrors = map[int]error{
	2:  hackpadfs.ErrPermission, // EACCES
	20: hackpadfs.ErrExist,
	31: hackpadfs.ErrIsDir,
	44: hackpadfs.ErrNotExist,
	54: hackpadfs.ErrNotDir,
	55: hackpadfs.ErrNotEmpty,
	63: hackpadfs.ErrPermission, // EPERM
}

var codeErrors = map[string]error{
	"EACCES":    hackpadfs.ErrPermission,
	"EEXIST":    hackpadfs.ErrExist,
	"EISDIR":    hackpadfs.ErrIsDir,
	"ENOENT":    hackpadfs.ErrNotExist,
	"ENOTDIR":   hackpadfs.ErrNotDir,
	"ENOTEMPTY": hackpadfs.ErrNotEmpty,
	"EPERM":     hackpadfs.ErrPermission,
}

func wrapErr(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &hackpadfs.PathError{Op: op, Path: name, Err: mapErr(err)}
}

func mapErr(err error) error {
	jsErr, ok := err.(js.Error)
	if !ok {
		return err
	}
	if code := jsErr.Value.Get("code"); code.Type() == js.TypeString {
		if mapped, ok := codeErrors[code.String()]; ok {
			return mapped
		}
	}
	if errno := jsErr.Value.Get("errno"); errno.Type() == js.TypeNumber {
		if mapped, ok := errnoErrors[errno.Int()]; ok {
			return mapped
		}
	}
	return err
}
