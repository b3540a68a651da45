//go:build js
// +build js

package interop

import (
	"bytes"
	"runtime"
	"runtime/pprof"
	"syscall/js"

	"github.com/pkg/errors"
)

func MemoryProfile() ([]byte, error) {
	var buf bytes.Buffer
	runtime.GC()
	err := pprof.WriteHeapProfile(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MemoryProfileJS downloads a heap profile of the bootstrap. Exposed as gameboot.profile() for debugging.
func MemoryProfileJS(args []js.Value) (interface{}, error) {
	buf, err := MemoryProfile()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create memory profile")
	}
	StartDownload("application/octet-stream", "gameboot-mem.pprof", buf)
	return nil, nil
}
