//go:build js
// +build js

package emfs

import (
	gofs "io/fs"
	"path"
	"syscall/js"
	"time"

	"github.com/hack-pad/hackpadfs"
)

const (
	modeTypeMask = 0170000
	modeDir      = 0040000
)

type fileInfo struct {
	name    string
	size    int64
	mode    hackpadfs.FileMode
	modTime time.Time
}

func newFileInfo(name string, stat js.Value) *fileInfo {
	rawMode := stat.Get("mode").Int()
	mode := hackpadfs.FileMode(rawMode) & gofs.ModePerm
	if rawMode&modeTypeMask == modeDir {
		mode |= gofs.ModeDir
	}
	return &fileInfo{
		name:    path.Base(name),
		size:    int64(stat.Get("size").Float()),
		mode:    mode,
		modTime: jsTime(stat.Get("mtime")),
	}
}

// jsTime accepts both Date objects and millisecond timestamps, depending on the Emscripten version.
func jsTime(value js.Value) time.Time {
	var millis float64
	if value.Type() == js.TypeNumber {
		millis = value.Float()
	} else {
		millis = value.Call("getTime").Float()
	}
	return time.UnixMilli(int64(millis))
}

func (f *fileInfo) Name() string {
	return f.name
}

func (f *fileInfo) Size() int64 {
	return f.size
}

func (f *fileInfo) Mode() hackpadfs.FileMode {
	return f.mode
}

func (f *fileInfo) ModTime() time.Time {
	return f.modTime
}

func (f *fileInfo) IsDir() bool {
	return f.mode.IsDir()
}

func (f *fileInfo) Sys() interface{} {
	return nil
}
