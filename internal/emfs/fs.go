//go:build js
// +build js

// Package emfs exposes a directory of the engine's in-memory filesystem as a hackpadfs.FS.
package emfs

import (
	"bytes"
	gofs "io/fs"
	"path"
	"sort"
	"syscall/js"
	"time"

	"github.com/hack-pad/gameboot/internal/common"
	"github.com/hack-pad/gameboot/internal/interop"
	"github.com/hack-pad/hackpadfs"
)

var (
	_ hackpadfs.FS          = &FS{}
	_ hackpadfs.StatFS      = &FS{}
	_ hackpadfs.ReadDirFS   = &FS{}
	_ hackpadfs.ReadFileFS  = &FS{}
	_ hackpadfs.OpenFileFS  = &FS{}
	_ hackpadfs.MkdirFS     = &FS{}
	_ hackpadfs.RemoveFS    = &FS{}
	_ hackpadfs.RemoveAllFS = &FS{}
	_ hackpadfs.ChmodFS     = &FS{}
	_ hackpadfs.ChtimesFS   = &FS{}
)

type FS struct {
	fs   js.Value
	root string
}

// New roots a hackpadfs.FS at 'root' inside Emscripten's FS object.
func New(fsObject js.Value, root string) *FS {
	return &FS{
		fs:   fsObject,
		root: path.Clean(root),
	}
}

// EnsureRoot creates the root directory if it does not exist yet.
func (f *FS) EnsureRoot() error {
	exists, err := f.call("mkdir", f.root, func() js.Value {
		return f.fs.Call("analyzePath", f.root).Get("exists")
	})
	if err != nil {
		return err
	}
	if exists.Bool() {
		return nil
	}
	_, err = f.call("mkdir", f.root, func() js.Value {
		return f.fs.Call("mkdir", f.root)
	})
	return err
}

func (f *FS) resolve(op, name string) (string, error) {
	if !gofs.ValidPath(name) {
		return "", &hackpadfs.PathError{Op: op, Path: name, Err: hackpadfs.ErrInvalid}
	}
	if name == "." {
		return f.root, nil
	}
	return f.root + "/" + name, nil
}

func (f *FS) call(op, name string, fn func() js.Value) (result js.Value, err error) {
	defer func() {
		err = wrapErr(op, name, err)
	}()
	defer common.CatchException(&err)
	return fn(), nil
}

func (f *FS) Stat(name string) (hackpadfs.FileInfo, error) {
	p, err := f.resolve("stat", name)
	if err != nil {
		return nil, err
	}
	stat, err := f.call("stat", name, func() js.Value {
		return f.fs.Call("stat", p)
	})
	if err != nil {
		return nil, err
	}
	return newFileInfo(name, stat), nil
}

func (f *FS) ReadDir(name string) ([]hackpadfs.DirEntry, error) {
	p, err := f.resolve("readdir", name)
	if err != nil {
		return nil, err
	}
	jsNames, err := f.call("readdir", name, func() js.Value {
		return f.fs.Call("readdir", p)
	})
	if err != nil {
		return nil, err
	}

	var names []string
	for i := 0; i < jsNames.Length(); i++ {
		entryName := jsNames.Index(i).String()
		if entryName != "." && entryName != ".." {
			names = append(names, entryName)
		}
	}
	sort.Strings(names)

	entries := make([]hackpadfs.DirEntry, 0, len(names))
	for _, entryName := range names {
		info, err := f.Stat(path.Join(name, entryName))
		if err != nil {
			return nil, err
		}
		entries = append(entries, gofs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (f *FS) ReadFile(name string) ([]byte, error) {
	p, err := f.resolve("readfile", name)
	if err != nil {
		return nil, err
	}
	jsData, err := f.call("readfile", name, func() js.Value {
		return f.fs.Call("readFile", p)
	})
	if err != nil {
		return nil, err
	}
	return interop.BytesFromJS(jsData), nil
}

func (f *FS) Open(name string) (hackpadfs.File, error) {
	info, err := f.Stat(name)
	if err != nil {
		return nil, wrapErr("open", name, unwrapPathErr(err))
	}
	if info.IsDir() {
		entries, err := f.ReadDir(name)
		if err != nil {
			return nil, err
		}
		return &dirFile{info: info, entries: entries}, nil
	}
	data, err := f.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return &readFile{info: info, Reader: bytes.NewReader(data)}, nil
}

func (f *FS) OpenFile(name string, flag int, perm hackpadfs.FileMode) (hackpadfs.File, error) {
	const writeFlags = hackpadfs.FlagWriteOnly | hackpadfs.FlagReadWrite
	if flag&writeFlags == 0 {
		return f.Open(name)
	}
	p, err := f.resolve("open", name)
	if err != nil {
		return nil, err
	}
	info, statErr := f.Stat(name)
	switch {
	case statErr == nil && info.IsDir():
		return nil, &hackpadfs.PathError{Op: "open", Path: name, Err: hackpadfs.ErrIsDir}
	case statErr == nil && flag&hackpadfs.FlagExclusive != 0 && flag&hackpadfs.FlagCreate != 0:
		return nil, &hackpadfs.PathError{Op: "open", Path: name, Err: hackpadfs.ErrExist}
	case statErr != nil && flag&hackpadfs.FlagCreate == 0:
		return nil, statErr
	}

	w := &writeFile{fs: f, name: name, path: p, perm: perm}
	if statErr == nil && flag&hackpadfs.FlagTruncate == 0 {
		existing, err := f.ReadFile(name)
		if err != nil {
			return nil, err
		}
		w.data = existing
		if flag&hackpadfs.FlagAppend != 0 {
			w.offset = len(existing)
		}
	}
	return w, nil
}

func (f *FS) Mkdir(name string, perm hackpadfs.FileMode) error {
	p, err := f.resolve("mkdir", name)
	if err != nil {
		return err
	}
	_, err = f.call("mkdir", name, func() js.Value {
		return f.fs.Call("mkdir", p, uint32(perm.Perm()))
	})
	return err
}

func (f *FS) Remove(name string) error {
	p, err := f.resolve("remove", name)
	if err != nil {
		return err
	}
	info, err := f.Stat(name)
	if err != nil {
		return err
	}
	method := "unlink"
	if info.IsDir() {
		method = "rmdir"
	}
	_, err = f.call("remove", name, func() js.Value {
		return f.fs.Call(method, p)
	})
	return err
}

func (f *FS) RemoveAll(name string) error {
	info, err := f.Stat(name)
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		entries, err := f.ReadDir(name)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := f.RemoveAll(path.Join(name, entry.Name())); err != nil {
				return err
			}
		}
	}
	return f.Remove(name)
}

func (f *FS) Chmod(name string, mode hackpadfs.FileMode) error {
	p, err := f.resolve("chmod", name)
	if err != nil {
		return err
	}
	_, err = f.call("chmod", name, func() js.Value {
		return f.fs.Call("chmod", p, uint32(mode.Perm()))
	})
	return err
}

func (f *FS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	p, err := f.resolve("chtimes", name)
	if err != nil {
		return err
	}
	_, err = f.call("chtimes", name, func() js.Value {
		return f.fs.Call("utime", p, atime.UnixMilli(), mtime.UnixMilli())
	})
	return err
}

func (f *FS) writeFull(name, p string, data []byte, perm hackpadfs.FileMode) error {
	jsData := interop.NewByteArray(data)
	_, err := f.call("write", name, func() js.Value {
		f.fs.Call("writeFile", p, jsData)
		return f.fs.Call("chmod", p, uint32(perm.Perm()))
	})
	return err
}

func unwrapPathErr(err error) error {
	if pathErr, ok := err.(*hackpadfs.PathError); ok {
		return pathErr.Err
	}
	return err
}

func isNotExist(err error) bool {
	return unwrapPathErr(err) == hackpadfs.ErrNotExist
}
