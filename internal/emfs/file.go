//go:build js
// +build js

package emfs

import (
	"bytes"
	"io"

	"github.com/hack-pad/hackpadfs"
)

type readFile struct {
	*bytes.Reader
	info hackpadfs.FileInfo
}

func (r *readFile) Stat() (hackpadfs.FileInfo, error) {
	return r.info, nil
}

func (r *readFile) Close() error {
	return nil
}

type dirFile struct {
	info    hackpadfs.FileInfo
	entries []hackpadfs.DirEntry
}

func (d *dirFile) Stat() (hackpadfs.FileInfo, error) {
	return d.info, nil
}

func (d *dirFile) Read([]byte) (int, error) {
	return 0, &hackpadfs.PathError{Op: "read", Path: d.info.Name(), Err: hackpadfs.ErrIsDir}
}

func (d *dirFile) Close() error {
	return nil
}

func (d *dirFile) ReadDir(n int) ([]hackpadfs.DirEntry, error) {
	if n <= 0 {
		entries := d.entries
		d.entries = nil
		return entries, nil
	}
	if len(d.entries) == 0 {
		return nil, io.EOF
	}
	if n > len(d.entries) {
		n = len(d.entries)
	}
	entries := d.entries[:n]
	d.entries = d.entries[n:]
	return entries, nil
}

// writeFile buffers writes and replaces the engine's file contents on Close.
type writeFile struct {
	fs     *FS
	name   string
	path   string
	perm   hackpadfs.FileMode
	data   []byte
	offset int
	closed bool
}

func (w *writeFile) Write(p []byte) (int, error) {
	if w.closed {
		return 0, &hackpadfs.PathError{Op: "write", Path: w.name, Err: hackpadfs.ErrClosed}
	}
	end := w.offset + len(p)
	if end > len(w.data) {
		w.data = append(w.data, make([]byte, end-len(w.data))...)
	}
	copy(w.data[w.offset:], p)
	w.offset = end
	return len(p), nil
}

func (w *writeFile) Read([]byte) (int, error) {
	return 0, &hackpadfs.PathError{Op: "read", Path: w.name, Err: hackpadfs.ErrPermission}
}

func (w *writeFile) Stat() (hackpadfs.FileInfo, error) {
	return w.fs.Stat(w.name)
}

func (w *writeFile) Close() error {
	if w.closed {
		return &hackpadfs.PathError{Op: "close", Path: w.name, Err: hackpadfs.ErrClosed}
	}
	w.closed = true
	return w.fs.writeFull(w.name, w.path, w.data, w.perm)
}
