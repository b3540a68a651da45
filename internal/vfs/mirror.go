package vfs

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
)

const rootDir = "."

// Stats counts the entries a Mirror touched
type Stats struct {
	Created int
	Updated int
	Removed int
}

func (s Stats) Changed() bool {
	return s.Created+s.Updated+s.Removed > 0
}

// Mirror makes dst's tree match src's. Files are copied when missing from dst
// or when their size or modification time differ. Entries only in dst are removed.
func Mirror(ctx context.Context, src, dst hackpadfs.FS) (Stats, error) {
	var stats Stats
	srcEntries, err := walkTree(ctx, src)
	if err != nil {
		return stats, errors.Wrap(err, "Failed to read source tree")
	}
	dstEntries, err := walkTree(ctx, dst)
	if err != nil {
		return stats, errors.Wrap(err, "Failed to read destination tree")
	}

	for _, path := range sortedPaths(srcEntries) {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		srcInfo := srcEntries[path]
		dstInfo, exists := dstEntries[path]
		if exists && dstInfo.IsDir() != srcInfo.IsDir() {
			if err := hackpadfs.RemoveAll(dst, path); err != nil {
				return stats, errors.Wrapf(err, "Failed to replace %q", path)
			}
			stats.Removed++
			exists = false
		}

		switch {
		case srcInfo.IsDir():
			if exists {
				continue
			}
			if err := hackpadfs.Mkdir(dst, path, srcInfo.Mode().Perm()); err != nil {
				return stats, errors.Wrapf(err, "Failed to create directory %q", path)
			}
			stats.Created++
		case !exists:
			if err := copyFile(src, dst, path, srcInfo); err != nil {
				return stats, err
			}
			stats.Created++
		case fileChanged(srcInfo, dstInfo):
			if err := copyFile(src, dst, path, srcInfo); err != nil {
				return stats, err
			}
			stats.Updated++
		}
	}

	removePaths := sortedPaths(dstEntries)
	sort.Sort(sort.Reverse(sort.StringSlice(removePaths))) // children before parents
	for _, path := range removePaths {
		if _, keep := srcEntries[path]; keep {
			continue
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		err := hackpadfs.Remove(dst, path)
		switch {
		case err == nil:
			stats.Removed++
		case errors.Is(err, hackpadfs.ErrNotExist):
			// already gone with a replaced parent
		default:
			return stats, errors.Wrapf(err, "Failed to remove %q", path)
		}
	}
	return stats, nil
}

func walkTree(ctx context.Context, fs hackpadfs.FS) (map[string]hackpadfs.FileInfo, error) {
	entries := make(map[string]hackpadfs.FileInfo)
	err := hackpadfs.WalkDir(fs, rootDir, func(path string, dirEntry hackpadfs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == rootDir {
			return nil
		}
		info, err := dirEntry.Info()
		if err != nil {
			return err
		}
		entries[path] = info
		return nil
	})
	return entries, err
}

func sortedPaths(entries map[string]hackpadfs.FileInfo) []string {
	paths := make([]string, 0, len(entries))
	for path := range entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func fileChanged(src, dst hackpadfs.FileInfo) bool {
	return src.Size() != dst.Size() ||
		!src.ModTime().Truncate(time.Millisecond).Equal(dst.ModTime().Truncate(time.Millisecond))
}

func copyFile(src, dst hackpadfs.FS, path string, info hackpadfs.FileInfo) error {
	data, err := hackpadfs.ReadFile(src, path)
	if err != nil {
		return errors.Wrapf(err, "Failed to read %q", path)
	}
	perm := info.Mode().Perm()
	f, err := hackpadfs.OpenFile(dst, path, hackpadfs.FlagWriteOnly|hackpadfs.FlagCreate|hackpadfs.FlagTruncate, perm)
	if err != nil {
		return errors.Wrapf(err, "Failed to open %q for writing", path)
	}
	w, ok := f.(io.Writer)
	if !ok {
		f.Close()
		return errors.Wrapf(hackpadfs.ErrNotImplemented, "File %q is not writable", path)
	}
	_, err = w.Write(data)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "Failed to write %q", path)
	}

	if err := hackpadfs.Chmod(dst, path, perm); err != nil && !errors.Is(err, hackpadfs.ErrNotImplemented) {
		return errors.Wrapf(err, "Failed to set mode of %q", path)
	}
	modTime := info.ModTime()
	if err := hackpadfs.Chtimes(dst, path, modTime, modTime); err != nil && !errors.Is(err, hackpadfs.ErrNotImplemented) {
		return errors.Wrapf(err, "Failed to set times of %q", path)
	}
	return nil
}
