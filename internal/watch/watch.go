// Package watch re-runs work when map files change on disk.
package watch

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"worldgen/internal/errx"
	"worldgen/internal/logx"
)

// Files invokes fn with the affected path whenever one of the given
// files is written, created or renamed. Parent directories are
// registered rather than the files themselves, so editors that replace
// a file instead of writing in place still trigger. A path that names a
// directory is watched whole; any file inside it counts.
//
// Events are delivered on the watcher's own goroutine; fn must not
// block for long. The returned stop function releases the watcher.
func Files(paths []string, log logx.Logger, fn func(path string)) (stop func() error, err error) {
	log = logx.OrNop(log)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errx.IO("create file watcher").WithCause(err)
	}

	files := make(map[string]struct{}, len(paths))
	whole := make(map[string]struct{})
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, errx.IO("resolve watch path").WithPath(p).WithCause(err)
		}
		if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
			whole[abs] = struct{}{}
			dirs[abs] = struct{}{}
			continue
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, errx.IO("watch directory").WithPath(dir).WithCause(err)
		}
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
					continue
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil {
					continue
				}
				if !watches(abs, files, whole) {
					continue
				}
				log.Debug("map file changed", zap.String("file", abs), zap.String("op", ev.Op.String()))
				fn(abs)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("file watcher error", zap.Error(err))
			}
		}
	}()
	return w.Close, nil
}

func watches(abs string, files, whole map[string]struct{}) bool {
	if _, ok := files[abs]; ok {
		return true
	}
	_, ok := whole[filepath.Dir(abs)]
	return ok
}
