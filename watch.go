package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ztrue/tracerr"
)

// watchFile calls onChange every time path is written or replaced, until ctx
// is done. The containing directory is watched so that editors which save by
// renaming a temporary file over path are seen as well.
func watchFile(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return tracerr.Wrap(err)
	}
	plog.Infof("watching %s", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			plog.Debugf("%s: %s", event.Name, event.Op)
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			plog.Warningf("watch error: %v", err)
		}
	}
}
