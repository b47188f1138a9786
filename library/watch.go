package library

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the library file at path whenever it changes. Each
// successful reload delivers a fresh *Library on the first channel;
// decode and validation failures are delivered on the error channel
// without stopping the watch. Both channels close when ctx is cancelled.
func Watch(ctx context.Context, path string) (<-chan *Library, <-chan error, error) {
	if _, err := formatForPath(path); err != nil {
		return nil, nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory (more reliable than watching the file directly).
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	libs := make(chan *Library, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(libs)
		defer close(errs)
		defer watcher.Close()

		base := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				lib, err := Load(path)
				if err != nil {
					select {
					case errs <- err:
					case <-ctx.Done():
						return
					}
					continue
				}
				select {
				case libs <- lib:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return libs, errs, nil
}
