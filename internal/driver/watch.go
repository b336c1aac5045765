package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"uvss/internal/source"
)

const defaultDebounce = 150 * time.Millisecond

type WatchOptions struct {
	Diagnose DiagnoseOptions
	// Debounce coalesces bursts of file events into one run; 0 selects
	// 150ms.
	Debounce time.Duration
}

// Watch diagnoses dir once and again after every change to one of its
// style sheets, handing each run to onRun. It returns nil when ctx is done.
func Watch(ctx context.Context, dir string, opts WatchOptions, onRun func(*source.FileSet, []DiagnoseDirResult)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.Close()

	if err := addWatchDirs(w, dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	run := func() error {
		fileSet, results, err := DiagnoseDir(ctx, dir, opts.Diagnose)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		onRun(fileSet, results)
		return nil
	}
	if err := run(); err != nil {
		return err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if err := addWatchDirs(w, ev.Name); err != nil {
						return fmt.Errorf("watch %s: %w", ev.Name, err)
					}
				}
			}
			if !relevantEvent(ev, opts.Diagnose.Extensions) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", dir, err)
		case <-fire:
			fire = nil
			if err := run(); err != nil {
				return err
			}
		}
	}
}

// addWatchDirs registers root and every directory below it; fsnotify does
// not watch recursively.
func addWatchDirs(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}

func relevantEvent(ev fsnotify.Event, exts []string) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return hasExtension(ev.Name, exts)
}
