package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ivoronin/dockview/pkg/dock"
)

// Reload is the result of reloading a watched style file.
type Reload struct {
	Style dock.Style
	Err   error
}

// Watcher reloads a style file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	base    dock.Style
	log     *slog.Logger
	reloads chan Reload
	done    chan struct{}
}

// Watch starts watching path. The parent directory is watched so editors that
// replace the file on save are still noticed.
func Watch(path string, base dock.Style, log *slog.Logger) (*Watcher, error) {
	if _, err := formatOf(path); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		base:    base,
		log:     log,
		reloads: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Reloads delivers a Reload after every change to the file. It is closed by
// Close.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.reloads)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s, err := Load(w.path, w.base)
			if err != nil {
				w.log.Warn("style reload failed", "path", w.path, "error", err)
			} else {
				w.log.Info("style reloaded", "path", w.path)
			}
			w.publish(Reload{Style: s, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("style watcher error", "path", w.path, "error", err)
		}
	}
}

// publish keeps only the newest reload when the consumer lags behind.
func (w *Watcher) publish(r Reload) {
	select {
	case <-w.reloads:
	default:
	}
	w.reloads <- r
}
