package file

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// debounceWindow coalesces the burst of write events most editors emit
// when saving a file into a single reload.
const debounceWindow = 200 * time.Millisecond

// Watcher observes a single file for changes and invokes onChange.
// Editors replace files via rename on save, so the parent directory is
// watched rather than the file itself.
type Watcher struct {
	watcher  *fsnotify.Watcher
	target   string
	onChange func()
	done     chan struct{}
}

// NewWatcher starts watching the given file. onChange is called from a
// background goroutine after every (debounced) modification.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		target:   absPath,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, w.onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("File watcher error: %v", err)
		}
	}
}
