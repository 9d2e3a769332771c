// Package watch re-runs a render whenever its input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/brandshot/internal/logger"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors a fixed set of files.
type Watcher struct {
	fs       *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	log      *logger.Logger
}

// New watches the directories holding files so atomic saves (write to a temp
// file, then rename) are still seen. Events for other files are ignored.
func New(files []string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("watch: no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logger.Nop()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fs:       fsWatcher,
		files:    make(map[string]struct{}, len(files)),
		debounce: debounce,
		log:      log.WithFields(map[string]any{"component": "watcher"}),
	}

	dirs := make(map[string]struct{})
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("resolve %s: %w", file, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to watch folder %s: %w", dir, err)
		}
		w.log.WithFields(map[string]any{"dir": dir}).Debug("watching folder")
	}
	return w, nil
}

// Run calls onChange once per debounced burst of changes until ctx is done.
// Callback errors are logged and watching continues. Run closes the watcher
// before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	defer w.fs.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.WithFields(map[string]any{"file": event.Name, "op": event.Op.String()}).Debug("change detected")
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "watcher error")

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.log.Error(err, "re-render failed")
			}
		}
	}
}

// Close releases the watcher without running it.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
