package config

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow folds the burst of events editors emit for one save. A path
// is reported once it has been quiet this long, so the reload sees the file
// as the save left it.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changed YAML files under the watched directories.
// Events carries the changed path; both channels close after Close.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching dirs.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// due holds, per path, when it will have been quiet for debounceWindow.
	due := make(map[string]time.Time)
	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			due[event.Name] = time.Now().Add(debounceWindow)
			fire = rearm(timer, due)
		case <-fire:
			now := time.Now()
			var ready []string
			for path, at := range due {
				if !at.After(now) {
					ready = append(ready, path)
				}
			}
			slices.Sort(ready)
			for _, path := range ready {
				delete(due, path)
				select {
				case w.Events <- path:
				case <-w.closeCh:
					return
				}
			}
			fire = rearm(timer, due)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// the previous error has not been read yet; keep it
			}
		case <-w.closeCh:
			return
		}
	}
}

// rearm points timer at the earliest due path. It returns nil when nothing
// is pending.
func rearm(timer *time.Timer, due map[string]time.Time) <-chan time.Time {
	if len(due) == 0 {
		timer.Stop()
		return nil
	}
	var next time.Time
	for _, at := range due {
		if next.IsZero() || at.Before(next) {
			next = at
		}
	}
	timer.Reset(time.Until(next))
	return timer.C
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Drain collects every pending change without blocking. The game loop calls it
// once per frame so that reloads happen on the game goroutine.
func (w *Watcher) Drain() (changed []string, errs []error) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return changed, errs
			}
			changed = append(changed, path)
		case err, ok := <-w.Errors:
			if !ok {
				return changed, errs
			}
			errs = append(errs, err)
		default:
			return changed, errs
		}
	}
}
