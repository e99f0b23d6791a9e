package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports edited spec and script files by base name, e.g.
// "player.yaml" or "demo.tengo". A file is reported once it has been quiet
// for watchDebounce, so a burst of writes yields one event after the last
// of them.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs, or DiskDir and its scripts directory when none
// are given.
func NewWatcher(dirs ...string) (*Watcher, error) {
	if len(dirs) == 0 {
		dirs = []string{DiskDir}
		scripts := filepath.Join(DiskDir, "scripts")
		if info, err := os.Stat(scripts); err == nil && info.IsDir() {
			dirs = append(dirs, scripts)
		}
	}

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
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll returns the names that changed since the last call without
// blocking.
func (w *Watcher) Poll() []string {
	var names []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return names
			}
			names = append(names, name)
		default:
			return names
		}
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			pending[filepath.Base(event.Name)] = time.Now()
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			}
		case now := <-timerC:
			for _, name := range settled(pending, now) {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if len(pending) > 0 {
				timer.Reset(watchDebounce)
			} else {
				timer, timerC = nil, nil
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// settled removes and returns the names that have been quiet for
// watchDebounce at now.
func settled(pending map[string]time.Time, now time.Time) []string {
	var names []string
	for name, last := range pending {
		if now.Sub(last) >= watchDebounce {
			names = append(names, name)
			delete(pending, name)
		}
	}
	return names
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
