package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is the quiet period after the last file event before reloading
const reloadDelay = 100 * time.Millisecond

// Watcher reloads a config file on change and delivers each valid result on Updates.
// Load failures go to Errors and the previous config stays in effect.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan *Config
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory of path so editor rename-on-save is seen
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Updates: make(chan *Config, 1),
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
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDelay)

		case <-timer.C:
			cfg, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(cfg, nil)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)

		case <-w.closeCh:
			timer.Stop()
			return
		}
	}
}

// send delivers without blocking past Close, dropping a stale pending value
func (w *Watcher) send(cfg *Config, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- cfg:
	case <-w.closeCh:
	}
}
