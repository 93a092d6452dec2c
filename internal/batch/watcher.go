package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is how long a batch file must sit quiet before it is
// handed to the runner. Writers that stream rows into a drop directory
// trigger a burst of write events; the window collapses the burst into
// one delivery.
const debounceWindow = 100 * time.Millisecond

// Watcher monitors a drop directory and reports batch files once their
// writes settle. Only *.jsonl files are reported.
type Watcher struct {
	Dir   string
	Files <-chan string

	files   chan string
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given drop directory.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	files := make(chan string, 16)
	return &Watcher{
		Dir:     dir,
		Files:   files,
		files:   files,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the drop directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.Dir, err)
	}
	go w.loop()
	return nil
}

// Stop halts the watcher and closes the Files channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.files)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounceWindow)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for path := range pending {
					w.deliver(path)
				}
				return
			}
			if !isBatchFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				pending[event.Name] = time.Now()
			}
		case <-ticker.C:
			now := time.Now()
			for path, last := range pending {
				if now.Sub(last) >= debounceWindow {
					delete(pending, path)
					w.deliver(path)
				}
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// deliver reports a settled file if it still exists. Files removed
// between the event and the flush are dropped.
func (w *Watcher) deliver(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	select {
	case w.files <- path:
	default:
	}
}

func isBatchFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".jsonl")
}
