package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/jotter/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/jotter/internal/logger"
)

// debounce coalesces bursts of writes, such as a WAL append followed
// by a checkpoint, into one reload.
const debounce = 150 * time.Millisecond

// Watcher reports changes to the notes database made by any process.
type Watcher struct {
	fs      *fsnotify.Watcher
	prefix  string
	changes chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dir for writes to files whose name starts with
// prefix. The database, its WAL and shared-memory files all match
// the database file name.
func NewWatcher(dir, prefix string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fw,
		prefix:  prefix,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	var timer *time.Timer
	fire := func() {
		select {
		case w.changes <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, fire)
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher: %v", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.HasPrefix(filepath.Base(event.Name), w.prefix) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// Wait returns a command that blocks until the next change and then
// yields messages.NotesChanged. It yields nil once the watcher is closed.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.changes:
			return messages.NotesChanged{}
		case <-w.done:
			return nil
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}
