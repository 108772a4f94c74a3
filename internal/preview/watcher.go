package preview

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
)

// reloadDebounce coalesces the burst of events an editor save produces.
const reloadDebounce = 150 * time.Millisecond

// overridesMsg carries a freshly loaded override set.
type overridesMsg struct {
	overrides colors.Overrides
}

// watcherErrMsg reports errors from the watcher goroutine.
type watcherErrMsg struct {
	err error
}

// colorsWatcher reloads the custom color file whenever it changes. The parent
// directory is watched, not the file, so editors that replace the file on
// save are still seen.
type colorsWatcher struct {
	path    string
	sub     chan overridesMsg
	errc    chan error
	done    chan struct{}
	signals chan struct{}

	mu       sync.Mutex
	debounce *time.Timer
	once     sync.Once
}

func newColorsWatcher(path string) *colorsWatcher {
	return &colorsWatcher{
		path:    filepath.Clean(path),
		sub:     make(chan overridesMsg, 1),
		errc:    make(chan error, 1),
		done:    make(chan struct{}),
		signals: make(chan struct{}, 1),
	}
}

// start opens the fsnotify watcher and runs the event loop in a goroutine.
func (w *colorsWatcher) start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return err
	}
	go w.run(watcher)
	return nil
}

func (w *colorsWatcher) stop() {
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.mu.Unlock()
	})
}

func (w *colorsWatcher) sendSignal() {
	select {
	case w.signals <- struct{}{}:
	default:
	}
}

func (w *colorsWatcher) run(watcher *fsnotify.Watcher) {
	defer close(w.sub)
	defer close(w.errc)
	defer watcher.Close()

	for {
		select {
		case <-w.done:
			return

		case <-w.signals:
			w.reload()

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(reloadDebounce, w.sendSignal)
			w.mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errc <- err:
			default:
			}
		}
	}
}

// reload reads the file and publishes the result, replacing any update the
// model has not consumed yet. A removed file yields an empty set.
func (w *colorsWatcher) reload() {
	overrides, _ := colors.LoadOverrides(w.path)
	update := overridesMsg{overrides: overrides}

	select {
	case w.sub <- update:
	default:
		select {
		case <-w.sub:
		default:
		}
		w.sub <- update
	}
}

// waitForOverrides blocks until the watcher publishes a reload.
func waitForOverrides(sub <-chan overridesMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-sub
		if !ok {
			return nil
		}
		return msg
	}
}

// waitForWatcherErr blocks until the watcher reports an error.
func waitForWatcherErr(errc <-chan error) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-errc
		if !ok {
			return nil
		}
		return watcherErrMsg{err: err}
	}
}
