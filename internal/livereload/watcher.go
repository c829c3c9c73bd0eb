package livereload

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 300 * time.Millisecond

// ErrAlreadyStarted is returned when Start is called twice.
var ErrAlreadyStarted = errors.New("watcher already started")

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnChange sets the callback invoked after changes settle.
func WithOnChange(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// WithOnError sets the callback invoked on watch errors.
func WithOnError(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher reports changes to a set of files and directory trees. Files are
// watched through their parent directory, so atomic replacements are seen.
type Watcher struct {
	files    map[string]bool // absolute paths of watched files
	trees    []string        // absolute roots of watched directory trees
	debounce time.Duration
	onChange func()
	onError  func(error)

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	timer   *time.Timer
	started bool
	done    chan struct{}
}

// NewWatcher watches every path in paths. Directories are watched
// recursively; anything else is treated as a single file.
func NewWatcher(paths []string, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		files:    make(map[string]bool),
		debounce: DefaultDebounce,
		onChange: func() {},
		onError:  func(err error) { log.Printf("livereload: %v", err) },
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			w.trees = append(w.trees, abs)
		} else {
			w.files[abs] = true
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for f := range w.files {
		if err := fsw.Add(filepath.Dir(f)); err != nil {
			log.Printf("livereload: watching %s: %v", filepath.Dir(f), err)
		}
	}
	for _, root := range w.trees {
		addTree(fsw, root)
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	w.started = true
	go w.loop(fsw, w.done)
	return nil
}

// Stop stops watching and cancels a pending notification.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	close(w.done)
	w.fsw.Close()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.started = false
}

// addTree adds root and every directory below it.
func addTree(fsw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := fsw.Add(path); err != nil {
			log.Printf("livereload: watching %s: %v", path, err)
		}
		return nil
	})
}

func (w *Watcher) loop(fsw *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					addTree(fsw, event.Name)
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.trigger()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// relevant reports whether an event on name concerns a watched path.
func (w *Watcher) relevant(name string) bool {
	if w.files[name] {
		return true
	}
	for _, root := range w.trees {
		if name == root || strings.HasPrefix(name, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// trigger restarts the debounce timer.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
