package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeat events for the same file; editors often write twice.
const debounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
)

// Change names a prefab or script file that was written on disk.
type Change struct {
	Name string // base name, e.g. "enemy.yaml"
	Kind ChangeKind
}

// Watcher reports prefab and script edits. The game loop collects them with
// Drain between ticks; nothing is applied from the watcher goroutine.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Drain returns the changes queued since the last call without blocking.
func (w *Watcher) Drain() []Change {
	var out []Change
	for {
		select {
		case c := <-w.changes:
			out = append(out, c)
		default:
			return out
		}
	}
}

// Err returns the last watcher error, if one is pending.
func (w *Watcher) Err() error {
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			kind, ok := classify(ev.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if at, ok := seen[ev.Name]; ok && now.Sub(at) < debounce {
				continue
			}
			seen[ev.Name] = now

			select {
			case w.changes <- Change{Name: filepath.Base(ev.Name), Kind: kind}:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case ".tengo":
		return ChangeScript, true
	default:
		return 0, false
	}
}
