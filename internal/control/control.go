// Package control lets other local processes drive a running lapwatch
// through a signal directory. Creating a file named after an action
// (start_stop or reset_or_lap) in the directory dispatches that action once;
// the file is removed after it is consumed.
package control

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ShayCichocki/lapwatch/internal/logger"
	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
)

// ErrUnknownSignal is returned when a signal name is not a user action.
var ErrUnknownSignal = errors.New("unknown signal")

// DispatchFunc receives actions read from the signal directory.
type DispatchFunc func(stopwatch.Action)

// Watcher watches a signal directory and dispatches actions.
type Watcher struct {
	dir      string
	dispatch DispatchFunc
	watcher  *fsnotify.Watcher

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWatcher creates dir if needed and starts watching it. Signal files
// already in the directory are consumed first, on the watcher goroutine, so
// dispatch may block without holding up the caller. The watch stops when ctx
// is done or Close is called.
func NewWatcher(ctx context.Context, dir string, dispatch DispatchFunc) (*Watcher, error) {
	if dir == "" {
		return nil, errors.New("control directory is empty")
	}
	if dispatch == nil {
		return nil, errors.New("dispatch func is nil")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create control directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		dir:      dir,
		dispatch: dispatch,
		watcher:  fsw,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run(ctx)

	return w, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	ctx = logger.WithName(ctx, "control")

	// Signals written before we started watching would otherwise never fire.
	w.drainExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.consume(ctx, event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.WarnKV(ctx, "control watcher error", "dir", w.dir, "error", err)
		}
	}
}

func (w *Watcher) drainExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		logger.WarnKV(ctx, "read control directory", "dir", w.dir, "error", err)
		return
	}
	for _, e := range entries {
		if w.stopped(ctx) {
			return
		}
		if !e.IsDir() {
			w.consume(ctx, filepath.Join(w.dir, e.Name()))
		}
	}
}

func (w *Watcher) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-w.done:
		return true
	default:
		return false
	}
}

// consume dispatches the action named by path and removes the file.
// Create and Write events for one signal can both arrive; only the caller
// that manages to remove the file dispatches.
func (w *Watcher) consume(ctx context.Context, path string) {
	action, ok := stopwatch.ParseAction(filepath.Base(path))
	if !ok {
		return
	}
	if err := os.Remove(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.WarnKV(ctx, "remove control signal", "path", path, "error", err)
		}
		return
	}

	logger.DebugKV(ctx, "control signal", "action", action.String())
	w.dispatch(action)
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

// Send writes a signal file for action into dir.
func Send(dir string, action stopwatch.Action) error {
	if _, ok := stopwatch.ParseAction(action.String()); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSignal, action)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create control directory: %w", err)
	}

	path := filepath.Join(dir, action.String())
	stamp := []byte(time.Now().Format(time.RFC3339))
	if err := os.WriteFile(path, stamp, 0644); err != nil {
		return fmt.Errorf("write signal %s: %w", action, err)
	}
	return nil
}

// SendName is Send for a signal given by name.
func SendName(dir, name string) error {
	action, ok := stopwatch.ParseAction(name)
	if !ok {
		return fmt.Errorf("%w: %q (want start_stop or reset_or_lap)", ErrUnknownSignal, name)
	}
	return Send(dir, action)
}
