// SPDX-License-Identifier: MPL-2.0

// Package watch provides debounced filesystem watching for live re-linting.
//
// It monitors the lint root for changes to matching sources and invokes a
// callback after a quiet period. Events inside the debounce window are
// coalesced so one edit burst triggers one re-run with the full set of
// changed paths.
package watch

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period before the callback fires. Editors
// often write then rename a temp file; the window lets those bursts
// coalesce into a single re-run.
const defaultDebounce = 500 * time.Millisecond

// defaultIgnores are always excluded from watching, on top of any
// user-supplied ignore patterns: VCS metadata, proof build output, editor
// swap files, and OS metadata that generate high-frequency noise.
var defaultIgnores = []GlobPattern{
	"**/.git/**",
	"**/.lake/**",
	"**/build/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

// Watcher monitors a directory tree and fires a debounced callback when
// matching files change. Run must be called exactly once.
type Watcher struct {
	patterns    []GlobPattern
	ignores     []GlobPattern
	onChange    func(ctx context.Context, changed []string) error
	clearScreen bool

	fsw      *fsnotify.Watcher
	stdout   io.Writer
	stderr   io.Writer
	debounce time.Duration
	baseDir  string
	started  atomic.Bool
}

// debouncer coalesces change notifications into batches separated by a
// quiet period. The fire function runs on the timer goroutine once the
// window elapses with no further note calls.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	fire    func()
	pending map[string]struct{}
	timer   *time.Timer
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, pending: make(map[string]struct{})}
}

// note records a changed path and restarts the quiet-period timer.
func (d *debouncer) note(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[path] = struct{}{}
	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.fire)
	} else {
		d.timer.Reset(d.window)
	}
}

// take removes and returns the pending batch.
func (d *debouncer) take() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	batch := slices.Collect(maps.Keys(d.pending))
	clear(d.pending)
	return batch
}

// retry re-arms the timer so a batch skipped while a run was in progress
// is not silently lost when no further events arrive.
func (d *debouncer) retry() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Reset(d.window)
	}
}

// stop halts the timer. AfterFunc timers have no channel to drain.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// New creates a Watcher from the given Config. It validates the config,
// resolves BaseDir to an absolute path, and registers every non-ignored
// directory below it with fsnotify.
func New(cfg Config) (*Watcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: determine working directory: %w", err)
		}
		baseDir = wd
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve base directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		patterns:    cfg.Patterns,
		ignores:     append(slices.Clone(defaultIgnores), cfg.Ignore...),
		onChange:    cfg.OnChange,
		clearScreen: cfg.ClearScreen,
		fsw:         fsw,
		stdout:      cfg.Stdout,
		stderr:      cfg.Stderr,
		debounce:    cfg.Debounce,
		baseDir:     absBase,
	}
	if w.stdout == nil {
		w.stdout = os.Stdout
	}
	if w.stderr == nil {
		w.stderr = os.Stderr
	}
	if w.debounce <= 0 {
		w.debounce = defaultDebounce
	}

	if err := w.addDirectories(); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			fmt.Fprintf(w.stderr, "watch: close after init failure: %v\n", closeErr)
		}
		return nil, err
	}
	return w, nil
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks for
// matching filesystem events. It returns nil on clean cancellation and an
// error on fatal watcher failures or a repeated call.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var busy atomic.Bool
	deb := newDebouncer(w.debounce)
	deb.fire = func() { w.fire(ctx, deb, &busy) }

	defer func() {
		deb.stop()
		if err := w.fsw.Close(); err != nil {
			fmt.Fprintf(w.stderr, "watch: close fsnotify: %v\n", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}
			w.handleEvent(evt, deb)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			// Resource exhaustion (inotify watch or descriptor limits) leaves
			// the watcher blind; see watcher_fatal_*.go for the per-OS test.
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			fmt.Fprintf(w.stderr, "watch: fsnotify error: %v\n", err)
		}
	}
}

// handleEvent filters one fsnotify event and, when it is relevant, records
// it with the debouncer. Directory creations extend the watch set so
// recursive coverage keeps up with the tree, but are not themselves
// changes; the directory check runs before pattern filtering because
// directory names rarely match file patterns.
func (w *Watcher) handleEvent(evt fsnotify.Event, deb *debouncer) {
	rel, err := filepath.Rel(w.baseDir, evt.Name)
	if err != nil {
		rel = evt.Name
	}
	if w.isIgnored(rel) {
		return
	}
	if evt.Has(fsnotify.Create) && w.maybeAddDir(evt.Name) {
		return
	}
	if !w.matchesPatterns(rel) {
		return
	}
	deb.note(rel)
}

// fire runs one callback dispatch on the debounce timer goroutine. The
// timer may trigger after cancellation, so ctx is checked first; a narrow
// window remains and the callback must watch ctx itself for long work.
// When the previous run is still in progress the batch is kept and the
// timer re-armed instead of invoking the callback concurrently.
func (w *Watcher) fire(ctx context.Context, deb *debouncer, busy *atomic.Bool) {
	if ctx.Err() != nil {
		return
	}
	if !busy.CompareAndSwap(false, true) {
		fmt.Fprintf(w.stderr, "watch: skipping re-run (previous check still in progress)\n")
		deb.retry()
		return
	}
	defer busy.Store(false)

	changed := deb.take()
	if len(changed) == 0 {
		return
	}

	if w.clearScreen {
		// ANSI escape: clear screen and home the cursor.
		fmt.Fprint(w.stdout, "\033[2J\033[H")
	}
	if w.onChange != nil {
		if err := w.onChange(ctx, changed); err != nil {
			fmt.Fprintf(w.stderr, "watch: callback error: %v\n", err)
		}
	}
}

// addDirectories registers every directory below baseDir with fsnotify.
// Ignored directories are skipped wholesale; inaccessible paths are
// reported and skipped rather than aborting the walk. Pattern filtering
// happens per event, not here, so new files in any watched directory are
// seen.
func (w *Watcher) addDirectories() error {
	walkErr := filepath.WalkDir(w.baseDir, func(path string, d os.DirEntry, walkDirErr error) error {
		if walkDirErr != nil {
			fmt.Fprintf(w.stderr, "watch: skipping inaccessible path %q: %v\n", path, walkDirErr)
			return nil //nolint:nilerr // intentional skip of inaccessible paths
		}
		if !d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(w.baseDir, path)
		if relErr != nil {
			return nil //nolint:nilerr // skip paths that cannot be made relative
		}
		if w.isIgnored(rel) || w.isIgnored(rel+"/") {
			return filepath.SkipDir
		}

		if addErr := w.fsw.Add(path); addErr != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, addErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("watch: walk directory tree: %w", walkErr)
	}
	return nil
}

// maybeAddDir registers path with fsnotify when it is a non-ignored
// directory, extending the watch to directories created after startup.
// It reports whether path named a directory.
func (w *Watcher) maybeAddDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil {
		return true
	}
	if w.isIgnored(rel) || w.isIgnored(rel+"/") {
		return true
	}
	if addErr := w.fsw.Add(path); addErr != nil {
		fmt.Fprintf(w.stderr, "watch: add new directory %q: %v\n", path, addErr)
	}
	return true
}

// matchAny reports whether rel, normalised to forward slashes, matches at
// least one of the patterns.
func matchAny(patterns []GlobPattern, rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range patterns {
		if ok, err := doublestar.Match(string(pat), normalized); err == nil && ok {
			return true
		}
	}
	return false
}

func (w *Watcher) isIgnored(rel string) bool {
	return matchAny(w.ignores, rel)
}

// matchesPatterns applies the configured watch patterns; an empty pattern
// list matches everything.
func (w *Watcher) matchesPatterns(rel string) bool {
	return len(w.patterns) == 0 || matchAny(w.patterns, rel)
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []GlobPattern {
	return slices.Clone(defaultIgnores)
}
