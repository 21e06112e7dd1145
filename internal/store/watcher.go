package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"cvision/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the store's data directory for external edits and
// invalidates the in-memory cache so subsequent reads pick up the new
// contents. Events are debounced so editors that write in bursts trigger a
// single invalidation.
type Watcher struct {
	mu sync.RWMutex

	store *Store

	lastModTime map[string]time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	onReload func(keys []string)
	logger   *errors.Logger

	running bool
}

// NewWatcher creates a watcher for the store's data directory. onReload may
// be nil; when set it is called with the keys whose files changed.
func NewWatcher(store *Store, debounceDelay time.Duration, onReload func(keys []string), logger *errors.Logger) *Watcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	return &Watcher{
		store:         store,
		lastModTime:   make(map[string]time.Time),
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		reloadChan:    make(chan struct{}, 1), // Buffered to prevent blocking
		onReload:      onReload,
		logger:        logger,
	}
}

// Start begins watching the data directory for changes
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("store watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.fsWatcher = watcher

	if err := w.fsWatcher.Add(w.store.Dir()); err != nil {
		w.cleanupWatcher()
		return fmt.Errorf("failed to watch data directory %s: %w", w.store.Dir(), err)
	}

	w.updateModTimes()

	w.running = true
	go w.watchLoop()

	if w.logger != nil {
		w.logger.Info("Store watcher started",
			"dir", w.store.Dir(),
			"debounce_delay", w.debounceDelay)
	}
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.stopChan)

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	if w.fsWatcher != nil {
		if err := w.fsWatcher.Close(); err != nil {
			if w.logger != nil {
				w.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	w.running = false

	if w.logger != nil {
		w.logger.Info("Store watcher stopped")
	}
	return nil
}

// cleanupWatcher closes the file watcher and logs any errors
func (w *Watcher) cleanupWatcher() {
	if w.fsWatcher != nil {
		if closeErr := w.fsWatcher.Close(); closeErr != nil && w.logger != nil {
			w.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

func blobKeys() []string {
	return []string{
		KeyResumeData,
		KeySettings,
		KeySavedCVs,
		KeyCoverLetters,
		KeyApplications,
		KeyProfile,
	}
}

// keyForFile maps a changed file back to its blob key, or "" when the file is
// not one of ours.
func keyForFile(name string) string {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".json") {
		return ""
	}
	key := strings.TrimSuffix(base, ".json")
	for _, known := range blobKeys() {
		if key == known {
			return key
		}
	}
	return ""
}

// updateModTimes records the current modification times of all blob files
func (w *Watcher) updateModTimes() {
	for _, key := range blobKeys() {
		if stat, err := os.Stat(w.store.path(key)); err == nil {
			w.lastModTime[key] = stat.ModTime()
		}
	}
}

// changedKeys returns the blob keys whose files changed since the last check
func (w *Watcher) changedKeys() []string {
	var changed []string
	for _, key := range blobKeys() {
		stat, err := os.Stat(w.store.path(key))
		if err != nil {
			if os.IsNotExist(err) {
				if _, existed := w.lastModTime[key]; existed {
					delete(w.lastModTime, key)
					changed = append(changed, key)
				}
			}
			continue
		}

		lastMod, exists := w.lastModTime[key]
		if !exists || stat.ModTime().After(lastMod) {
			w.lastModTime[key] = stat.ModTime()
			changed = append(changed, key)
		}
	}
	return changed
}

// watchLoop is the main event loop for file watching
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.shouldProcessEvent(event) {
				w.scheduleReload()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.LogError(err, "Store watcher error")
			}

		case <-w.reloadChan:
			// Debounced reload trigger
			keys := w.changedKeys()
			if len(keys) > 0 {
				for _, key := range keys {
					w.store.Invalidate(key)
				}
				if w.logger != nil {
					w.logger.Info("Store files changed, cache invalidated", "keys", keys)
				}
				if w.onReload != nil {
					w.onReload(keys)
				}
			}

		case <-w.stopChan:
			return
		}
	}
}

// shouldProcessEvent determines if an event should trigger a reload check
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if keyForFile(event.Name) == "" {
		return false
	}
	// Write, create, rename, and remove all count; atomic writes show up as
	// renames into place.
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

// scheduleReload schedules a debounced reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		select {
		case w.reloadChan <- struct{}{}:
			// Reload scheduled
		default:
			// Channel is full, reload already scheduled
		}
	})
}

// IsRunning returns whether the watcher is currently running
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}
