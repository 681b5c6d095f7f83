package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 500

	defaultDebounce = 500 * time.Millisecond
)

// WatchEvent represents a judgment file change event.
type WatchEvent struct {
	// Path is the file path relative to the watched directory.
	Path string

	// Operation is the type of change.
	Operation WatchOperation

	// AbsPath is the absolute file path.
	AbsPath string
}

// WatchOperation indicates the type of file operation.
type WatchOperation string

// WatchOpCreate, WatchOpModify, and WatchOpDelete enumerate the file watch operation types.
const (
	WatchOpCreate WatchOperation = "create"
	WatchOpModify WatchOperation = "modify"
	WatchOpDelete WatchOperation = "delete"
)

// Watcher watches a directory tree for judgment file changes and emits
// debounced events. Content hashes filter out spurious writes that do
// not change the file.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	// Debouncing: collect changes before processing
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Hash-based change detection
	hashMu sync.RWMutex
	hashes map[string]string

	// Output channel
	events chan WatchEvent

	// Metrics
	droppedEvents atomic.Int64
}

// NewWatcher creates a watcher over the given root directory.
func NewWatcher(root string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{
		root:     root,
		watcher:  fsw,
		logger:   logger,
		debounce: debounce,
		pending:  make(map[string]fsnotify.Op),
		hashes:   make(map[string]string),
		events:   make(chan WatchEvent, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start begins watching the root directory for changes.
func (w *Watcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.root, 0755); err != nil {
		return err
	}

	if err := w.addWatchesRecursive(w.root); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Judgment watcher started",
		"root", w.root,
		"debounce", w.debounce)

	return nil
}

// Stop stops the watcher.
// The events channel is closed by processEvents when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// SetHash records the hash for a file (used after an initial scan).
func (w *Watcher) SetHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

// GetHash returns the recorded hash for a file.
func (w *Watcher) GetHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

// addWatchesRecursive adds watches to all directories.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Only watch directories
		if !info.IsDir() {
			return nil
		}

		// Skip hidden directories
		base := filepath.Base(path)
		if strings.HasPrefix(base, ".") && base != "." {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent processes a single fsnotify event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	ext := strings.ToLower(filepath.Ext(path))
	if !judgmentExts[ext] {
		// But handle directory creation (for new watches)
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}

	relPath, _ := filepath.Rel(w.root, path)

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Judgment change detected",
		"path", relPath,
		"op", event.Op.String())
}

// handleNewDirectory adds a watch to a newly created directory.
func (w *Watcher) handleNewDirectory(path string) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return
	}

	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
	} else {
		w.logger.Debug("Added watch for new directory", "path", path)
	}
}

// flushPending processes accumulated changes.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}

	// Copy and clear pending
	toProcess := make(map[string]fsnotify.Op)
	for k, v := range w.pending {
		toProcess[k] = v
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		relPath, _ := filepath.Rel(w.root, path)
		event := WatchEvent{
			Path:    relPath,
			AbsPath: path,
		}

		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			event.Operation = WatchOpDelete

			w.hashMu.Lock()
			delete(w.hashes, relPath)
			w.hashMu.Unlock()

			w.sendEvent(event)
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			event.Operation = WatchOpDelete
			w.sendEvent(event)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			w.logger.Warn("Failed to read file for hash check",
				"path", relPath,
				"error", err)
			continue
		}

		newHash := ContentHash(content)

		oldHash, hadHash := w.GetHash(relPath)
		if hadHash && oldHash == newHash {
			// Content unchanged, skip
			continue
		}

		w.SetHash(relPath, newHash)

		if op.Has(fsnotify.Create) || !hadHash {
			event.Operation = WatchOpCreate
		} else {
			event.Operation = WatchOpModify
		}

		w.sendEvent(event)
	}
}

// sendEvent sends an event to the output channel.
func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			"path", event.Path,
			"op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}

// DroppedEvents returns the number of events dropped due to channel overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

// ContentHash computes a SHA-256 hash of the content for change detection.
func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
