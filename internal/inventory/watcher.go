package inventory

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// Sink receives a freshly parsed inventory.
type Sink interface {
	ReplaceInventory(items []models.SoftwareItem) (int, error)
}

// Watcher watches an import directory and replaces the stored inventory
// with the newest .csv or .json file dropped into it.
type Watcher struct {
	dir           string
	sink          Sink
	logger        *zap.Logger
	onImport      func(path string, count int)
	watcher       *fsnotify.Watcher
	mu            sync.Mutex
	changed       map[string]bool
	debounceTimer *time.Timer
	debounceDelay time.Duration
	stopChan      chan struct{}
	stopOnce      sync.Once
}

// NewWatcher creates a watcher for dir. onImport, when not nil, is called
// after every successful import.
func NewWatcher(dir string, sink Sink, onImport func(path string, count int), logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		dir:           dir,
		sink:          sink,
		onImport:      onImport,
		logger:        logger.Named("inventory-watcher"),
		changed:       make(map[string]bool),
		debounceDelay: 2 * time.Second, // Wait after the last write before importing
		stopChan:      make(chan struct{}),
	}
}

// SetDebounce changes the quiet period between the last event and the import.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	w.debounceDelay = d
	w.mu.Unlock()
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher
	w.logger.Info("Watching inventory import directory", zap.String("dir", w.dir))

	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		if w.watcher != nil {
			err = w.watcher.Close()
		}
	})
	return err
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))
		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	if !IsSupported(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.changed[event.Name] = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.importLatest)
}

func (w *Watcher) stopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

// importLatest imports the most recently modified of the changed files.
// It does nothing once the watcher is stopped, since the debounce timer
// may already have fired.
func (w *Watcher) importLatest() {
	if w.stopped() {
		return
	}
	w.mu.Lock()
	paths := w.changed
	w.changed = make(map[string]bool)
	w.mu.Unlock()

	var newest string
	var newestMod time.Time
	for p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest, newestMod = p, info.ModTime()
		}
	}
	if newest == "" || w.stopped() {
		return
	}
	w.Import(newest)
}

// Import parses path and hands the items to the sink.
func (w *Watcher) Import(path string) (int, error) {
	items, err := ParseFile(path)
	if err != nil {
		w.logger.Warn("Could not parse inventory file", zap.String("path", path), zap.Error(err))
		return 0, err
	}
	count, err := w.sink.ReplaceInventory(items)
	if err != nil {
		w.logger.Error("Could not store inventory", zap.String("path", path), zap.Error(err))
		return 0, err
	}
	w.logger.Info("Inventory imported", zap.String("path", path), zap.Int("items", count))
	if w.onImport != nil {
		w.onImport(path, count)
	}
	return count, nil
}
