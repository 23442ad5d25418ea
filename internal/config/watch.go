package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const reloadDebounce = 250 * time.Millisecond

// MessagesWatcher reloads the messages file into a LiveMessages whenever it
// changes on disk. A file that fails to parse or validate is ignored and the
// previous messages stay in place.
type MessagesWatcher struct {
	path string
	live *LiveMessages
	log  zerolog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

func NewMessagesWatcher(path string, live *LiveMessages, log zerolog.Logger) *MessagesWatcher {
	return &MessagesWatcher{
		path: path,
		live: live,
		log:  log.With().Str("comp", "config").Str("path", path).Logger(),
	}
}

// Watch blocks until ctx is done.
func (w *MessagesWatcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	// watch the directory so editors that replace the file are still seen
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	file := filepath.Base(w.path)
	w.log.Info().Msg("watching messages file")

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("messages watcher error")
		}
	}
}

func (w *MessagesWatcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(reloadDebounce, func() { w.Reload() })
}

func (w *MessagesWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Reload reads the file once and applies it if valid.
func (w *MessagesWatcher) Reload() bool {
	msgs, err := LoadMessages(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msg("messages file rejected, keeping previous")
		return false
	}

	w.live.Set(msgs)
	ApplyLogLevel(msgs.LogLevel)
	w.log.Info().Msg("messages reloaded")
	return true
}

// ApplyLogLevel sets the global level; empty keeps the current one.
func ApplyLogLevel(level string) {
	if level == "" {
		return
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
