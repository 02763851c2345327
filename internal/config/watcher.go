// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iuristatech/iurista-tui/internal/logging"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads the global config when ~/.iurista/config.toml changes,
// so theme or server edits apply without restarting the TUI.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// debounceWindow coalesces the editor's write-then-rename event bursts.
const debounceWindow = 200 * time.Millisecond

// Watch starts watching the config file. onReload fires after each
// successful reload; pass nil if nothing needs to react.
func Watch(onReload func(*Config)) (*Watcher, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace the file by rename, which drops
	// a watch set on the file itself.
	dir, err := ConfigDir()
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{watcher: fsw, done: make(chan struct{})}
	go w.run(path, onReload)
	return w, nil
}

func (w *Watcher) run(path string, onReload func(*Config)) {
	log := logging.With("config")

	var timer *time.Timer
	reload := func() {
		if err := ReloadGlobal(); err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		log.Info("config reloaded", "path", path)
		if onReload != nil {
			onReload(Global())
		}
	}

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "error", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
