// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the application logger. The TUI owns stdout, so
// all diagnostics go to a JSON log file under the iurista home directory.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogFileName is the log file created under the iurista home directory.
const LogFileName = "iurista.log"

var (
	mu       sync.Mutex
	logger   *slog.Logger
	logFile  *os.File
	disabled = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Init opens the log file under homeDir and installs the package logger.
// Safe to call more than once; later calls replace the sink.
func Init(homeDir string, level slog.Level) error {
	mu.Lock()
	defer mu.Unlock()

	// The same directory holds the session token, so keep it private.
	if err := os.MkdirAll(homeDir, 0o700); err != nil {
		return err
	}

	path := filepath.Join(homeDir, LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// L returns the application logger. Before Init it discards everything, so
// packages can log unconditionally.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return disabled
	}
	return logger
}

// With returns a component-scoped logger, e.g. logging.With("api").
func With(component string) *slog.Logger {
	return L().With("component", component)
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = nil
	return err
}
