// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/util"
)

// =============================================================================
// SAVED SESSION
// =============================================================================

// SavedSession is the on-disk shape of a signed-in session.
type SavedSession struct {
	User    *model.User `json:"user"`
	Token   string      `json:"token"`
	SavedAt time.Time   `json:"saved_at"`
}

// ErrNoSession means no session file exists; the caller starts anonymous.
var ErrNoSession = errors.New("no saved session")

// =============================================================================
// SESSION STORE
// =============================================================================

// SessionStore persists the session file under the base directory.
type SessionStore struct {
	// BaseDir is the state directory. Default: ~/.iurista/
	BaseDir string
}

// NewSessionStore creates a store rooted at ~/.iurista/, creating the
// directory if needed.
func NewSessionStore() (*SessionStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	baseDir := filepath.Join(homeDir, ".iurista")
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, err
	}
	return &SessionStore{BaseDir: baseDir}, nil
}

func (s *SessionStore) path() string {
	return filepath.Join(s.BaseDir, "session.json")
}

// Save writes the session atomically. The file holds a token, so it is
// restricted to the owner.
func (s *SessionStore) Save(sess SavedSession) error {
	sess.SavedAt = time.Now()
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path(), data, 0o600)
}

// Load reads the saved session. Returns ErrNoSession when none exists and
// treats a corrupt file the same way, deleting it.
func (s *SessionStore) Load() (*SavedSession, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var sess SavedSession
	if err := json.Unmarshal(data, &sess); err != nil || sess.User == nil {
		_ = os.Remove(s.path())
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Clear removes the session file. Missing file is not an error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
