// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks who is signed in and which conversation is open.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iuristatech/iurista-tui/internal/model"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager holds the authenticated user, their token, and the currently
// selected conversation. It is safe for concurrent use; bubbletea commands
// read it from goroutines while the update loop mutates it.
type Manager struct {
	mu sync.Mutex

	user  *model.User
	token string

	// conversationID is nil until the server assigns one on the first
	// authenticated send.
	conversationID *int64

	// Callbacks, invoked outside the lock.
	onChange func(Snapshot)
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	User           *model.User
	Token          string
	ConversationID *int64
	Authenticated  bool
}

// NewManager creates an anonymous session.
func NewManager() *Manager {
	return &Manager{}
}

// OnChange registers a callback fired after every mutation. At most one
// callback is supported; a second call replaces the first.
func (m *Manager) OnChange(fn func(Snapshot)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// =============================================================================
// STATE ACCESS
// =============================================================================

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{
		User:          m.user,
		Token:         m.token,
		Authenticated: m.user != nil,
	}
	if m.conversationID != nil {
		id := *m.conversationID
		snap.ConversationID = &id
	}
	return snap
}

// User returns the signed-in user, or nil when anonymous.
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Authenticated reports whether a user is signed in.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// IsAdmin reports whether the signed-in user may open the admin dashboard.
func (m *Manager) IsAdmin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && m.user.Admin()
}

// Token returns the current bearer token, empty when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// ConversationID returns the open conversation id, or nil before the server
// has assigned one.
func (m *Manager) ConversationID() *int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conversationID == nil {
		return nil
	}
	id := *m.conversationID
	return &id
}

// =============================================================================
// MUTATION
// =============================================================================

// SignIn installs the authenticated user and token, clearing any open
// conversation from the anonymous session.
func (m *Manager) SignIn(user *model.User, token string) {
	m.mu.Lock()
	m.user = user
	m.token = token
	m.conversationID = nil
	fn, snap := m.onChange, m.snapshotLocked()
	m.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// SignOut returns the session to the anonymous state.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.conversationID = nil
	fn, snap := m.onChange, m.snapshotLocked()
	m.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// SetConversation records the conversation the chat page is showing. Pass
// nil when starting a fresh consultation.
func (m *Manager) SetConversation(id *int64) {
	m.mu.Lock()
	if id == nil {
		m.conversationID = nil
	} else {
		v := *id
		m.conversationID = &v
	}
	fn, snap := m.onChange, m.snapshotLocked()
	m.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// AdoptConversation records a server-assigned conversation id, but only if
// no other conversation was selected meanwhile. Returns whether the id was
// adopted; callers drop the reply when it was not.
func (m *Manager) AdoptConversation(id int64) bool {
	m.mu.Lock()
	if m.conversationID != nil && *m.conversationID != id {
		m.mu.Unlock()
		return false
	}
	m.conversationID = &id
	fn, snap := m.onChange, m.snapshotLocked()
	m.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return true
}

// =============================================================================
// TOKEN EXPIRY
// =============================================================================

// TokenExpired inspects the stored token's exp claim without verifying the
// signature; verification belongs to the server. A malformed token or one
// with no exp claim counts as expired so rehydration falls back to the
// anonymous session.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return !exp.After(now)
}
