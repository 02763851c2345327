// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// =============================================================================
// CONVERSATION SUMMARY
// =============================================================================

// ConversationStatus is the server-assigned state of a conversation.
type ConversationStatus string

const (
	ConversationActive       ConversationStatus = "active"
	ConversationRiskDetected ConversationStatus = "risk_detected"
	ConversationArchived     ConversationStatus = "archived"
)

// Indicator returns the sidebar marker for the status.
func (s ConversationStatus) Indicator() string {
	switch s {
	case ConversationRiskDetected:
		return "!"
	case ConversationArchived:
		return "·"
	default:
		return ""
	}
}

// ConversationSummary is the sidebar entry for one conversation. The server
// owns this data; the client holds a read-only cached list that is replaced
// wholesale on every refresh.
type ConversationSummary struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Status    ConversationStatus `json:"status"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// =============================================================================
// USER
// =============================================================================

// User is the account record returned by the login and register endpoints.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`

	// IsAdmin gates the admin dashboard. Some server responses carry the
	// flag, others only the role string; Admin() accepts either.
	IsAdmin bool `json:"is_admin"`
}

// UnmarshalJSON accepts the admin flag under both spellings the backend
// emits, "is_admin" and "isAdmin".
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		IsAdminCamel bool `json:"isAdmin"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	u.IsAdmin = u.IsAdmin || aux.IsAdminCamel
	return nil
}

// Admin reports whether the user may enter the admin dashboard.
func (u *User) Admin() bool {
	return u != nil && (u.IsAdmin || u.Role == "admin")
}

// DisplayName returns the name to show in the profile view, falling back to
// the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
