// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns the label shown next to a message bubble.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "Usted"
	case RoleAssistant:
		return "Asistente Legal"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single message in the active conversation.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// SuggestedActions are follow-up prompts offered under an assistant
	// reply; empty for user messages.
	SuggestedActions []string `json:"suggested_actions,omitempty"`

	// HasDocument marks a user message that carried a file attachment.
	HasDocument bool `json:"has_document,omitempty"`

	// Pending marks an optimistic user message that has not been confirmed
	// by the server yet. The flag is the only field ever mutated after the
	// message has been rendered.
	Pending bool `json:"-"`
}

// Preview returns a single-line preview of the message, truncated to maxLen
// runes. Used for sidebar titles and logging.
func (m *Message) Preview(maxLen int) string {
	content := strings.ReplaceAll(m.Content, "\n", " ")
	content = strings.ReplaceAll(content, "\r", "")
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty reports whether the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}
