// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// MESSAGE LOG
// =============================================================================

// Log is the append-only ordered message log for the active conversation.
//
// Identity: every appended message gets an ID built from a per-log monotonic
// sequence plus a random fragment. IDs are stable across renders, unique
// within the session, and never reused; even after Clear, the sequence keeps
// counting.
//
// Optimistic sends: AppendUser flags the message Pending; Reconcile clears
// the flag once the server round trip finishes. Message content is never
// mutated in place after it has been appended.
type Log struct {
	seq      int
	messages []*Message
}

// NewLog creates an empty message log.
func NewLog() *Log {
	return &Log{messages: make([]*Message, 0)}
}

// nextID returns the next message ID. The uuid fragment keeps IDs from
// colliding with server-mapped history entries that reuse small numbers.
func (l *Log) nextID() string {
	l.seq++
	return "msg-" + strconv.Itoa(l.seq) + "-" + uuid.NewString()[:8]
}

// =============================================================================
// APPEND OPERATIONS
// =============================================================================

// AppendUser appends an optimistic user message and returns it. The message
// is visible immediately and flagged Pending until reconciled.
func (l *Log) AppendUser(content string, hasDocument bool) *Message {
	msg := &Message{
		ID:          l.nextID(),
		Role:        RoleUser,
		Content:     content,
		HasDocument: hasDocument,
		Pending:     true,
		Timestamp:   time.Now(),
	}
	l.messages = append(l.messages, msg)
	return msg
}

// AppendAssistant appends an assistant reply with optional suggested
// follow-up actions.
func (l *Log) AppendAssistant(content string, suggestedActions []string) *Message {
	msg := &Message{
		ID:               l.nextID(),
		Role:             RoleAssistant,
		Content:          content,
		SuggestedActions: suggestedActions,
		Timestamp:        time.Now(),
	}
	l.messages = append(l.messages, msg)
	return msg
}

// Reconcile clears the Pending flag on the most recent pending user message.
// Called on both success and failure of the server round trip; on failure the
// pipeline appends a companion assistant error entry instead of touching the
// user message.
func (l *Log) Reconcile() {
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Pending {
			l.messages[i].Pending = false
			return
		}
	}
}

// HasPending reports whether an optimistic message is awaiting
// reconciliation. At most one can be pending at a time because the UI
// rejects new sends while loading.
func (l *Log) HasPending() bool {
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Pending {
			return true
		}
	}
	return false
}

// =============================================================================
// BULK OPERATIONS
// =============================================================================

// ReplaceAll swaps the entire log for the given messages. Used when
// switching conversations: no residue from the previous conversation
// survives. The ID sequence keeps counting so identities are never reused.
func (l *Log) ReplaceAll(messages []*Message) {
	l.messages = make([]*Message, len(messages))
	copy(l.messages, messages)
}

// Clear empties the log for a fresh conversation.
func (l *Log) Clear() {
	l.messages = make([]*Message, 0)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns the messages in order. Callers must treat the slice as
// read-only; only the owning coordinator mutates the log.
func (l *Log) Messages() []*Message {
	return l.messages
}

// Len returns the number of messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// IsEmpty reports whether the log has no messages.
func (l *Log) IsEmpty() bool {
	return len(l.messages) == 0
}

// Last returns the most recent message, or nil if the log is empty.
func (l *Log) Last() *Message {
	if len(l.messages) == 0 {
		return nil
	}
	return l.messages[len(l.messages)-1]
}

// Title derives a conversation title from the first user message, the same
// rule the server applies. Used for local-mode history.
func (l *Log) Title() string {
	for _, msg := range l.messages {
		if msg.Role == RoleUser && msg.Content != "" {
			return msg.Preview(50)
		}
	}
	return "Nueva consulta"
}
