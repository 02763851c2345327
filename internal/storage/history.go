// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/iuristatech/iurista-tui/internal/model"
)

// =============================================================================
// HISTORY STORE
// =============================================================================

// HistoryStore keeps local-mode conversation history in SQLite.
type HistoryStore struct {
	db *sql.DB
}

// HistoryMessage is one stored chat turn.
type HistoryMessage struct {
	ID             int64
	ConversationID int64
	Role           string
	Content        string
	HasDocument    bool
	Timestamp      time.Time
}

const historySchema = `
CREATE TABLE IF NOT EXISTS conversations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	conversation_id INTEGER NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	has_document    INTEGER NOT NULL DEFAULT 0,
	timestamp       TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id);
`

// OpenHistory opens (and migrates) the history database at path.
func OpenHistory(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The TUI is the only writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, err
	}
	return &HistoryStore{db: db}, nil
}

// Close releases the database handle.
func (h *HistoryStore) Close() error {
	return h.db.Close()
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

// CreateConversation starts a new conversation and returns its id.
func (h *HistoryStore) CreateConversation(ctx context.Context, title string) (int64, error) {
	now := time.Now()
	res, err := h.db.ExecContext(ctx,
		`INSERT INTO conversations (title, status, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, string(model.ConversationActive), now, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SetStatus updates a conversation's status marker.
func (h *HistoryStore) SetStatus(ctx context.Context, conversationID int64, status model.ConversationStatus) error {
	_, err := h.db.ExecContext(ctx,
		`UPDATE conversations SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now(), conversationID)
	return err
}

// Conversations lists all stored conversations, most recently updated first.
func (h *HistoryStore) Conversations(ctx context.Context) ([]model.ConversationSummary, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, title, status, updated_at FROM conversations ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ConversationSummary
	for rows.Next() {
		var c model.ConversationSummary
		var status string
		if err := rows.Scan(&c.ID, &c.Title, &status, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Status = model.ConversationStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

// =============================================================================
// MESSAGES
// =============================================================================

// AppendMessage stores one chat turn and bumps the conversation's
// updated_at so it sorts to the top of the sidebar.
func (h *HistoryStore) AppendMessage(ctx context.Context, msg HistoryMessage) (int64, error) {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO messages (conversation_id, role, content, has_document, timestamp) VALUES (?, ?, ?, ?, ?)`,
		msg.ConversationID, msg.Role, msg.Content, msg.HasDocument, ts)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conversations SET updated_at = ? WHERE id = ?`, ts, msg.ConversationID); err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// Messages returns the full ordered history of a conversation.
func (h *HistoryStore) Messages(ctx context.Context, conversationID int64) ([]HistoryMessage, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, conversation_id, role, content, has_document, timestamp
		 FROM messages WHERE conversation_id = ? ORDER BY id ASC`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryMessage
	for rows.Next() {
		var m HistoryMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.HasDocument, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeleteConversation removes a conversation and its messages.
func (h *HistoryStore) DeleteConversation(ctx context.Context, conversationID int64) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE conversation_id = ?`, conversationID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, conversationID); err != nil {
		return err
	}
	return tx.Commit()
}
