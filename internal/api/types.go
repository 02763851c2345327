// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"time"

	"github.com/iuristatech/iurista-tui/internal/model"
)

// =============================================================================
// AUTH TYPES
// =============================================================================

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// RegisterResponse confirms a created account.
type RegisterResponse struct {
	User    *model.User `json:"user"`
	Message string      `json:"message"`
}

// =============================================================================
// CHAT TYPES
// =============================================================================

// ChatRequest is the body of POST /api/chat. UserID is nil for anonymous
// sends; ConversationID is nil to let the server start a new conversation.
type ChatRequest struct {
	UserID         *int64 `json:"userId"`
	ConversationID *int64 `json:"conversationId"`
	Message        string `json:"message"`

	// DocumentContext carries the text extracted from an uploaded file so
	// the reply can reference its content.
	DocumentContext string `json:"documentContext,omitempty"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Response         string   `json:"response"`
	Status           string   `json:"status"`
	ConversationID   int64    `json:"conversationId"`
	SuggestedActions []string `json:"suggestedActions"`
}

// UploadResponse is the body returned by POST /api/upload. On success Text
// holds the extracted document context; on failure Error is set.
type UploadResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Error    string `json:"error,omitempty"`
}

// =============================================================================
// CONVERSATION TYPES
// =============================================================================

// ConversationsResponse is the body of GET /api/conversations/{userId}.
type ConversationsResponse struct {
	Conversations []model.ConversationSummary `json:"conversations"`
}

// WireMessage is one history entry from GET /api/conversations/{id}/messages.
type WireMessage struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// MessagesResponse is the body of GET /api/conversations/{id}/messages.
type MessagesResponse struct {
	Messages []WireMessage `json:"messages"`
}

// =============================================================================
// ADMIN TYPES
// =============================================================================

// Stats is the body of GET /api/admin/stats.
type Stats struct {
	TotalUsers         int `json:"totalUsers"`
	TotalConversations int `json:"totalConversations"`
	ActiveUsers24h     int `json:"activeUsers24h"`
	RiskCases          int `json:"riskCases"`
}

// AdminUser is one entry from GET /api/admin/users.
type AdminUser struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	IsAdmin           bool      `json:"isAdmin"`
	ConversationCount int       `json:"conversationCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

// AdminUsersResponse is the body of GET /api/admin/users.
type AdminUsersResponse struct {
	Users []AdminUser `json:"users"`
}

// UserPayload is the body for creating or updating a user via the admin
// subtree. Password is only sent on create.
type UserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

// AdminConversation is one entry from GET /api/admin/conversations.
type AdminConversation struct {
	ID        int64                    `json:"id"`
	Title     string                   `json:"title"`
	UserEmail string                   `json:"userEmail"`
	Status    model.ConversationStatus `json:"status"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// AdminConversationsResponse is the body of GET /api/admin/conversations.
type AdminConversationsResponse struct {
	Conversations []AdminConversation `json:"conversations"`
}

// KnowledgeDocument is one entry of the firm's knowledge base.
type KnowledgeDocument struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// KnowledgeResponse is the body of GET /api/admin/knowledge.
type KnowledgeResponse struct {
	Documents []KnowledgeDocument `json:"documents"`
}

// =============================================================================
// PROFILE TYPES
// =============================================================================

// ProfileStats summarizes a user's activity.
type ProfileStats struct {
	TotalConversations int `json:"totalConversations"`
	TotalMessages      int `json:"totalMessages"`
}

// ProfileResponse is the body of GET /api/user/{id}/profile.
type ProfileResponse struct {
	Stats         ProfileStats                `json:"stats"`
	Conversations []model.ConversationSummary `json:"conversations"`
}

// profileUpdateRequest is the body of PUT /api/user/{id}/profile.
type profileUpdateRequest struct {
	Name string `json:"name"`
}

// profileUpdateResponse confirms a profile change.
type profileUpdateResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// GENERIC TYPES
// =============================================================================

// apiError is the error body the server sends with non-2xx statuses.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// text returns whichever error field the server populated.
func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
