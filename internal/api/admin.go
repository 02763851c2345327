// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"io"
	"net/http"
	"strconv"
)

// =============================================================================
// ADMIN SUBTREE
// =============================================================================

// AdminStats fetches the dashboard counters.
func (c *Client) AdminStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.getJSON(ctx, "/api/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminUsers lists all registered users.
func (c *Client) AdminUsers(ctx context.Context) ([]AdminUser, error) {
	var resp AdminUsersResponse
	if err := c.getJSON(ctx, "/api/admin/users", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// AdminCreateUser registers a new user on behalf of an administrator.
func (c *Client) AdminCreateUser(ctx context.Context, payload UserPayload) (*AdminUser, error) {
	var user AdminUser
	if err := c.postJSON(ctx, "/api/admin/users", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminUpdateUser changes an existing user's profile or admin flag.
func (c *Client) AdminUpdateUser(ctx context.Context, userID int64, payload UserPayload) (*AdminUser, error) {
	var user AdminUser
	path := "/api/admin/users/" + strconv.FormatInt(userID, 10)
	if err := c.putJSON(ctx, path, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminDeleteUser removes a user and their conversations.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int64) error {
	return c.deleteJSON(ctx, "/api/admin/users/"+strconv.FormatInt(userID, 10))
}

// AdminConversations lists recent conversations across all users.
func (c *Client) AdminConversations(ctx context.Context) ([]AdminConversation, error) {
	var resp AdminConversationsResponse
	if err := c.getJSON(ctx, "/api/admin/conversations", &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// AdminKnowledge lists the firm's knowledge-base documents.
func (c *Client) AdminKnowledge(ctx context.Context) ([]KnowledgeDocument, error) {
	var resp KnowledgeResponse
	if err := c.getJSON(ctx, "/api/admin/knowledge", &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// AdminUploadKnowledge adds a PDF to the knowledge base. The server only
// accepts PDF files on this endpoint.
func (c *Client) AdminUploadKnowledge(ctx context.Context, filename string, content io.Reader) (*KnowledgeDocument, error) {
	req, contentType, err := buildMultipart(ctx, c.config.BaseURL+"/api/admin/knowledge", filename, content)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var doc KnowledgeDocument
	if err := c.do(req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// AdminDeleteKnowledge removes a knowledge-base document.
func (c *Client) AdminDeleteKnowledge(ctx context.Context, docID int64) error {
	return c.deleteJSON(ctx, "/api/admin/knowledge/"+strconv.FormatInt(docID, 10))
}

// buildMultipart constructs a POST request carrying one file field.
func buildMultipart(ctx context.Context, url, filename string, content io.Reader) (*http.Request, string, error) {
	body, contentType, err := encodeMultipart(filename, content)
	if err != nil {
		return nil, "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, "", &ClientError{Type: ErrTypeConnection, Message: "failed to create upload request", Cause: err}
	}
	return req, contentType, nil
}
