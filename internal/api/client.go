// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/iuristatech/iurista-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrorType categorizes client failures so callers can branch without
// string matching.
type ErrorType int

const (
	// ErrTypeConnection means the backend could not be reached at all.
	ErrTypeConnection ErrorType = iota
	// ErrTypeTimeout means the request exceeded the client timeout.
	ErrTypeTimeout
	// ErrTypeAuth means the server rejected the credentials or token (401/403).
	ErrTypeAuth
	// ErrTypeServer means the server answered with a non-2xx status.
	ErrTypeServer
	// ErrTypeDecode means the response body could not be parsed.
	ErrTypeDecode
)

// Sentinel errors for the common failure modes.
var (
	ErrNotReachable = errors.New("backend not reachable")
	ErrTimeout      = errors.New("request timed out")
	ErrUnauthorized = errors.New("unauthorized")
)

// ClientError is the error type returned by all client methods.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// IsConnection reports whether err is a connection or timeout failure, the
// cases the chat page maps to the fixed Spanish connection-error reply.
func IsConnection(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeConnection || ce.Type == ErrTypeTimeout
	}
	return false
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeAuth
	}
	return false
}

// =============================================================================
// CLIENT
// =============================================================================

// ClientConfig holds the connection settings for the backend.
type ClientConfig struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string
	// Timeout bounds each request end to end.
	Timeout time.Duration
}

// DefaultConfig returns the settings for a local development backend.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		BaseURL: "http://127.0.0.1:5000",
		Timeout: 30 * time.Second,
	}
}

// Client talks to the Iurista backend over HTTP.
type Client struct {
	config ClientConfig
	http   *http.Client
	token  string
}

// NewClient creates a client with default settings.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client, filling zero-value fields with
// defaults.
func NewClientWithConfig(config ClientConfig) *Client {
	def := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = def.BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = def.Timeout
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

// SetToken installs the bearer token sent on subsequent requests. An empty
// token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// SetBaseURL repoints the client at another backend. Used when a config
// reload changes the API URL at runtime.
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL != "" {
		c.config.BaseURL = baseURL
	}
}

// =============================================================================
// AUTH
// =============================================================================

// Login exchanges credentials for a user and session token. On success the
// token is installed on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.postJSON(ctx, "/api/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Register creates an account. The caller still logs in afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.postJSON(ctx, "/api/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends a user message and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.postJSON(ctx, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Upload sends a document for server-side text extraction. The server
// answers 200 even on extraction failure, reporting it in the Error field.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*UploadResponse, error) {
	req, contentType, err := buildMultipart(ctx, c.config.BaseURL+"/api/upload", filename, content)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var resp UploadResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// encodeMultipart builds a multipart body holding one "file" form field.
func encodeMultipart(filename string, content io.Reader) (io.Reader, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", &ClientError{Type: ErrTypeDecode, Message: "failed to build upload form", Cause: err}
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, "", &ClientError{Type: ErrTypeDecode, Message: "failed to read upload content", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, "", &ClientError{Type: ErrTypeDecode, Message: "failed to finalize upload form", Cause: err}
	}
	return &body, writer.FormDataContentType(), nil
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

// Conversations lists the conversation summaries of a user, newest first.
func (c *Client) Conversations(ctx context.Context, userID int64) ([]model.ConversationSummary, error) {
	var resp ConversationsResponse
	path := "/api/conversations/" + strconv.FormatInt(userID, 10)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// ConversationMessages fetches the full ordered history of a conversation.
func (c *Client) ConversationMessages(ctx context.Context, conversationID int64) ([]WireMessage, error) {
	var resp MessagesResponse
	path := "/api/conversations/" + strconv.FormatInt(conversationID, 10) + "/messages"
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// =============================================================================
// PROFILE
// =============================================================================

// Profile fetches a user's activity stats and recent conversations.
func (c *Client) Profile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	var resp ProfileResponse
	path := "/api/user/" + strconv.FormatInt(userID, 10) + "/profile"
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile renames the user's display name.
func (c *Client) UpdateProfile(ctx context.Context, userID int64, name string) error {
	var resp profileUpdateResponse
	path := "/api/user/" + strconv.FormatInt(userID, 10) + "/profile"
	if err := c.putJSON(ctx, path, profileUpdateRequest{Name: name}, &resp); err != nil {
		return err
	}
	if resp.Status != "success" {
		return &ClientError{Type: ErrTypeServer, Message: "profile update rejected"}
	}
	return nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+path, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &ClientError{Type: ErrTypeDecode, Message: "failed to encode request", Cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.config.BaseURL+path, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	return c.do(req, nil)
}

func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &ClientError{Type: ErrTypeDecode, Message: "failed to encode request", Cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.config.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do runs the request and decodes the response into out (when non-nil).
func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: ErrTimeout}
		}
		return &ClientError{Type: ErrTypeConnection, Message: "backend not reachable", Cause: ErrNotReachable}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &ClientError{Type: ErrTypeAuth, Message: serverMessage(resp.Body, "unauthorized"), Cause: ErrUnauthorized}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := serverMessage(resp.Body, fmt.Sprintf("server returned status %d", resp.StatusCode))
		return &ClientError{Type: ErrTypeServer, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeDecode, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// serverMessage extracts the error text from a non-2xx body, falling back
// to the given default.
func serverMessage(body io.Reader, fallback string) string {
	var apiErr apiError
	if err := json.NewDecoder(body).Decode(&apiErr); err == nil {
		if msg := apiErr.text(); msg != "" {
			return msg
		}
	}
	return fallback
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
