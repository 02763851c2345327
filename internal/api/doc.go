// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Iurista backend.
//
// The client covers the public surface (login, register, chat, document
// upload, conversation list and history) and the admin subtree (users,
// stats, recent conversations, knowledge base). All calls take a context,
// return typed responses, and wrap failures in *ClientError so callers can
// branch on the error type without string matching.
//
// Example:
//
//	client := api.NewClient()
//	resp, err := client.Chat(ctx, api.ChatRequest{Message: "hola"})
//	if api.IsConnection(err) {
//	    // surface the fixed connection-error message
//	}
package api
