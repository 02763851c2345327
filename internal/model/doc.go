// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the client-side data structures for the legal
// assistant: messages, the per-conversation message log, conversation
// summaries, and users.
//
// # Key Types
//
//   - Message: a single chat message with role, content, and pending flag
//   - Log: append-only ordered message log with optimistic-send semantics
//   - ConversationSummary: server-owned conversation metadata for the sidebar
//   - User: the authenticated account returned by the login endpoint
//
// The Log is owned by the chat coordinator; views only read snapshots of it.
package model
