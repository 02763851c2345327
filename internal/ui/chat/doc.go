// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the consultation view: the transcript, the
// message input with file attachment, the conversation sidebar, and the
// optimistic send pipeline against the Iurista backend (or the built-in
// simulator in local mode).
//
// The send pipeline is a chain of tea.Cmds reconciled in Update:
//
//  1. Anonymous visitors are stopped by the auth prompt before anything
//     is appended.
//  2. The user message is appended immediately, flagged pending.
//  3. While loading, further sends are rejected at the input boundary, the
//     typing indicator runs, and the status capsule shows what the
//     classifier expects the assistant to be doing.
//  4. An attached file is validated and uploaded before the chat call; the
//     extracted text rides along as document context.
//  5. On success the pending flag clears, a server-assigned conversation id
//     is adopted (unless the user already switched away, in which case the
//     late reply is dropped), and the assistant reply is appended.
//  6. On failure the pending flag clears and one fixed connection-error
//     reply is appended. No retries.
package chat
