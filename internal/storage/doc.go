// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists client-side state under ~/.iurista/.
//
// Two stores live here:
//
//   - SessionStore: the signed-in user and token as a small JSON file,
//     written atomically with 0600 permissions so a crash never leaves a
//     readable half-written session behind.
//   - HistoryStore: local conversation history in SQLite, used by
//     local-only mode where no backend keeps the record.
//
// Connected mode treats the backend as the source of truth for
// conversations; only the session file is used there.
package storage
