// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package attach validates and reads document attachments before they join
// a chat message. Validation (extension and size limits) happens locally;
// text extraction goes to the backend in connected mode, while local-only
// mode extracts TXT and PDF content in-process.
package attach
