// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the iurista client:
// atomic file persistence, width-aware text truncation, and human-readable
// formatting of byte sizes.
package util
