// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the line-oriented front-end: argument parsing for
// the iurista binary and the "ask" REPL for environments where the
// full-screen TUI is unwelcome (pipes, CI, remote shells).
package cli
