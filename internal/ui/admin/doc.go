// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package admin implements the dashboard reserved for administrator
// accounts: overview stats, user management, recent conversations, and the
// knowledge base. Stats refresh on a poll tick that is gated by a rate
// limiter, so a fast tick can never turn into a request flood.
package admin
