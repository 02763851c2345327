// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login implements the sign-in and registration forms. The two
// variants share one model behind a mode flag; the page the user asked for
// from the auth prompt pre-selects the variant. A registration that lands
// in the approval queue shows the pending-approval notice instead of
// signing the user in.
package login
