// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks who is signed in and which conversation is open.
//
// # Key Types
//
//   - Manager: thread-safe holder of user, token, and open conversation
//   - Snapshot: point-in-time copy handed to subscribers and commands
//
// # Usage
//
// Create an anonymous session and sign a user in:
//
//	mgr := session.NewManager()
//	mgr.SignIn(user, token)
//
// Check a persisted token before rehydrating:
//
//	if session.TokenExpired(saved.Token, time.Now()) {
//	    // discard the saved session, start anonymous
//	}
//
// The token expiry check reads the exp claim without verifying the
// signature; the backend remains the authority on token validity.
package session
