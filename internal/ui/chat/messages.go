// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/engine"
	"github.com/iuristatech/iurista-tui/internal/model"
)

// =============================================================================
// INTERNAL MESSAGES
// =============================================================================

// chatReplyMsg carries a successful assistant reply from the backend.
type chatReplyMsg struct {
	resp *api.ChatResponse
}

// chatFailedMsg signals that the send could not complete. The pipeline
// appends one fixed connection-error reply and stops.
type chatFailedMsg struct {
	err error
}

// uploadFailedMsg signals that the attached file could not be processed.
// It carries the user-facing reason when the server supplied one.
type uploadFailedMsg struct {
	reason string
	err    error
}

// localReplyMsg carries a simulated reply in local mode, delivered after
// the artificial typing delay.
type localReplyMsg struct {
	reply          engine.Reply
	conversationID int64
}

// conversationsMsg replaces the sidebar list wholesale.
type conversationsMsg struct {
	conversations []model.ConversationSummary
}

// conversationLoadedMsg replaces the transcript with a stored conversation.
type conversationLoadedMsg struct {
	conversationID int64
	messages       []*model.Message
}

// syncFailedMsg is a non-fatal history-sync failure; logged, not shown.
type syncFailedMsg struct {
	err error
}

// =============================================================================
// OUTBOUND MESSAGES
// =============================================================================

// RequestAuthMsg asks the app model to open the login page. Register
// selects the registration variant of the form.
type RequestAuthMsg struct {
	Register bool
}

// OpenProfileMsg asks the app model to show the profile page.
type OpenProfileMsg struct{}

// LogoutMsg asks the app model to clear the session and return to the
// landing page.
type LogoutMsg struct{}
