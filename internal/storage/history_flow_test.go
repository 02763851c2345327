// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iuristatech/iurista-tui/internal/model"
)

// TestHistoryConsultationFlow walks a full local-mode consultation:
// a new conversation, several turns, a risk escalation, and reload.
func TestHistoryConsultationFlow(t *testing.T) {
	ctx := context.Background()
	store, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	convID, err := store.CreateConversation(ctx, "Multa de la UGPP por mora")
	require.NoError(t, err)
	require.NotZero(t, convID)

	_, err = store.AppendMessage(ctx, HistoryMessage{
		ConversationID: convID,
		Role:           "user",
		Content:        "Me llegó una multa de la UGPP, ¿qué hago?",
	})
	require.NoError(t, err)

	_, err = store.AppendMessage(ctx, HistoryMessage{
		ConversationID: convID,
		Role:           "assistant",
		Content:        "He identificado elementos de riesgo en su consulta.",
	})
	require.NoError(t, err)

	require.NoError(t, store.SetStatus(ctx, convID, model.ConversationRiskDetected))

	// Reopen as a fresh process would.
	convs, err := store.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	require.Equal(t, model.ConversationRiskDetected, convs[0].Status)
	require.Equal(t, "Multa de la UGPP por mora", convs[0].Title)

	msgs, err := store.Messages(ctx, convID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "user", msgs[0].Role)
	require.Equal(t, "assistant", msgs[1].Role)
}
