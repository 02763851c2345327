// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
)

const requestTimeout = 30 * time.Second

// =============================================================================
// INTERNAL MESSAGES
// =============================================================================

type statsMsg struct{ stats *api.Stats }

type usersMsg struct{ users []api.AdminUser }

type conversationsMsg struct{ conversations []api.AdminConversation }

type knowledgeMsg struct{ docs []api.KnowledgeDocument }

// adminErrMsg surfaces a failed admin call in the notice line.
type adminErrMsg struct{ err error }

// mutationDoneMsg confirms a create/update/delete; the active tab is
// refetched afterwards.
type mutationDoneMsg struct{ notice string }

// pollTickMsg drives the stats auto-refresh.
type pollTickMsg struct{}

// =============================================================================
// OUTBOUND MESSAGES
// =============================================================================

// ExitMsg asks the app model to leave the dashboard and return to chat.
type ExitMsg struct{}

// LogoutMsg asks the app model to clear the session.
type LogoutMsg struct{}

// =============================================================================
// FETCH COMMANDS
// =============================================================================

func fetchStatsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		stats, err := client.AdminStats(ctx)
		if err != nil {
			return adminErrMsg{err: err}
		}
		return statsMsg{stats: stats}
	}
}

func fetchUsersCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		users, err := client.AdminUsers(ctx)
		if err != nil {
			return adminErrMsg{err: err}
		}
		return usersMsg{users: users}
	}
}

func fetchConversationsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		convs, err := client.AdminConversations(ctx)
		if err != nil {
			return adminErrMsg{err: err}
		}
		return conversationsMsg{conversations: convs}
	}
}

func fetchKnowledgeCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		docs, err := client.AdminKnowledge(ctx)
		if err != nil {
			return adminErrMsg{err: err}
		}
		return knowledgeMsg{docs: docs}
	}
}

// =============================================================================
// MUTATION COMMANDS
// =============================================================================

func saveUserCmd(client *api.Client, userID int64, payload api.UserPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		notice := "Usuario actualizado"
		if userID == 0 {
			_, err = client.AdminCreateUser(ctx, payload)
			notice = "Usuario creado"
		} else {
			_, err = client.AdminUpdateUser(ctx, userID, payload)
		}
		if err != nil {
			return adminErrMsg{err: err}
		}
		return mutationDoneMsg{notice: notice}
	}
}

func deleteUserCmd(client *api.Client, userID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.AdminDeleteUser(ctx, userID); err != nil {
			return adminErrMsg{err: err}
		}
		return mutationDoneMsg{notice: "Usuario eliminado"}
	}
}

func uploadKnowledgeCmd(client *api.Client, path, filename string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return adminErrMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*requestTimeout)
		defer cancel()

		if _, err := client.AdminUploadKnowledge(ctx, filename, f); err != nil {
			return adminErrMsg{err: err}
		}
		return mutationDoneMsg{notice: "Documento procesado"}
	}
}

func deleteKnowledgeCmd(client *api.Client, docID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.AdminDeleteKnowledge(ctx, docID); err != nil {
			return adminErrMsg{err: err}
		}
		return mutationDoneMsg{notice: "Documento eliminado"}
	}
}
