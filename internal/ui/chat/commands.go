// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/attach"
	"github.com/iuristatech/iurista-tui/internal/classify"
	"github.com/iuristatech/iurista-tui/internal/engine"
	"github.com/iuristatech/iurista-tui/internal/logging"
	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/storage"
)

// requestTimeout bounds every backend round trip issued by the chat view.
const requestTimeout = 60 * time.Second

// =============================================================================
// REMOTE COMMANDS
// =============================================================================

// sendChatCmd posts the message to /api/chat.
func sendChatCmd(client *api.Client, userID, conversationID *int64, text, documentContext string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.Chat(ctx, api.ChatRequest{
			UserID:          userID,
			ConversationID:  conversationID,
			Message:         text,
			DocumentContext: documentContext,
		})
		if err != nil {
			return chatFailedMsg{err: err}
		}
		return chatReplyMsg{resp: resp}
	}
}

// uploadThenChatCmd uploads the attached file, then posts the message with
// the extracted text as document context. Upload failure short-circuits the
// chat call.
func uploadThenChatCmd(client *api.Client, userID, conversationID *int64, text string, attachment *attach.Attachment) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		f, err := attachment.Open()
		if err != nil {
			return uploadFailedMsg{err: err}
		}
		defer f.Close()

		up, err := client.Upload(ctx, attachment.Filename, f)
		if err != nil {
			return uploadFailedMsg{err: err}
		}
		if up.Error != "" {
			return uploadFailedMsg{reason: up.Error}
		}

		resp, err := client.Chat(ctx, api.ChatRequest{
			UserID:          userID,
			ConversationID:  conversationID,
			Message:         text,
			DocumentContext: up.Text,
		})
		if err != nil {
			return chatFailedMsg{err: err}
		}
		return chatReplyMsg{resp: resp}
	}
}

// fetchConversationsCmd replaces the sidebar list from the backend.
func fetchConversationsCmd(client *api.Client, userID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		convs, err := client.Conversations(ctx, userID)
		if err != nil {
			return syncFailedMsg{err: err}
		}
		return conversationsMsg{conversations: convs}
	}
}

// loadConversationCmd fetches a stored conversation's messages.
func loadConversationCmd(client *api.Client, conversationID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		wire, err := client.ConversationMessages(ctx, conversationID)
		if err != nil {
			return syncFailedMsg{err: err}
		}

		messages := make([]*model.Message, 0, len(wire))
		for _, w := range wire {
			messages = append(messages, &model.Message{
				ID:        "srv-" + strconv.FormatInt(w.ID, 10),
				Role:      model.Role(w.Role),
				Content:   w.Content,
				Timestamp: w.Timestamp,
			})
		}
		return conversationLoadedMsg{conversationID: conversationID, messages: messages}
	}
}

// =============================================================================
// LOCAL-MODE COMMANDS
// =============================================================================

// localSendCmd runs the simulator and, when a history store is present,
// persists both turns. The reply is delivered after the simulated typing
// delay so the UI behaves like a real round trip. An attached file is
// read in-process, standing in for the upload endpoint; its text feeds
// the simulated turn so document content can trigger risk detection.
func localSendCmd(history *storage.HistoryStore, conversationID *int64, text string, attachment *attach.Attachment) tea.Cmd {
	return func() tea.Msg {
		input := text
		if attachment != nil {
			docContext, err := attachment.ExtractText()
			if err != nil {
				return uploadFailedMsg{reason: err.Error(), err: err}
			}
			if docContext == "" {
				return uploadFailedMsg{reason: "No se pudo extraer texto del documento."}
			}
			input = text + "\n" + docContext
		}
		reply := engine.Respond(input)

		var convID int64
		if conversationID != nil {
			convID = *conversationID
		}

		if history != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			log := logging.With("chat")
			if convID == 0 {
				userMsg := model.Message{Role: model.RoleUser, Content: text}
				id, err := history.CreateConversation(ctx, userMsg.Preview(50))
				if err == nil {
					convID = id
				} else {
					log.Warn("local conversation not created", "error", err)
				}
			}
			if convID != 0 {
				if _, err := history.AppendMessage(ctx, storage.HistoryMessage{
					ConversationID: convID,
					Role:           model.RoleUser.String(),
					Content:        text,
					HasDocument:    attachment != nil,
				}); err != nil {
					log.Warn("local user turn not persisted", "error", err)
				}
				if _, err := history.AppendMessage(ctx, storage.HistoryMessage{
					ConversationID: convID,
					Role:           model.RoleAssistant.String(),
					Content:        reply.Text,
				}); err != nil {
					log.Warn("local assistant turn not persisted", "error", err)
				}
				if reply.Category == classify.CategoryRiskDetected {
					if err := history.SetStatus(ctx, convID, model.ConversationRiskDetected); err != nil {
						log.Warn("risk status not persisted", "error", err)
					}
				}
			}
		}

		time.Sleep(reply.Delay)
		return localReplyMsg{reply: reply, conversationID: convID}
	}
}

// localConversationsCmd lists local history for the sidebar.
func localConversationsCmd(history *storage.HistoryStore) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		convs, err := history.Conversations(ctx)
		if err != nil {
			return syncFailedMsg{err: err}
		}
		return conversationsMsg{conversations: convs}
	}
}

// localLoadConversationCmd loads a stored local conversation.
func localLoadConversationCmd(history *storage.HistoryStore, conversationID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stored, err := history.Messages(ctx, conversationID)
		if err != nil {
			return syncFailedMsg{err: err}
		}

		messages := make([]*model.Message, 0, len(stored))
		for _, s := range stored {
			messages = append(messages, &model.Message{
				ID:          "hist-" + strconv.FormatInt(s.ID, 10),
				Role:        model.Role(s.Role),
				Content:     s.Content,
				HasDocument: s.HasDocument,
				Timestamp:   s.Timestamp,
			})
		}
		return conversationLoadedMsg{conversationID: conversationID, messages: messages}
	}
}
