// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// MessageRenderer renders chat messages into styled terminal bubbles.
// Assistant replies pass through glamour for markdown formatting.
type MessageRenderer struct {
	theme    *styles.Theme
	markdown *glamour.TermRenderer
	width    int
}

// NewMessageRenderer creates a renderer for the given bubble width.
func NewMessageRenderer(theme *styles.Theme, width int) *MessageRenderer {
	r := &MessageRenderer{theme: theme, width: width}
	r.initMarkdown()
	return r
}

func (r *MessageRenderer) initMarkdown() {
	wrap := r.width - 8
	if wrap < 20 {
		wrap = 20
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		// Plain text fallback when the renderer cannot initialize.
		md = nil
	}
	r.markdown = md
}

// SetWidth adjusts the render width and rebuilds the markdown wrapper.
func (r *MessageRenderer) SetWidth(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.initMarkdown()
}

// renderMarkdown formats assistant markdown, falling back to the raw text.
func (r *MessageRenderer) renderMarkdown(content string) string {
	if r.markdown == nil {
		return content
	}
	rendered, err := r.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// =============================================================================
// BUBBLE RENDERING
// =============================================================================

// Render returns the styled bubble for one message.
func (r *MessageRenderer) Render(msg model.Message, showTimestamp bool) string {
	switch msg.Role {
	case model.RoleUser:
		return r.renderUser(msg, showTimestamp)
	default:
		return r.renderAssistant(msg, showTimestamp)
	}
}

func (r *MessageRenderer) renderUser(msg model.Message, showTimestamp bool) string {
	content := msg.Content
	if msg.HasDocument {
		content = "[Documento adjunto]\n" + content
	}

	bubble := r.theme.UserBubble.MaxWidth(r.width - 4).Render(content)

	var meta []string
	if showTimestamp {
		meta = append(meta, msg.Timestamp.Format("15:04"))
	}
	if msg.Pending {
		meta = append(meta, r.theme.PendingMark.Render("enviando..."))
	}
	if len(meta) > 0 {
		bubble += "\n" + r.theme.MessageMeta.MarginLeft(4).Render(strings.Join(meta, " · "))
	}

	// Right-align user messages.
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Right, bubble)
}

func (r *MessageRenderer) renderAssistant(msg model.Message, showTimestamp bool) string {
	label := r.theme.HeaderBrand.Render(msg.Role.DisplayName())
	body := r.renderMarkdown(msg.Content)
	bubble := r.theme.AssistantBubble.MaxWidth(r.width - 4).Render(body)

	out := label + "\n" + bubble

	if len(msg.SuggestedActions) > 0 {
		chips := make([]string, 0, len(msg.SuggestedActions))
		for i, action := range msg.SuggestedActions {
			key := r.theme.ShortcutKey.Render("[" + string(rune('1'+i)) + "]")
			chips = append(chips, r.theme.ActionChip.Render(key+" "+action))
		}
		out += "\n" + strings.Join(chips, "\n")
	}

	if showTimestamp {
		out += "\n" + r.theme.MessageMeta.Render(msg.Timestamp.Format("15:04"))
	}
	return out
}

// RenderError returns a styled bubble for the fixed connection-failure
// reply appended when a send cannot reach the backend.
func (r *MessageRenderer) RenderError(text string) string {
	return r.theme.ErrorBubble.MaxWidth(r.width - 4).Render(text)
}
