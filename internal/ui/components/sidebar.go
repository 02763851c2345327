// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
	"github.com/iuristatech/iurista-tui/internal/util"
)

// =============================================================================
// CONVERSATION SIDEBAR
// =============================================================================

// Sidebar lists the user's conversation history with status indicators.
// Index 0 is the synthetic "Nueva consulta" entry.
type Sidebar struct {
	theme         *styles.Theme
	conversations []model.ConversationSummary
	selected      int
	width         int
	visible       bool
}

// NewSidebar creates an empty, hidden sidebar.
func NewSidebar(theme *styles.Theme) Sidebar {
	return Sidebar{theme: theme, width: 30}
}

// SetConversations replaces the listed conversations, keeping the selection
// in range.
func (s *Sidebar) SetConversations(convs []model.ConversationSummary) {
	s.conversations = convs
	if s.selected > len(convs) {
		s.selected = len(convs)
	}
}

// Conversations returns the listed conversations.
func (s Sidebar) Conversations() []model.ConversationSummary {
	return s.conversations
}

// Toggle flips the sidebar visibility.
func (s *Sidebar) Toggle() {
	s.visible = !s.visible
}

// Visible reports whether the sidebar is shown.
func (s Sidebar) Visible() bool {
	return s.visible
}

// SetWidth adjusts the sidebar width.
func (s *Sidebar) SetWidth(width int) {
	s.width = width
}

// Next moves the selection down, wrapping past the last conversation.
func (s *Sidebar) Next() {
	s.selected = (s.selected + 1) % (len(s.conversations) + 1)
}

// Prev moves the selection up, wrapping to the last conversation.
func (s *Sidebar) Prev() {
	s.selected = (s.selected - 1 + len(s.conversations) + 1) % (len(s.conversations) + 1)
}

// Selected returns the highlighted conversation, or nil when "Nueva
// consulta" is selected.
func (s Sidebar) Selected() *model.ConversationSummary {
	if s.selected == 0 || s.selected > len(s.conversations) {
		return nil
	}
	conv := s.conversations[s.selected-1]
	return &conv
}

// statusDot renders the colored status indicator for a conversation.
func (s Sidebar) statusDot(status model.ConversationStatus) string {
	switch status {
	case model.ConversationRiskDetected:
		return s.theme.StatusDotRisk.Render("!")
	case model.ConversationArchived:
		return s.theme.StatusDotArchived.Render("-")
	default:
		return s.theme.StatusDotActive.Render("*")
	}
}

// View renders the sidebar panel.
func (s Sidebar) View() string {
	if !s.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.theme.SidebarTitle.Render("Historial"))
	b.WriteString("\n\n")

	newLabel := "+ Nueva consulta"
	if s.selected == 0 {
		b.WriteString(s.theme.SidebarItemSelected.Render(newLabel))
	} else {
		b.WriteString(s.theme.SidebarItem.Render(newLabel))
	}
	b.WriteString("\n")

	titleWidth := s.width - 6
	for i, conv := range s.conversations {
		title := util.TruncateWidth(conv.Title, titleWidth)
		line := s.statusDot(conv.Status) + " " + title

		if i+1 == s.selected {
			b.WriteString(s.theme.SidebarItemSelected.Render(line))
		} else {
			b.WriteString(s.theme.SidebarItem.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(s.theme.SidebarMeta.Render("  " + relativeTime(conv.UpdatedAt)))
		b.WriteString("\n")
	}

	if len(s.conversations) == 0 {
		b.WriteString(s.theme.SidebarMeta.Render("Sin consultas previas"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.theme.SidebarTitle.Render("Áreas de Práctica"))
	b.WriteString("\n")
	for _, area := range PracticeAreas {
		b.WriteString(s.theme.SidebarMeta.Render("· " + area.Title))
		b.WriteString("\n")
	}

	return s.theme.Sidebar.Width(s.width).Render(b.String())
}

// relativeTime formats an activity timestamp for the sidebar.
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "ahora"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + " min"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + " h"
	default:
		return t.Format("02/01/2006")
	}
}
