// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sidebarWidth is the fixed panel width when the sidebar is open.
const sidebarWidth = 32

// =============================================================================
// LAYOUT
// =============================================================================

// setSize recomputes the layout for a new terminal size.
func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	transcriptWidth := width
	if m.sidebar.Visible() {
		transcriptWidth -= sidebarWidth
	}
	if transcriptWidth < 20 {
		transcriptWidth = 20
	}

	// Input box, capsule row, and margins eat into the transcript height.
	transcriptHeight := height - m.input.Height() - 5
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	m.viewport.Width = transcriptWidth
	m.viewport.Height = transcriptHeight
	m.input.SetWidth(transcriptWidth - 4)
	m.renderer.SetWidth(transcriptWidth)
	m.welcome.SetWidth(transcriptWidth)
	m.sidebar.SetWidth(sidebarWidth)
	m.refreshViewport()
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if m.log.IsEmpty() {
		m.viewport.SetContent(m.welcome.View())
		return
	}

	parts := make([]string, 0, m.log.Len())
	for _, msg := range m.log.Messages() {
		parts = append(parts, m.renderer.Render(*msg, m.showTimestamps))
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat page.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if m.authPrompt.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.authPrompt.View())
	}

	transcript := m.viewport.View()

	// Activity row: capsule and typing indicator while loading.
	activity := ""
	if m.loading {
		activity = lipgloss.JoinHorizontal(lipgloss.Top,
			m.capsule.View(), "  ", m.typing.View())
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		transcript,
		activity,
		m.inputView(),
	)

	if m.sidebar.Visible() {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), main)
	}
	return main
}

// inputView renders the input box with the attachment chip and any
// attachment error above it.
func (m Model) inputView() string {
	var b strings.Builder

	if m.attachErr != "" {
		b.WriteString(m.theme.AttachmentError.Render(m.attachErr))
		b.WriteString("\n")
	}
	if m.attachment != nil {
		chip := "📎 " + m.attachment.Filename + " (" + m.attachment.DisplaySize() + ")"
		b.WriteString(m.theme.AttachmentChip.Render(chip))
		b.WriteString(m.theme.ShortcutDesc.Render("  ctrl+x quita el adjunto"))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.InputContainer.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutDesc.Render(
		"enter envía · alt+enter salto de línea · /adjuntar <ruta> adjunta un archivo · ctrl+h historial · ctrl+n nueva consulta"))
	return b.String()
}
