// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// Header is the firm banner shared across pages. The right side shows the
// signed-in user, or the anonymous hint.
type Header struct {
	theme    *styles.Theme
	userName string
	isAdmin  bool
	width    int
}

// NewHeader creates the banner.
func NewHeader(theme *styles.Theme) Header {
	return Header{theme: theme}
}

// SetUser updates the account shown on the right. An empty name means
// anonymous.
func (h *Header) SetUser(name string, isAdmin bool) {
	h.userName = name
	h.isAdmin = isAdmin
}

// SetWidth adjusts the banner width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the banner row.
func (h Header) View() string {
	brand := h.theme.HeaderBrand.Render("IT") + " " +
		h.theme.HeaderTitle.Render("Iurista Tech") + " " +
		h.theme.HeaderSubtitle.Render("Abogados")

	var account string
	switch {
	case h.userName == "":
		account = h.theme.SidebarMeta.Render("Invitado")
	case h.isAdmin:
		account = h.theme.HeaderSubtitle.Render(h.userName) + " " +
			h.theme.WarningStyle.Render("[admin]")
	default:
		account = h.theme.HeaderSubtitle.Render(h.userName)
	}

	gap := h.width - lipgloss.Width(brand) - lipgloss.Width(account) - 2
	if gap < 1 {
		gap = 1
	}
	row := brand + lipgloss.NewStyle().Width(gap).Render("") + account
	return h.theme.Header.Width(h.width).Render(row)
}
