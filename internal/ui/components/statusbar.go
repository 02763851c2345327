// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// Shortcut is one key hint in the bottom bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom shortcut bar. The hints change per page.
type StatusBar struct {
	theme     *styles.Theme
	shortcuts []Shortcut
	notice    string
	width     int
}

// NewStatusBar creates an empty bar.
func NewStatusBar(theme *styles.Theme) StatusBar {
	return StatusBar{theme: theme}
}

// SetShortcuts replaces the displayed hints.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.shortcuts = shortcuts
}

// SetNotice sets a transient message shown instead of the hints. Empty
// clears it.
func (s *StatusBar) SetNotice(notice string) {
	s.notice = notice
}

// SetWidth adjusts the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the bar row.
func (s StatusBar) View() string {
	if s.notice != "" {
		return s.theme.StatusBar.Width(s.width).Render(
			s.theme.WarningStyle.Render(s.notice))
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	return s.theme.StatusBar.Width(s.width).Render(strings.Join(parts, "  "))
}
