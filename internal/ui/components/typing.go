// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator is the animated "assistant is typing" row shown while a
// consultation is in flight.
type TypingIndicator struct {
	theme     *styles.Theme
	spinner   spinner.Model
	startTime time.Time
	active    bool
}

// NewTypingIndicator creates an inactive indicator.
func NewTypingIndicator(theme *styles.Theme) TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: styles.DotsSpinner.Frames,
		FPS:    styles.DotsSpinner.Duration(),
	}
	return TypingIndicator{theme: theme, spinner: s}
}

// Start activates the indicator and returns the tick command.
func (t *TypingIndicator) Start() tea.Cmd {
	t.active = true
	t.startTime = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.active = false
}

// Active reports whether the indicator is running.
func (t TypingIndicator) Active() bool {
	return t.active
}

// Elapsed returns how long the current request has been in flight.
func (t TypingIndicator) Elapsed() time.Duration {
	if !t.active || t.startTime.IsZero() {
		return 0
	}
	return time.Since(t.startTime)
}

// Update advances the animation.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.active {
		return t, nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator row, or nothing when idle.
func (t TypingIndicator) View() string {
	if !t.active {
		return ""
	}
	frame := t.theme.Spinner.Render(t.spinner.View())
	return frame + " " + t.theme.ThinkingText.Render("Asistente Legal escribiendo")
}
