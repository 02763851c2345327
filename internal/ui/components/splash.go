// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the iurista TUI.
package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// =============================================================================
// SPLASH SCREEN
// =============================================================================

// SplashPhase is the current stage of the splash animation.
type SplashPhase int

const (
	// SplashEnter draws the seal.
	SplashEnter SplashPhase = iota
	// SplashReveal shows the brand text.
	SplashReveal
	// SplashExit fades out before the landing page.
	SplashExit
)

// SplashDoneMsg signals that the splash finished and the landing page
// should take over. Skipped is true when the user pressed a key to jump
// ahead.
type SplashDoneMsg struct {
	Skipped bool
}

// splashTickMsg advances the animation phases.
type splashTickMsg struct {
	phase SplashPhase
}

// Splash is the animated brand screen shown at startup.
type Splash struct {
	theme    *styles.Theme
	duration time.Duration
	phase    SplashPhase
	width    int
	height   int
}

// Phase boundaries as fractions of the total duration, mirroring the
// enter/reveal/exit timing of the original animation.
const (
	splashRevealAt = 1.0 / 3.0
	splashExitAt   = 7.0 / 9.0
)

// NewSplash creates a splash screen that runs for the given duration.
func NewSplash(theme *styles.Theme, duration time.Duration) Splash {
	return Splash{theme: theme, duration: duration}
}

// Init schedules the phase transitions and the completion message.
func (s Splash) Init() tea.Cmd {
	reveal := time.Duration(float64(s.duration) * splashRevealAt)
	exit := time.Duration(float64(s.duration) * splashExitAt)

	return tea.Batch(
		tea.Tick(reveal, func(time.Time) tea.Msg { return splashTickMsg{phase: SplashReveal} }),
		tea.Tick(exit, func(time.Time) tea.Msg { return splashTickMsg{phase: SplashExit} }),
		tea.Tick(s.duration, func(time.Time) tea.Msg { return SplashDoneMsg{} }),
	)
}

// Update handles animation ticks and key-press skipping.
func (s Splash) Update(msg tea.Msg) (Splash, tea.Cmd) {
	switch msg := msg.(type) {
	case splashTickMsg:
		// Phases only move forward; a stale tick after a skip is ignored.
		if msg.phase > s.phase {
			s.phase = msg.phase
		}
		return s, nil

	case tea.KeyMsg:
		return s, func() tea.Msg { return SplashDoneMsg{Skipped: true} }

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil
	}
	return s, nil
}

// Phase returns the current animation phase.
func (s Splash) Phase() SplashPhase {
	return s.phase
}

// seal is the ASCII rendition of the firm's scales-of-justice mark.
var seal = []string{
	`    .--.    `,
	`   ( == )   `,
	`  __|__|__  `,
	` /--|  |--\ `,
	` \__|  |__/ `,
	`    |__|    `,
}

// View renders the splash frame for the current phase.
func (s Splash) View() string {
	var b strings.Builder

	b.WriteString(s.theme.SplashSeal.Render(strings.Join(seal, "\n")))
	b.WriteString("\n\n")

	if s.phase >= SplashReveal {
		b.WriteString(s.theme.HeaderTitle.Render("IuristaTech"))
		b.WriteString("\n")
		b.WriteString(s.theme.SplashTagline.Render("Asistente Legal con Inteligencia Artificial"))
		b.WriteString("\n\n")
	}

	// Loading bar fills across the reveal phase.
	percent := 100.0
	switch s.phase {
	case SplashEnter:
		percent = 20
	case SplashReveal:
		percent = 70
	}
	b.WriteString(s.theme.SplashTagline.Render(styles.RenderProgressBar(24, percent)))

	box := s.theme.SplashBox.Render(b.String())
	if s.width > 0 && s.height > 0 {
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
