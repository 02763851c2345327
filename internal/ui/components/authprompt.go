// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// =============================================================================
// AUTH PROMPT MODAL
// =============================================================================

// AuthChoice is the option highlighted in the auth prompt.
type AuthChoice int

const (
	AuthChoiceLogin AuthChoice = iota
	AuthChoiceRegister
)

// AuthPrompt is the modal shown when an anonymous visitor tries to send a
// message. It offers sign-in or registration; closing it discards the
// attempted send.
type AuthPrompt struct {
	theme   *styles.Theme
	choice  AuthChoice
	visible bool
}

// NewAuthPrompt creates a hidden prompt.
func NewAuthPrompt(theme *styles.Theme) AuthPrompt {
	return AuthPrompt{theme: theme}
}

// Show opens the modal with the login option highlighted.
func (a *AuthPrompt) Show() {
	a.visible = true
	a.choice = AuthChoiceLogin
}

// Hide closes the modal.
func (a *AuthPrompt) Hide() {
	a.visible = false
}

// Visible reports whether the modal is open.
func (a AuthPrompt) Visible() bool {
	return a.visible
}

// Toggle flips between the login and register options.
func (a *AuthPrompt) Toggle() {
	if a.choice == AuthChoiceLogin {
		a.choice = AuthChoiceRegister
	} else {
		a.choice = AuthChoiceLogin
	}
}

// Choice returns the highlighted option.
func (a AuthPrompt) Choice() AuthChoice {
	return a.choice
}

// View renders the modal box.
func (a AuthPrompt) View() string {
	if !a.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.theme.ModalTitle.Render("Para continuar, únete a nosotros"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.ModalLabel.Render(
		"Necesitas iniciar sesión o registrarte para chatear\n" +
			"con nuestro asistente legal IA y guardar tu historial."))
	b.WriteString("\n\n")

	login := a.theme.ModalButton.Render("Iniciar Sesión")
	register := a.theme.ModalButton.Render("Registrarse")
	if a.choice == AuthChoiceLogin {
		login = a.theme.ModalButtonActive.Render("Iniciar Sesión")
	} else {
		register = a.theme.ModalButtonActive.Render("Registrarse")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, login, "  ", register))
	b.WriteString("\n\n")
	b.WriteString(a.theme.SidebarMeta.Render("tab cambia · enter confirma · esc cierra"))

	return a.theme.ModalBox.Render(b.String())
}
