// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/classify"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// =============================================================================
// STATUS CAPSULE
// =============================================================================

// StatusCapsule shows what the assistant is doing with the current
// consultation: analyzing the law, drafting a document, or validating
// risks. Hidden when no request is in flight.
type StatusCapsule struct {
	theme   *styles.Theme
	status  classify.Status
	visible bool
}

// NewStatusCapsule creates a hidden capsule.
func NewStatusCapsule(theme *styles.Theme) StatusCapsule {
	return StatusCapsule{theme: theme, status: classify.StatusAnalyzing}
}

// Show makes the capsule visible with the given status.
func (c *StatusCapsule) Show(status classify.Status) {
	c.status = status
	c.visible = true
}

// Hide removes the capsule.
func (c *StatusCapsule) Hide() {
	c.visible = false
}

// SetStatus records a status without changing visibility. Used to keep
// the server-reported status after a reply lands.
func (c *StatusCapsule) SetStatus(status classify.Status) {
	c.status = status
}

// Visible reports whether the capsule is shown.
func (c StatusCapsule) Visible() bool {
	return c.visible
}

// Status returns the current capsule status.
func (c StatusCapsule) Status() classify.Status {
	return c.status
}

// capsuleLabel maps a status to its Spanish activity label.
func capsuleLabel(status classify.Status) string {
	switch status {
	case classify.StatusDocument:
		return "Generando Documento"
	case classify.StatusRisk:
		return "Validando Riesgos"
	default:
		return "Analizando Normativa"
	}
}

// capsuleStyle maps a status to its themed style.
func (c StatusCapsule) capsuleStyle() lipgloss.Style {
	switch c.status {
	case classify.StatusDocument:
		return c.theme.CapsuleDocument
	case classify.StatusRisk:
		return c.theme.CapsuleRisk
	default:
		return c.theme.CapsuleAnalyze
	}
}

// View renders the capsule, or nothing when hidden.
func (c StatusCapsule) View() string {
	if !c.visible {
		return ""
	}
	return c.capsuleStyle().Render("( " + capsuleLabel(c.status) + " )")
}
