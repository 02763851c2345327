// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// =============================================================================
// PRACTICE AREAS
// =============================================================================

// PracticeArea is one of the firm's specialty areas, rendered as a
// quick-action card on the welcome screen.
type PracticeArea struct {
	ID          string
	Title       string
	Subtitle    string
	Description string

	// QuickPrompt is the message sent when the card is activated.
	QuickPrompt string
}

// PracticeAreas lists the firm's three specialties in display order.
var PracticeAreas = []PracticeArea{
	{
		ID:          "laboral",
		Title:       "Derecho Laboral",
		Subtitle:    "y Seguridad Social",
		Description: "Contratación, nómina, UGPP, despidos, reglamentos internos y PILA.",
		QuickPrompt: "¿Cómo puedo formalizar correctamente los contratos de trabajo para mi Pyme?",
	},
	{
		ID:          "inmobiliario",
		Title:       "Régimen Inmobiliario",
		Description: "Arrendamientos comerciales, debida diligencia de títulos y propiedad horizontal.",
		QuickPrompt: "Necesito revisar un contrato de arrendamiento comercial para mi negocio.",
	},
	{
		ID:          "migratorio",
		Title:       "Derecho Migratorio",
		Description: "Gestión de Visas (V, M, R), radicación de documentos y cumplimiento de Cancillería.",
		QuickPrompt: "¿Qué tipo de visa necesito para contratar nómadas digitales en mi empresa?",
	},
}

// =============================================================================
// WELCOME SCREEN
// =============================================================================

// Welcome is the empty-transcript hero with quick-action cards. The cards
// are keyboard-selectable; activating one sends its quick prompt.
type Welcome struct {
	theme    *styles.Theme
	selected int
	width    int
}

// NewWelcome creates the welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{theme: theme}
}

// SetWidth adjusts the layout width.
func (w *Welcome) SetWidth(width int) {
	w.width = width
}

// Next moves the card selection forward, wrapping around.
func (w *Welcome) Next() {
	w.selected = (w.selected + 1) % len(PracticeAreas)
}

// Prev moves the card selection backward, wrapping around.
func (w *Welcome) Prev() {
	w.selected = (w.selected - 1 + len(PracticeAreas)) % len(PracticeAreas)
}

// Selected returns the currently highlighted practice area.
func (w Welcome) Selected() PracticeArea {
	return PracticeAreas[w.selected]
}

// View renders the hero and cards.
func (w Welcome) View() string {
	var b strings.Builder

	b.WriteString(w.theme.HeaderTitle.Render("Iurista Tech"))
	b.WriteString("\n")
	b.WriteString(w.theme.HeaderSubtitle.Render("Abogados · Asistente Legal IA"))
	b.WriteString("\n\n")
	b.WriteString(w.theme.ThinkingText.Render("Triaje legal preventivo para Pymes colombianas."))
	b.WriteString("\n")
	b.WriteString(w.theme.ThinkingText.Render("Seleccione un área de consulta o escriba su pregunta."))
	b.WriteString("\n")
	b.WriteString(w.theme.SidebarMeta.Render("←/→ cambia de área · enter envía la consulta sugerida"))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(PracticeAreas))
	for i, area := range PracticeAreas {
		style := w.theme.AreaCard
		if i == w.selected {
			style = style.BorderForeground(styles.Gold)
		}

		title := area.Title
		if area.Subtitle != "" {
			title += "\n" + w.theme.AreaCardDesc.Render(area.Subtitle)
		}
		card := w.theme.AreaCardTitle.Render(title) + "\n" +
			w.theme.AreaCardDesc.Render(area.Description)
		cards = append(cards, style.Render(card))
	}

	// Cards side by side when the terminal is wide enough, stacked
	// otherwise.
	if w.width >= 90 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	} else {
		b.WriteString(strings.Join(cards, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(w.theme.SidebarMeta.Render("Iurista Tech · Colombia"))

	return b.String()
}
