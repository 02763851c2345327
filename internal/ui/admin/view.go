// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/util"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.form != nil {
		return m.centered(m.form.view())
	}
	if m.pathPrompt != nil {
		return m.centered(m.pathPrompt.view())
	}

	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("Panel de Administración"))
	b.WriteString("\n\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case TabUsers:
		b.WriteString(m.usersView())
	case TabConversations:
		b.WriteString(m.conversationsView())
	case TabKnowledge:
		b.WriteString(m.knowledgeView())
	default:
		b.WriteString(m.overviewView())
	}

	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(m.theme.ErrorStyle.Render(m.errMsg))
	} else if m.notice != "" {
		b.WriteString(m.theme.SuccessStyle.Render(m.notice))
	} else {
		b.WriteString(m.bar.View())
	}

	return m.theme.Container.Render(b.String())
}

func (m Model) centered(box string) string {
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) tabBar() string {
	parts := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		if Tab(i) == m.tab {
			parts = append(parts, m.theme.AdminTabActive.Render(label))
		} else {
			parts = append(parts, m.theme.AdminTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// =============================================================================
// TABS
// =============================================================================

func (m Model) overviewView() string {
	if m.stats == nil {
		return m.theme.ThinkingText.Render("Cargando estadísticas...")
	}

	cards := []struct {
		label string
		value int
	}{
		{"Usuarios Totales", m.stats.TotalUsers},
		{"Conversaciones", m.stats.TotalConversations},
		{"Usuarios Activos (24h)", m.stats.ActiveUsers24h},
		{"Casos de Riesgo", m.stats.RiskCases},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		card := m.theme.StatLabel.Render(c.label) + "\n" +
			m.theme.StatValue.Render(strconv.Itoa(c.value))
		rendered = append(rendered, m.theme.StatCard.Render(card))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) usersView() string {
	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render(
		padCols([]string{"ID", "Nombre", "Email", "Rol", "Conv.", "Registro"},
			[]int{5, 20, 28, 14, 6, 12})))
	b.WriteString("\n")

	if len(m.users) == 0 {
		b.WriteString(m.theme.ShortcutDesc.Render("Sin usuarios registrados"))
		return b.String()
	}

	for i, u := range m.users {
		role := "Usuario"
		if u.IsAdmin {
			role = "Administrador"
		}
		row := padCols([]string{
			strconv.FormatInt(u.ID, 10),
			util.TruncateWidth(u.Name, 19),
			util.TruncateWidth(u.Email, 27),
			role,
			strconv.Itoa(u.ConversationCount),
			u.CreatedAt.Format("02/01/2006"),
		}, []int{5, 20, 28, 14, 6, 12})

		if i == m.selected {
			b.WriteString(m.theme.TableRowSelected.Render(row))
		} else {
			b.WriteString(m.theme.TableRow.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) conversationsView() string {
	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render(
		padCols([]string{"ID", "Título", "Usuario", "Estado", "Actualizada"},
			[]int{5, 32, 26, 14, 12})))
	b.WriteString("\n")

	if len(m.conversations) == 0 {
		b.WriteString(m.theme.ShortcutDesc.Render("Sin conversaciones recientes"))
		return b.String()
	}

	for i, c := range m.conversations {
		row := padCols([]string{
			strconv.FormatInt(c.ID, 10),
			util.TruncateWidth(c.Title, 31),
			util.TruncateWidth(c.UserEmail, 25),
			string(c.Status),
			c.UpdatedAt.Format("02/01/2006"),
		}, []int{5, 32, 26, 14, 12})

		if i == m.selected {
			b.WriteString(m.theme.TableRowSelected.Render(row))
		} else {
			b.WriteString(m.theme.TableRow.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) knowledgeView() string {
	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render(
		padCols([]string{"ID", "Archivo", "Tipo", "Subido"}, []int{5, 40, 8, 12})))
	b.WriteString("\n")

	if len(m.docs) == 0 {
		b.WriteString(m.theme.ShortcutDesc.Render("La base de conocimiento está vacía"))
		return b.String()
	}

	for i, d := range m.docs {
		row := padCols([]string{
			strconv.FormatInt(d.ID, 10),
			util.TruncateWidth(d.Filename, 39),
			d.FileType,
			d.UploadedAt.Format("02/01/2006"),
		}, []int{5, 40, 8, 12})

		if i == m.selected {
			b.WriteString(m.theme.TableRowSelected.Render(row))
		} else {
			b.WriteString(m.theme.TableRow.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// padCols lays fixed-width columns out with display-width padding.
func padCols(cols []string, widths []int) string {
	var b strings.Builder
	for i, col := range cols {
		b.WriteString(col)
		if pad := widths[i] - util.StringWidth(col); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}
