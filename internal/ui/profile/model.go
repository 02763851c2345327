// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/logging"
	"github.com/iuristatech/iurista-tui/internal/session"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
	"github.com/iuristatech/iurista-tui/internal/util"
)

// BackMsg asks the app model to return to the chat page.
type BackMsg struct{}

// =============================================================================
// INTERNAL MESSAGES
// =============================================================================

type profileMsg struct {
	resp *api.ProfileResponse
	err  error
}

type renameResultMsg struct {
	name string
	err  error
}

type clearNoticeMsg struct{}

// =============================================================================
// MODEL
// =============================================================================

// Model is the profile page.
type Model struct {
	theme   *styles.Theme
	client  *api.Client
	session *session.Manager

	profile *api.ProfileResponse

	editing   bool
	nameInput textinput.Model
	notice    string
	errMsg    string

	width  int
	height int
}

// New creates the profile page.
func New(theme *styles.Theme, client *api.Client, sess *session.Manager) Model {
	in := textinput.New()
	in.CharLimit = 80
	return Model{theme: theme, client: client, session: sess, nameInput: in}
}

// Init fetches the profile for the signed-in user.
func (m Model) Init() tea.Cmd {
	user := m.session.User()
	if user == nil {
		return nil
	}
	return fetchProfileCmd(m.client, user.ID)
}

func fetchProfileCmd(client *api.Client, userID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.Profile(ctx, userID)
		return profileMsg{resp: resp, err: err}
	}
}

func renameCmd(client *api.Client, userID int64, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := client.UpdateProfile(ctx, userID, name)
		return renameResultMsg{name: name, err: err}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles profile interactions.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case profileMsg:
		if msg.err != nil {
			logging.With("profile").Warn("profile fetch failed", "error", msg.err)
			m.errMsg = "No se pudo cargar el perfil."
			return m, nil
		}
		m.profile = msg.resp
		m.errMsg = ""
		return m, nil

	case renameResultMsg:
		if msg.err != nil {
			logging.With("profile").Warn("rename failed", "error", msg.err)
			m.errMsg = "No se pudo guardar el nombre."
			return m, nil
		}
		// Propagate the new name into the session so every page sees it.
		if user := m.session.User(); user != nil {
			updated := *user
			updated.Name = msg.name
			m.session.SignIn(&updated, m.session.Token())
		}
		m.notice = "Nombre actualizado"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearNoticeMsg{} })

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "esc":
			m.editing = false
			return m, nil
		case "enter":
			return m.saveName()
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return BackMsg{} }
	case "e":
		user := m.session.User()
		if user == nil {
			return m, nil
		}
		m.editing = true
		m.nameInput.SetValue(user.Name)
		m.nameInput.Focus()
		return m, textinput.Blink
	case "r":
		return m, m.Init()
	}
	return m, nil
}

func (m Model) saveName() (Model, tea.Cmd) {
	user := m.session.User()
	name := strings.TrimSpace(m.nameInput.Value())
	m.editing = false

	// Unchanged or empty names are a silent no-op, like the original form.
	if user == nil || name == "" || name == user.Name {
		return m, nil
	}
	return m, renameCmd(m.client, user.ID, name)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the profile card.
func (m Model) View() string {
	user := m.session.User()
	if user == nil {
		return m.theme.ModalLabel.Render("Sin sesión activa")
	}

	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("Mi Perfil"))
	b.WriteString("\n\n")

	initial := "?"
	if name := user.DisplayName(); name != "" {
		initial = strings.ToUpper(string([]rune(name)[0]))
	}
	b.WriteString(m.theme.SplashSeal.Render("(" + initial + ")"))
	b.WriteString("  ")

	if m.editing {
		b.WriteString(m.nameInput.View())
	} else {
		b.WriteString(m.theme.ModalTitle.Render(user.DisplayName()))
		if user.Admin() {
			b.WriteString(" " + m.theme.WarningStyle.Render("[admin]"))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.infoLine("Correo electrónico", user.Email))
	if m.profile != nil {
		b.WriteString(m.infoLine("Consultas realizadas",
			strconv.Itoa(m.profile.Stats.TotalConversations)))
		b.WriteString(m.infoLine("Mensajes totales",
			strconv.Itoa(m.profile.Stats.TotalMessages)))
	}
	b.WriteString("\n")

	if m.profile != nil && len(m.profile.Conversations) > 0 {
		b.WriteString(m.theme.SidebarTitle.Render("Consultas Recientes"))
		b.WriteString("\n")
		for _, conv := range m.profile.Conversations {
			line := "· " + util.TruncateWidth(conv.Title, 48) +
				"  " + conv.UpdatedAt.Format("02/01/2006")
			b.WriteString(m.theme.SidebarItem.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.errMsg != "":
		b.WriteString(m.theme.ErrorStyle.Render(m.errMsg))
	case m.notice != "":
		b.WriteString(m.theme.SuccessStyle.Render(m.notice))
	case m.editing:
		b.WriteString(m.theme.ShortcutDesc.Render("enter guarda · esc cancela"))
	default:
		b.WriteString(m.theme.ShortcutDesc.Render("e editar nombre · r recarga · esc volver al chat"))
	}

	card := m.theme.Container.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

func (m Model) infoLine(label, value string) string {
	return m.theme.ModalLabel.Render(label+": ") + m.theme.InputText.Render(value) + "\n"
}
