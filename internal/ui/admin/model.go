// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/logging"
	"github.com/iuristatech/iurista-tui/internal/ui/components"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// Tab identifies a dashboard section.
type Tab int

const (
	TabOverview Tab = iota
	TabUsers
	TabConversations
	TabKnowledge
)

// tabLabels in display order.
var tabLabels = []string{"Resumen", "Usuarios", "Conversaciones", "Base Conocimiento"}

// pollInterval is how often the overview asks for fresh stats. The limiter
// below has the final say.
const pollInterval = 10 * time.Second

// statsRefreshEvery caps how often a stats request may actually go out.
const statsRefreshEvery = 30 * time.Second

// =============================================================================
// MODEL
// =============================================================================

// Model is the admin dashboard.
type Model struct {
	theme  *styles.Theme
	client *api.Client

	tab      Tab
	selected int

	stats         *api.Stats
	users         []api.AdminUser
	conversations []api.AdminConversation
	docs          []api.KnowledgeDocument

	// form is non-nil while the user create/edit form is open.
	form *userForm

	// pathPrompt is non-nil while the knowledge-upload path prompt is open.
	pathPrompt *pathPrompt

	limiter *rate.Limiter
	bar     components.StatusBar
	notice  string
	errMsg  string

	width  int
	height int
}

// New creates the dashboard on the overview tab.
func New(theme *styles.Theme, client *api.Client) Model {
	m := Model{
		theme:   theme,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(statsRefreshEvery), 1),
		bar:     components.NewStatusBar(theme),
	}
	m.bar.SetShortcuts(m.shortcutHints())
	return m
}

// Init fetches the overview and starts the poll tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchStatsCmd(m.client), pollTick())
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollTickMsg{} })
}

// Tab returns the active section.
func (m Model) Tab() Tab {
	return m.tab
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes dashboard messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pollTickMsg:
		// The limiter decides whether this tick turns into a request.
		if m.tab == TabOverview && m.limiter.Allow() {
			return m, tea.Batch(fetchStatsCmd(m.client), pollTick())
		}
		return m, pollTick()

	case statsMsg:
		m.stats = msg.stats
		return m, nil

	case usersMsg:
		m.users = msg.users
		m.clampSelection()
		return m, nil

	case conversationsMsg:
		m.conversations = msg.conversations
		m.clampSelection()
		return m, nil

	case knowledgeMsg:
		m.docs = msg.docs
		m.clampSelection()
		return m, nil

	case mutationDoneMsg:
		m.notice = msg.notice
		m.errMsg = ""
		return m, m.refreshTab()

	case adminErrMsg:
		logging.With("admin").Warn("admin request failed", "error", msg.err)
		m.errMsg = adminErrorText(msg.err)
		return m, nil
	}

	if m.form != nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	if m.pathPrompt != nil {
		var cmd tea.Cmd
		m.pathPrompt, cmd = m.pathPrompt.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.pathPrompt != nil {
		return m.handlePathPromptKey(msg)
	}

	switch msg.String() {
	case "tab", "right":
		m.switchTab(Tab((int(m.tab) + 1) % len(tabLabels)))
		return m, m.refreshTab()
	case "shift+tab", "left":
		m.switchTab(Tab((int(m.tab) + len(tabLabels) - 1) % len(tabLabels)))
		return m, m.refreshTab()
	case "1", "2", "3", "4":
		m.switchTab(Tab(int(msg.String()[0] - '1')))
		return m, m.refreshTab()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < m.rowCount()-1 {
			m.selected++
		}
		return m, nil

	case "r":
		return m, m.refreshTab()

	case "esc", "q":
		return m, func() tea.Msg { return ExitMsg{} }

	case "ctrl+l":
		return m, func() tea.Msg { return LogoutMsg{} }
	}

	switch m.tab {
	case TabUsers:
		return m.handleUsersKey(msg)
	case TabKnowledge:
		return m.handleKnowledgeKey(msg)
	}
	return m, nil
}

func (m Model) handleUsersKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.form = newUserForm(m.theme, nil)
		return m, nil
	case "e":
		if u := m.selectedUser(); u != nil {
			m.form = newUserForm(m.theme, u)
		}
		return m, nil
	case "d":
		if u := m.selectedUser(); u != nil {
			return m, deleteUserCmd(m.client, u.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKnowledgeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "u":
		m.pathPrompt = newPathPrompt(m.theme)
		return m, nil
	case "d":
		if d := m.selectedDoc(); d != nil {
			return m, deleteKnowledgeCmd(m.client, d.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "enter":
		payload, userID, err := m.form.payload()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form = nil
		return m, saveUserCmd(m.client, userID, payload)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) handlePathPromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pathPrompt = nil
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.pathPrompt.input.Value())
		if path == "" {
			m.pathPrompt = nil
			return m, nil
		}
		// Knowledge documents are PDF only, checked before the upload.
		if strings.ToLower(filepath.Ext(path)) != ".pdf" {
			m.pathPrompt.errMsg = "Solo se permiten archivos PDF por ahora."
			return m, nil
		}
		m.pathPrompt = nil
		return m, uploadKnowledgeCmd(m.client, path, filepath.Base(path))
	}
	var cmd tea.Cmd
	m.pathPrompt, cmd = m.pathPrompt.update(msg)
	return m, cmd
}

// =============================================================================
// HELPERS
// =============================================================================

func (m *Model) switchTab(tab Tab) {
	m.tab = tab
	m.selected = 0
	m.notice = ""
	m.errMsg = ""
	m.bar.SetShortcuts(m.shortcutHints())
}

// shortcutHints lists the bottom-bar hints for the active tab.
func (m Model) shortcutHints() []components.Shortcut {
	base := []components.Shortcut{
		{Key: "tab", Desc: "sección"},
		{Key: "r", Desc: "recarga"},
		{Key: "esc", Desc: "volver"},
		{Key: "ctrl+l", Desc: "salir"},
	}
	switch m.tab {
	case TabUsers:
		return append([]components.Shortcut{
			{Key: "n", Desc: "nuevo"},
			{Key: "e", Desc: "editar"},
			{Key: "d", Desc: "eliminar"},
		}, base...)
	case TabKnowledge:
		return append([]components.Shortcut{
			{Key: "u", Desc: "subir PDF"},
			{Key: "d", Desc: "eliminar"},
		}, base...)
	}
	return base
}

// refreshTab refetches the active tab's data.
func (m Model) refreshTab() tea.Cmd {
	switch m.tab {
	case TabUsers:
		return fetchUsersCmd(m.client)
	case TabConversations:
		return fetchConversationsCmd(m.client)
	case TabKnowledge:
		return fetchKnowledgeCmd(m.client)
	default:
		return fetchStatsCmd(m.client)
	}
}

func (m Model) rowCount() int {
	switch m.tab {
	case TabUsers:
		return len(m.users)
	case TabConversations:
		return len(m.conversations)
	case TabKnowledge:
		return len(m.docs)
	}
	return 0
}

func (m *Model) clampSelection() {
	if max := m.rowCount() - 1; m.selected > max {
		if max < 0 {
			max = 0
		}
		m.selected = max
	}
}

func (m Model) selectedUser() *api.AdminUser {
	if m.selected < len(m.users) {
		u := m.users[m.selected]
		return &u
	}
	return nil
}

func (m Model) selectedDoc() *api.KnowledgeDocument {
	if m.selected < len(m.docs) {
		d := m.docs[m.selected]
		return &d
	}
	return nil
}

// adminErrorText maps an admin API failure to a Spanish notice.
func adminErrorText(err error) string {
	switch {
	case api.IsAuth(err):
		return "Sesión de administrador no válida."
	case api.IsConnection(err):
		return "Error de conexión con el servidor."
	default:
		return "La operación no pudo completarse."
	}
}
