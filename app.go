// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/config"
	"github.com/iuristatech/iurista-tui/internal/logging"
	"github.com/iuristatech/iurista-tui/internal/session"
	"github.com/iuristatech/iurista-tui/internal/storage"
	"github.com/iuristatech/iurista-tui/internal/ui/admin"
	"github.com/iuristatech/iurista-tui/internal/ui/chat"
	"github.com/iuristatech/iurista-tui/internal/ui/components"
	"github.com/iuristatech/iurista-tui/internal/ui/login"
	"github.com/iuristatech/iurista-tui/internal/ui/profile"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// timeNow is swappable for tests.
var timeNow = time.Now

// page identifies the active screen.
type page int

const (
	pageSplash page = iota
	pageLanding
	pageLogin
	pageChat
	pageAdmin
	pageProfile
)

// =============================================================================
// APP MODEL
// =============================================================================

// appModel owns the page state machine and delegates to the page models.
type appModel struct {
	theme   *styles.Theme
	cfg     *config.Config
	client  *api.Client
	session *session.Manager
	store   *storage.SessionStore

	page page

	splash  components.Splash
	header  components.Header
	chat    chat.Model
	login   login.Model
	admin   admin.Model
	profile profile.Model

	// splashDone guards the one-shot splash -> landing transition; a
	// stale tick after a key-skip must not fire it twice.
	splashDone bool

	width  int
	height int
}

func newApp(cfg *config.Config, client *api.Client, sess *session.Manager, store *storage.SessionStore, history *storage.HistoryStore) *appModel {
	theme := styles.NewTheme()

	app := &appModel{
		theme:   theme,
		cfg:     cfg,
		client:  client,
		session: sess,
		store:   store,
		splash:  components.NewSplash(theme, time.Duration(cfg.UI.SplashMillis)*time.Millisecond),
		header:  components.NewHeader(theme),
		login:   login.New(theme, client),
		admin:   admin.New(theme, client),
		profile: profile.New(theme, client, sess),
		chat: chat.New(theme, chat.Options{
			Client:         client,
			Session:        sess,
			History:        history,
			LocalMode:      cfg.Chat.LocalMode,
			ShowTimestamps: cfg.UI.ShowTimestamps,
		}),
	}
	app.syncHeader()
	return app
}

func (a *appModel) syncHeader() {
	if user := a.session.User(); user != nil {
		a.header.SetUser(user.DisplayName(), user.Admin())
	} else {
		a.header.SetUser("", false)
	}
}

// Init starts the splash animation.
func (a *appModel) Init() tea.Cmd {
	return tea.Batch(a.splash.Init(), a.login.Init())
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages to the active page and handles page transitions.
func (a *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		return a.broadcastSize(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.routeKey(msg)

	case components.SplashDoneMsg:
		return a.leaveSplash()

	case login.AuthenticatedMsg:
		return a.handleAuthenticated(msg)

	case login.BackMsg:
		a.page = pageLanding
		return a, nil

	case chat.RequestAuthMsg:
		mode := login.ModeLogin
		if msg.Register {
			mode = login.ModeRegister
		}
		a.login.SetMode(mode)
		a.page = pageLogin
		return a, nil

	case chat.OpenProfileMsg:
		return a.openProfile()

	case chat.LogoutMsg, admin.LogoutMsg:
		return a.logout()

	case admin.ExitMsg:
		a.page = pageChat
		return a, nil

	case profile.BackMsg:
		a.page = pageChat
		a.syncHeader()
		return a, nil
	}

	return a.routePage(msg)
}

// broadcastSize forwards the terminal size to every page model so a page
// switch never shows a stale layout.
func (a *appModel) broadcastSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	a.splash, cmd = a.splash.Update(msg)
	cmds = append(cmds, cmd)
	a.chat, cmd = a.chat.Update(msg)
	cmds = append(cmds, cmd)
	a.login, cmd = a.login.Update(msg)
	cmds = append(cmds, cmd)
	a.admin, cmd = a.admin.Update(msg)
	cmds = append(cmds, cmd)
	a.profile, cmd = a.profile.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// routeKey sends key presses to the active page, handling the app-level
// shortcuts first.
func (a *appModel) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.page {
	case pageSplash:
		var cmd tea.Cmd
		a.splash, cmd = a.splash.Update(msg)
		return a, cmd

	case pageLanding:
		return a.handleLandingKey(msg)

	case pageChat:
		switch msg.String() {
		case "ctrl+p":
			return a.openProfile()
		case "ctrl+g":
			return a.openAdmin()
		case "ctrl+l":
			if a.session.Authenticated() {
				return a.logout()
			}
		}
	}

	return a.routePage(msg)
}

func (a *appModel) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "c":
		a.page = pageChat
		return a, a.chat.Init()
	case "l":
		a.login.SetMode(login.ModeLogin)
		a.page = pageLogin
		return a, nil
	case "r":
		a.login.SetMode(login.ModeRegister)
		a.page = pageLogin
		return a, nil
	case "a":
		return a.openAdmin()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// routePage forwards a message to the active page model.
func (a *appModel) routePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.page {
	case pageSplash:
		a.splash, cmd = a.splash.Update(msg)
	case pageLogin:
		a.login, cmd = a.login.Update(msg)
	case pageChat:
		a.chat, cmd = a.chat.Update(msg)
	case pageAdmin:
		a.admin, cmd = a.admin.Update(msg)
	case pageProfile:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// leaveSplash fires the splash -> landing transition exactly once. A
// rehydrated session skips the landing page.
func (a *appModel) leaveSplash() (tea.Model, tea.Cmd) {
	if a.splashDone || a.page != pageSplash {
		return a, nil
	}
	a.splashDone = true

	if a.session.Authenticated() {
		if a.session.IsAdmin() {
			a.page = pageAdmin
			return a, a.admin.Init()
		}
		a.page = pageChat
		return a, a.chat.Init()
	}
	a.page = pageLanding
	return a, nil
}

// handleAuthenticated finishes a login: install the session, persist it,
// and route by role. A send that was gated by the auth prompt goes out now.
func (a *appModel) handleAuthenticated(msg login.AuthenticatedMsg) (tea.Model, tea.Cmd) {
	a.session.SignIn(msg.User, msg.Token)
	a.client.SetToken(msg.Token)
	a.syncHeader()

	if a.store != nil {
		if err := a.store.Save(storage.SavedSession{User: msg.User, Token: msg.Token}); err != nil {
			logging.L().Warn("session not persisted", "error", err)
		}
	}

	if msg.User.Admin() {
		a.page = pageAdmin
		return a, a.admin.Init()
	}

	a.page = pageChat
	var pending tea.Cmd
	a.chat, pending = a.chat.Submit()
	return a, tea.Batch(a.chat.Init(), pending)
}

// openAdmin guards the dashboard: non-admins are logged and kept in chat.
func (a *appModel) openAdmin() (tea.Model, tea.Cmd) {
	user := a.session.User()
	if !user.Admin() {
		email := ""
		if user != nil {
			email = user.Email
		}
		logging.L().Warn("admin page denied", "email", email)
		a.page = pageChat
		return a, nil
	}
	a.page = pageAdmin
	return a, a.admin.Init()
}

func (a *appModel) openProfile() (tea.Model, tea.Cmd) {
	if !a.session.Authenticated() {
		return a, nil
	}
	a.page = pageProfile
	return a, a.profile.Init()
}

// logout clears every trace of the session and returns to the landing
// page.
func (a *appModel) logout() (tea.Model, tea.Cmd) {
	a.session.SignOut()
	a.client.SetToken("")
	if a.store != nil {
		a.store.Clear()
	}
	a.chat.Reset()
	a.syncHeader()
	a.page = pageLanding
	logging.L().Info("signed out")
	return a, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the active page under the shared header.
func (a *appModel) View() string {
	switch a.page {
	case pageSplash:
		return a.splash.View()
	case pageLanding:
		return a.landingView()
	case pageLogin:
		return a.login.View()
	case pageAdmin:
		return lipgloss.JoinVertical(lipgloss.Left, a.header.View(), a.admin.View())
	case pageProfile:
		return lipgloss.JoinVertical(lipgloss.Left, a.header.View(), a.profile.View())
	default:
		return lipgloss.JoinVertical(lipgloss.Left, a.header.View(), a.chat.View())
	}
}

// landingView is the marketing page reduced to its terminal essentials.
func (a *appModel) landingView() string {
	var b strings.Builder

	b.WriteString(a.theme.LandingTitle.Render("IuristaTech"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.HeaderTitle.Render("La solución legal inteligente\npara su empresa"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.ModalLabel.Render(
		"Combinamos más de 15 años de experiencia en derecho corporativo\n" +
			"colombiano con inteligencia artificial para proteger su Pyme de\n" +
			"riesgos legales — antes de que se conviertan en problemas."))
	b.WriteString("\n\n")
	b.WriteString(a.theme.ThinkingText.Render("IA Preventiva 24/7 · Especializado en Pymes · Resultados del 98%"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.LandingButton.Render("Iniciar Consulta Gratuita (enter)"))
	b.WriteString("\n\n")

	hints := "l iniciar sesión · r registrarse · q salir"
	if a.session.Authenticated() {
		hints = "enter continuar · ctrl+l cerrar sesión · q salir"
	}
	b.WriteString(a.theme.ShortcutDesc.Render(hints))

	box := a.theme.LandingBox.Render(b.String())
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
