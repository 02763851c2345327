// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/logging"
	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// Mode selects the form variant.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// field indexes into the input slice.
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// =============================================================================
// OUTBOUND MESSAGES
// =============================================================================

// AuthenticatedMsg reports a successful sign-in to the app model.
type AuthenticatedMsg struct {
	User  *model.User
	Token string
}

// BackMsg asks the app model to return to the previous page.
type BackMsg struct{}

// =============================================================================
// INTERNAL MESSAGES
// =============================================================================

type loginResultMsg struct {
	resp *api.LoginResponse
	err  error
}

type registerResultMsg struct {
	resp *api.RegisterResponse
	err  error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the login/register page.
type Model struct {
	theme  *styles.Theme
	client *api.Client

	mode    Mode
	inputs  []textinput.Model
	focus   int
	loading bool
	errMsg  string

	// pending shows the account-in-review notice after a registration that
	// requires admin approval.
	pending bool

	width  int
	height int
}

// New creates the page in login mode.
func New(theme *styles.Theme, client *api.Client) Model {
	inputs := make([]textinput.Model, fieldCount)

	name := textinput.New()
	name.Placeholder = "Nombre completo"
	name.CharLimit = 80
	inputs[fieldName] = name

	email := textinput.New()
	email.Placeholder = "nombre@empresa.com"
	email.CharLimit = 120
	inputs[fieldEmail] = email

	password := textinput.New()
	password.Placeholder = "••••••••"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120
	inputs[fieldPassword] = password

	m := Model{theme: theme, client: client, inputs: inputs}
	m.SetMode(ModeLogin)
	return m
}

// Init is a no-op; focus is set by SetMode.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetMode switches the form variant and resets transient state.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
	m.errMsg = ""
	m.loading = false
	m.pending = false
	m.focus = m.firstField()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
}

// Mode returns the current form variant.
func (m Model) Mode() Mode {
	return m.mode
}

// firstField returns the topmost visible field for the mode.
func (m Model) firstField() int {
	if m.mode == ModeRegister {
		return fieldName
	}
	return fieldEmail
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles form navigation and submission.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.pending {
			// Any key leaves the pending-approval notice.
			return m, func() tea.Msg { return BackMsg{} }
		}
		return m.handleKey(msg)

	case loginResultMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = loginErrorText(msg.err)
			return m, nil
		}
		resp := msg.resp
		return m, func() tea.Msg {
			return AuthenticatedMsg{User: resp.User, Token: resp.Token}
		}

	case registerResultMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = loginErrorText(msg.err)
			return m, nil
		}
		// New accounts wait for admin approval; no session is created.
		m.pending = true
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return BackMsg{} }

	case "ctrl+r":
		if m.mode == ModeLogin {
			m.SetMode(ModeRegister)
		} else {
			m.SetMode(ModeLogin)
		}
		return m, nil

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "enter":
		return m.submit()
	}

	return m.updateFocused(msg)
}

func (m Model) moveFocus(delta int) Model {
	first := m.firstField()
	count := fieldCount - first

	m.inputs[m.focus].Blur()
	m.focus = first + ((m.focus-first+delta)+count)%count
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMISSION
// =============================================================================

func (m Model) submit() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if email == "" || password == "" || (m.mode == ModeRegister && name == "") {
		m.errMsg = "Por favor, complete todos los campos."
		return m, nil
	}

	m.loading = true
	m.errMsg = ""

	if m.mode == ModeRegister {
		return m, registerCmd(m.client, name, email, password)
	}
	return m, loginCmd(m.client, email, password)
}

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.Login(ctx, email, password)
		if err != nil {
			logging.With("login").Warn("login failed", "error", err)
		}
		return loginResultMsg{resp: resp, err: err}
	}
}

func registerCmd(client *api.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.Register(ctx, api.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: password,
		})
		if err != nil {
			logging.With("login").Warn("register failed", "error", err)
		}
		return registerResultMsg{resp: resp, err: err}
	}
}

// loginErrorText maps a client error to the user-facing Spanish message.
func loginErrorText(err error) string {
	switch {
	case api.IsAuth(err):
		var cerr *api.ClientError
		if errors.As(err, &cerr) && cerr.Message != "" {
			return cerr.Message
		}
		return "Error al iniciar sesión"
	case api.IsConnection(err):
		return "Error de conexión con el servidor. Asegúrese de que el backend esté corriendo."
	default:
		return "Error al iniciar sesión"
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the form card, or the pending-approval notice.
func (m Model) View() string {
	if m.pending {
		return m.pendingView()
	}

	var b strings.Builder

	title := "Iniciar Sesión"
	subtitle := "Acceda a su cuenta de IuristaTech"
	if m.mode == ModeRegister {
		title = "Crear Cuenta"
		subtitle = "Únase a IuristaTech"
	}
	b.WriteString(m.theme.ModalTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.theme.ModalLabel.Render(subtitle))
	b.WriteString("\n\n")

	if m.mode == ModeRegister {
		b.WriteString(m.theme.ModalLabel.Render("Nombre"))
		b.WriteString("\n")
		b.WriteString(m.inputs[fieldName].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.ModalLabel.Render("Correo Electrónico"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.ModalLabel.Render("Contraseña"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(m.theme.ModalError.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.theme.ModalButton.Render("Ingresando..."))
	} else {
		b.WriteString(m.theme.ModalButtonActive.Render("Ingresar (enter)"))
	}
	b.WriteString("\n\n")

	hint := "ctrl+r registrarse · esc volver"
	if m.mode == ModeRegister {
		hint = "ctrl+r iniciar sesión · esc volver"
	}
	b.WriteString(m.theme.ShortcutDesc.Render(hint))

	card := m.theme.ModalBox.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

func (m Model) pendingView() string {
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Cuenta en Revisión"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.ModalLabel.Render(
		"Tu registro ha sido completado exitosamente.\n" +
			"Un administrador debe aprobar tu cuenta antes de que\n" +
			"puedas acceder a la plataforma."))
	b.WriteString("\n\n")
	b.WriteString(m.theme.ShortcutDesc.Render("Pulsa cualquier tecla para volver al inicio"))

	card := m.theme.ModalBox.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
