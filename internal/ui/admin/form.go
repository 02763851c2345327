// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// =============================================================================
// USER FORM
// =============================================================================

// userForm is the inline create/edit form on the users tab.
type userForm struct {
	theme *styles.Theme

	// userID is 0 for a new user.
	userID  int64
	name    textinput.Model
	email   textinput.Model
	pass    textinput.Model
	isAdmin bool
	focus   int
	errMsg  string
}

func newUserForm(theme *styles.Theme, existing *api.AdminUser) *userForm {
	name := textinput.New()
	name.Placeholder = "Nombre completo"
	name.Focus()

	email := textinput.New()
	email.Placeholder = "nombre@empresa.com"

	pass := textinput.New()
	pass.Placeholder = "contraseña"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	f := &userForm{theme: theme, name: name, email: email, pass: pass}
	if existing != nil {
		f.userID = existing.ID
		f.name.SetValue(existing.Name)
		f.email.SetValue(existing.Email)
		f.isAdmin = existing.IsAdmin
	}
	return f
}

// update forwards input to the focused field and handles focus movement.
func (f *userForm) update(msg tea.Msg) (*userForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.moveFocus(1)
			return f, nil
		case "shift+tab", "up":
			f.moveFocus(-1)
			return f, nil
		case "ctrl+a":
			f.isAdmin = !f.isAdmin
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.name, cmd = f.name.Update(msg)
	case 1:
		f.email, cmd = f.email.Update(msg)
	case 2:
		f.pass, cmd = f.pass.Update(msg)
	}
	return f, cmd
}

func (f *userForm) moveFocus(delta int) {
	fields := []*textinput.Model{&f.name, &f.email, &f.pass}
	fields[f.focus].Blur()
	f.focus = (f.focus + delta + len(fields)) % len(fields)
	fields[f.focus].Focus()
}

// payload validates the form and builds the wire payload. A password is
// required only for new users.
func (f *userForm) payload() (api.UserPayload, int64, error) {
	name := strings.TrimSpace(f.name.Value())
	email := strings.TrimSpace(f.email.Value())
	pass := f.pass.Value()

	if name == "" || email == "" {
		return api.UserPayload{}, 0, errors.New("Por favor, complete todos los campos.")
	}
	if f.userID == 0 && pass == "" {
		return api.UserPayload{}, 0, errors.New("La contraseña es obligatoria para usuarios nuevos.")
	}

	role := "user"
	if f.isAdmin {
		role = "admin"
	}
	return api.UserPayload{
		Name:     name,
		Email:    email,
		Password: pass,
		Role:     role,
		IsAdmin:  f.isAdmin,
	}, f.userID, nil
}

// view renders the form card.
func (f *userForm) view() string {
	var b strings.Builder

	title := "Nuevo Usuario"
	if f.userID != 0 {
		title = "Editar Usuario"
	}
	b.WriteString(f.theme.ModalTitle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(f.theme.ModalLabel.Render("Nombre"))
	b.WriteString("\n" + f.name.View() + "\n\n")
	b.WriteString(f.theme.ModalLabel.Render("Email"))
	b.WriteString("\n" + f.email.View() + "\n\n")
	b.WriteString(f.theme.ModalLabel.Render("Contraseña"))
	b.WriteString("\n" + f.pass.View() + "\n\n")

	roleLabel := "Usuario"
	if f.isAdmin {
		roleLabel = "Administrador"
	}
	b.WriteString(f.theme.ModalLabel.Render("Rol: "))
	b.WriteString(f.theme.InfoStyle.Render(roleLabel))
	b.WriteString(f.theme.ShortcutDesc.Render("  (ctrl+a cambia)"))
	b.WriteString("\n\n")

	if f.errMsg != "" {
		b.WriteString(f.theme.ModalError.Render(f.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(f.theme.ShortcutDesc.Render("enter guarda · esc cancela"))

	return f.theme.ModalBox.Render(b.String())
}

// =============================================================================
// KNOWLEDGE PATH PROMPT
// =============================================================================

// pathPrompt asks for the path of the PDF to add to the knowledge base.
type pathPrompt struct {
	theme  *styles.Theme
	input  textinput.Model
	errMsg string
}

func newPathPrompt(theme *styles.Theme) *pathPrompt {
	in := textinput.New()
	in.Placeholder = "/ruta/al/documento.pdf"
	in.Focus()
	return &pathPrompt{theme: theme, input: in}
}

func (p *pathPrompt) update(msg tea.Msg) (*pathPrompt, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *pathPrompt) view() string {
	var b strings.Builder
	b.WriteString(p.theme.ModalTitle.Render("Subir Nuevo Documento"))
	b.WriteString("\n\n")
	b.WriteString(p.theme.ModalLabel.Render(
		"Sube contratos modelo o leyes (PDF) para que la IA los use\n" +
			"como referencia al generar respuestas y documentos."))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	if p.errMsg != "" {
		b.WriteString(p.theme.ModalError.Render(p.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(p.theme.ShortcutDesc.Render("enter sube · esc cancela"))
	return p.theme.ModalBox.Render(b.String())
}
