// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/session"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

func newTestProfile() (Model, *session.Manager) {
	sess := session.NewManager()
	sess.SignIn(&model.User{ID: 3, Name: "Ana Gómez", Email: "ana@pyme.co"}, "tok")
	return New(styles.NewTheme(), api.NewClient(), sess), sess
}

func TestRenameUnchangedIsNoOp(t *testing.T) {
	m, _ := newTestProfile()

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if !m.editing {
		t.Fatal("edit mode not entered")
	}

	// The input is pre-filled with the current name; saving it unchanged
	// must not hit the network.
	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("unchanged rename produced a network command")
	}
	if m.editing {
		t.Error("edit mode not left")
	}
}

func TestRenameChangedIssuesCommand(t *testing.T) {
	m, _ := newTestProfile()
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m.nameInput.SetValue("Ana María Gómez")

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("changed rename produced no command")
	}
}

func TestRenameSuccessUpdatesSession(t *testing.T) {
	m, sess := newTestProfile()

	m, cmd := m.Update(renameResultMsg{name: "Ana María Gómez"})
	if cmd == nil {
		t.Error("no notice-clear tick scheduled")
	}
	if got := sess.User().Name; got != "Ana María Gómez" {
		t.Errorf("session name = %q, not updated", got)
	}
	if m.notice == "" {
		t.Error("no confirmation notice")
	}
}

func TestViewShowsStats(t *testing.T) {
	m, _ := newTestProfile()
	m, _ = m.Update(profileMsg{resp: &api.ProfileResponse{
		Stats: api.ProfileStats{TotalConversations: 4, TotalMessages: 31},
		Conversations: []model.ConversationSummary{
			{ID: 1, Title: "Contrato de arrendamiento"},
		},
	}})

	out := m.View()
	for _, want := range []string{"Consultas realizadas", "4", "Mensajes totales", "31", "Contrato de arrendamiento"} {
		if !strings.Contains(out, want) {
			t.Errorf("profile view missing %q", want)
		}
	}
}

func TestEscEmitsBack(t *testing.T) {
	m, _ := newTestProfile()
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Errorf("got %T, want BackMsg", cmd())
	}
}
