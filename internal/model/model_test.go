// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
)

// =============================================================================
// LOG TESTS
// =============================================================================

func TestLog_OptimisticAppendAndReconcile(t *testing.T) {
	log := NewLog()

	user := log.AppendUser("¿Cómo despido a un empleado sin justa causa?", false)
	if !user.Pending {
		t.Fatal("optimistic user message must start pending")
	}
	if !log.HasPending() {
		t.Fatal("HasPending() = false after optimistic append")
	}

	log.AppendAssistant("Entiendo su consulta.", []string{"Generar borrador"})
	log.Reconcile()

	if user.Pending {
		t.Error("Reconcile() must clear the pending flag")
	}
	if log.HasPending() {
		t.Error("HasPending() = true after reconcile")
	}
	if log.Len() != 2 {
		t.Errorf("Len() = %d, want 2", log.Len())
	}
}

func TestLog_IDsUniqueAndNeverReused(t *testing.T) {
	log := NewLog()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		msg := log.AppendUser("hola", false)
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}

	// IDs keep advancing across Clear; a cleared log must not mint an ID
	// that an earlier message already carried.
	log.Clear()
	msg := log.AppendUser("otra consulta", false)
	if seen[msg.ID] {
		t.Errorf("ID %q reused after Clear", msg.ID)
	}
}

func TestLog_ReplaceAllDropsEverything(t *testing.T) {
	log := NewLog()
	log.AppendUser("primera conversación", false)
	log.AppendAssistant("respuesta", nil)

	history := []*Message{
		{ID: "srv-1", Role: RoleUser, Content: "consulta previa"},
		{ID: "srv-2", Role: RoleAssistant, Content: "respuesta previa"},
	}
	log.ReplaceAll(history)

	if log.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", log.Len())
	}
	for _, msg := range log.Messages() {
		if msg.Content == "primera conversación" || msg.Content == "respuesta" {
			t.Error("residual message from previous conversation survived ReplaceAll")
		}
	}
}

func TestLog_Title(t *testing.T) {
	log := NewLog()
	if got := log.Title(); got != "Nueva consulta" {
		t.Errorf("empty log Title() = %q", got)
	}

	log.AppendAssistant("bienvenida", nil)
	log.AppendUser("Necesito revisar un contrato de arrendamiento comercial para mi negocio.", false)
	got := log.Title()
	if len([]rune(got)) > 50 {
		t.Errorf("Title() longer than 50 runes: %q", got)
	}
	if got == "Nueva consulta" {
		t.Error("Title() ignored the first user message")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessage_Preview(t *testing.T) {
	msg := &Message{Content: "línea uno\nlínea dos"}
	if got := msg.Preview(50); got != "línea uno línea dos" {
		t.Errorf("Preview() = %q", got)
	}

	long := &Message{Content: "cláusula de exclusividad en el contrato de arrendamiento"}
	if got := long.Preview(20); len([]rune(got)) != 20 {
		t.Errorf("Preview(20) returned %d runes", len([]rune(got)))
	}
}

// =============================================================================
// USER TESTS
// =============================================================================

func TestUser_Admin(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"nil user", nil, false},
		{"flag set", &User{IsAdmin: true}, true},
		{"role string", &User{Role: "admin"}, true},
		{"plain user", &User{Role: "client"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.Admin(); got != tc.want {
				t.Errorf("Admin() = %v, want %v", got, tc.want)
			}
		})
	}
}

// The backend is inconsistent about the admin flag's spelling; both must
// decode.
func TestUser_UnmarshalAdminSpellings(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"snake case", `{"id": 1, "email": "a@b.co", "is_admin": true}`, true},
		{"camel case", `{"id": 1, "email": "a@b.co", "isAdmin": true}`, true},
		{"both false", `{"id": 1, "email": "a@b.co", "is_admin": false, "isAdmin": false}`, false},
		{"absent", `{"id": 1, "email": "a@b.co"}`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var u User
			if err := json.Unmarshal([]byte(tc.body), &u); err != nil {
				t.Fatal(err)
			}
			if u.IsAdmin != tc.want {
				t.Errorf("IsAdmin = %v, want %v", u.IsAdmin, tc.want)
			}
		})
	}
}
