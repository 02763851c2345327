// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/iuristatech/iurista-tui/internal/classify"
)

// =============================================================================
// TYPING DELAY TESTS
// =============================================================================

func TestTypingDelay(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Duration
	}{
		{"empty text is base delay", "", 800 * time.Millisecond},
		{"ten chars", strings.Repeat("a", 10), 880 * time.Millisecond},
		{"long text capped at 3s", strings.Repeat("a", 10000), 3 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypingDelay(tc.text); got != tc.want {
				t.Errorf("TypingDelay(len=%d) = %v, want %v", len(tc.text), got, tc.want)
			}
		})
	}
}

// =============================================================================
// RESPONSE TESTS
// =============================================================================

func TestRespond_CategoryRouting(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantCategory classify.Category
		wantInText   string
	}{
		{"laboral", "despido de un empleado", classify.CategoryLaboral, "Código Sustantivo del Trabajo"},
		{"inmobiliario", "canon de arriendo del local", classify.CategoryInmobiliario, "Ley 820 de 2003"},
		{"migratorio", "visa para nómadas", classify.CategoryMigratorio, "Resolución 5477 de 2022"},
		{"risk", "me llegó una demanda", classify.CategoryRiskDetected, "Alerta de Riesgo"},
		{"out of scope", "proceso de divorcio", classify.CategoryOutOfScope, "excede el alcance"},
		{"general", "hola, una pregunta", classify.CategoryGeneral, "áreas especializadas"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply := Respond(tc.input)
			if reply.Category != tc.wantCategory {
				t.Errorf("Category = %q, want %q", reply.Category, tc.wantCategory)
			}
			if !strings.Contains(reply.Text, tc.wantInText) {
				t.Errorf("reply text missing %q", tc.wantInText)
			}
			if reply.Delay < 800*time.Millisecond || reply.Delay > 3*time.Second {
				t.Errorf("Delay = %v outside [800ms, 3s]", reply.Delay)
			}
		})
	}
}

func TestRespond_StatusIndependent(t *testing.T) {
	reply := Respond("necesito un contrato de arrendamiento")
	if reply.Category != classify.CategoryInmobiliario {
		t.Errorf("Category = %q, want inmobiliario", reply.Category)
	}
	if reply.Status != classify.StatusDocument {
		t.Errorf("Status = %q, want document", reply.Status)
	}
}

func TestRespond_SuggestedActions(t *testing.T) {
	reply := Respond("despido sin justa causa del trabajador")
	if len(reply.SuggestedActions) == 0 {
		t.Fatal("laboral reply should carry suggested actions")
	}

	// Out-of-scope replies offer no follow-up.
	reply = Respond("caso de homicidio")
	if len(reply.SuggestedActions) != 0 {
		t.Errorf("out-of-scope reply carries %d suggested actions", len(reply.SuggestedActions))
	}
}
