// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/classify"
	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

// ===== SPLASH =====

func TestSplashPhasesAdvanceForwardOnly(t *testing.T) {
	s := NewSplash(testTheme(), 3600*time.Millisecond)
	if s.Phase() != SplashEnter {
		t.Fatalf("initial phase = %v, want SplashEnter", s.Phase())
	}

	s, _ = s.Update(splashTickMsg{phase: SplashReveal})
	if s.Phase() != SplashReveal {
		t.Fatalf("phase after reveal tick = %v, want SplashReveal", s.Phase())
	}

	s, _ = s.Update(splashTickMsg{phase: SplashExit})
	if s.Phase() != SplashExit {
		t.Fatalf("phase after exit tick = %v, want SplashExit", s.Phase())
	}

	// A late reveal tick must not roll the animation back.
	s, _ = s.Update(splashTickMsg{phase: SplashReveal})
	if s.Phase() != SplashExit {
		t.Errorf("stale tick rolled phase back to %v", s.Phase())
	}
}

func TestSplashKeySkips(t *testing.T) {
	s := NewSplash(testTheme(), time.Second)
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("key press produced no command")
	}
	msg := cmd()
	done, ok := msg.(SplashDoneMsg)
	if !ok {
		t.Fatalf("key press produced %T, want SplashDoneMsg", msg)
	}
	if !done.Skipped {
		t.Error("Skipped = false for a key-press skip")
	}
}

func TestSplashViewRevealsBrand(t *testing.T) {
	s := NewSplash(testTheme(), time.Second)
	if strings.Contains(s.View(), "IuristaTech") {
		t.Error("brand text visible before the reveal phase")
	}
	s, _ = s.Update(splashTickMsg{phase: SplashReveal})
	if !strings.Contains(s.View(), "IuristaTech") {
		t.Error("brand text missing in the reveal phase")
	}
}

// ===== WELCOME =====

func TestWelcomeSelectionWraps(t *testing.T) {
	w := NewWelcome(testTheme())
	if w.Selected().ID != "laboral" {
		t.Fatalf("initial selection = %q, want laboral", w.Selected().ID)
	}

	w.Prev()
	if w.Selected().ID != "migratorio" {
		t.Errorf("Prev from first = %q, want migratorio", w.Selected().ID)
	}

	w.Next()
	if w.Selected().ID != "laboral" {
		t.Errorf("Next wrap = %q, want laboral", w.Selected().ID)
	}
}

func TestPracticeAreasHaveQuickPrompts(t *testing.T) {
	if len(PracticeAreas) != 3 {
		t.Fatalf("len(PracticeAreas) = %d, want 3", len(PracticeAreas))
	}
	for _, area := range PracticeAreas {
		if area.QuickPrompt == "" {
			t.Errorf("area %q has no quick prompt", area.ID)
		}
	}
}

// ===== SIDEBAR =====

func sampleConversations() []model.ConversationSummary {
	now := time.Now()
	return []model.ConversationSummary{
		{ID: 1, Title: "Contrato laboral", Status: model.ConversationActive, UpdatedAt: now},
		{ID: 2, Title: "Multa UGPP", Status: model.ConversationRiskDetected, UpdatedAt: now.Add(-2 * time.Hour)},
	}
}

func TestSidebarSelection(t *testing.T) {
	s := NewSidebar(testTheme())
	s.SetConversations(sampleConversations())

	if s.Selected() != nil {
		t.Fatal("index 0 should select the new-consultation entry")
	}

	s.Next()
	sel := s.Selected()
	if sel == nil || sel.ID != 1 {
		t.Fatalf("Selected after Next = %+v, want conversation 1", sel)
	}

	s.Next()
	s.Next() // wraps past the last conversation
	if s.Selected() != nil {
		t.Error("selection did not wrap back to the new-consultation entry")
	}
}

func TestSidebarSelectionClampedOnShrink(t *testing.T) {
	s := NewSidebar(testTheme())
	s.SetConversations(sampleConversations())
	s.Next()
	s.Next() // conversation 2

	s.SetConversations(sampleConversations()[:1])
	if sel := s.Selected(); sel == nil || sel.ID != 1 {
		t.Errorf("Selected after shrink = %+v, want conversation 1", sel)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "ahora"},
		{"minutes", now.Add(-5 * time.Minute), "5 min"},
		{"hours", now.Add(-3 * time.Hour), "3 h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeTime(tt.at); got != tt.want {
				t.Errorf("relativeTime = %q, want %q", got, tt.want)
			}
		})
	}

	old := now.Add(-72 * time.Hour)
	if got := relativeTime(old); got != old.Format("02/01/2006") {
		t.Errorf("relativeTime for old timestamp = %q", got)
	}
}

// ===== STATUS CAPSULE =====

func TestCapsuleLabels(t *testing.T) {
	tests := []struct {
		status classify.Status
		want   string
	}{
		{classify.StatusAnalyzing, "Analizando Normativa"},
		{classify.StatusDocument, "Generando Documento"},
		{classify.StatusRisk, "Validando Riesgos"},
	}
	for _, tt := range tests {
		if got := capsuleLabel(tt.status); got != tt.want {
			t.Errorf("capsuleLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestCapsuleVisibility(t *testing.T) {
	c := NewStatusCapsule(testTheme())
	if c.Visible() || c.View() != "" {
		t.Fatal("capsule should start hidden")
	}

	c.Show(classify.StatusDocument)
	if !c.Visible() {
		t.Fatal("capsule not visible after Show")
	}
	if !strings.Contains(c.View(), "Generando Documento") {
		t.Errorf("capsule view = %q, missing label", c.View())
	}

	c.Hide()
	if c.View() != "" {
		t.Error("capsule still renders after Hide")
	}
}

// ===== MESSAGE RENDERER =====

func TestRenderUserPendingMark(t *testing.T) {
	r := NewMessageRenderer(testTheme(), 80)
	msg := model.Message{
		Role:      model.RoleUser,
		Content:   "¿Cómo liquido una nómina?",
		Timestamp: time.Now(),
		Pending:   true,
	}
	out := r.Render(msg, true)
	if !strings.Contains(out, "enviando...") {
		t.Error("pending user message missing the enviando mark")
	}

	msg.Pending = false
	out = r.Render(msg, true)
	if strings.Contains(out, "enviando...") {
		t.Error("confirmed message still shows the enviando mark")
	}
}

func TestRenderUserDocumentMark(t *testing.T) {
	r := NewMessageRenderer(testTheme(), 80)
	msg := model.Message{
		Role:        model.RoleUser,
		Content:     "Revisa este contrato",
		Timestamp:   time.Now(),
		HasDocument: true,
	}
	if !strings.Contains(r.Render(msg, false), "[Documento adjunto]") {
		t.Error("attached message missing the document mark")
	}
}

func TestRenderAssistantActions(t *testing.T) {
	r := NewMessageRenderer(testTheme(), 80)
	msg := model.Message{
		Role:             model.RoleAssistant,
		Content:          "Respuesta",
		Timestamp:        time.Now(),
		SuggestedActions: []string{"Ver requisitos", "Agendar cita"},
	}
	out := r.Render(msg, false)
	for _, want := range []string{"[1]", "Ver requisitos", "[2]", "Agendar cita"} {
		if !strings.Contains(out, want) {
			t.Errorf("assistant view missing %q", want)
		}
	}
}

// ===== AUTH PROMPT =====

func TestAuthPromptToggle(t *testing.T) {
	a := NewAuthPrompt(testTheme())
	if a.View() != "" {
		t.Fatal("hidden prompt should render nothing")
	}

	a.Show()
	if a.Choice() != AuthChoiceLogin {
		t.Fatalf("initial choice = %v, want login", a.Choice())
	}
	if !strings.Contains(a.View(), "únete a nosotros") {
		t.Error("prompt missing its title")
	}

	a.Toggle()
	if a.Choice() != AuthChoiceRegister {
		t.Error("Toggle did not move to register")
	}
	a.Toggle()
	if a.Choice() != AuthChoiceLogin {
		t.Error("Toggle did not return to login")
	}

	a.Hide()
	if a.Visible() {
		t.Error("prompt still visible after Hide")
	}
}

// ===== TYPING INDICATOR =====

func TestTypingIndicatorLifecycle(t *testing.T) {
	ti := NewTypingIndicator(testTheme())
	if ti.Active() || ti.View() != "" {
		t.Fatal("indicator should start inactive")
	}

	cmd := ti.Start()
	if cmd == nil {
		t.Fatal("Start returned no tick command")
	}
	if !ti.Active() {
		t.Fatal("indicator not active after Start")
	}
	if !strings.Contains(ti.View(), "escribiendo") {
		t.Errorf("active view = %q, missing typing text", ti.View())
	}

	ti.Stop()
	if ti.Active() || ti.View() != "" {
		t.Error("indicator still renders after Stop")
	}
}

// ===== STATUS BAR =====

func TestStatusBarNoticeOverridesHints(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetShortcuts([]Shortcut{{Key: "r", Desc: "recarga"}})

	if view := bar.View(); !strings.Contains(view, "recarga") {
		t.Errorf("shortcut hint missing from bar: %q", view)
	}

	bar.SetNotice("Usuario creado")
	if view := bar.View(); !strings.Contains(view, "Usuario creado") {
		t.Errorf("notice not shown: %q", view)
	}
	if view := bar.View(); strings.Contains(view, "recarga") {
		t.Errorf("hints should be hidden while a notice is up: %q", view)
	}

	bar.SetNotice("")
	if view := bar.View(); !strings.Contains(view, "recarga") {
		t.Errorf("hints should return once the notice clears: %q", view)
	}
}
