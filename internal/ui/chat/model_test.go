// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/attach"
	"github.com/iuristatech/iurista-tui/internal/classify"
	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/session"
	"github.com/iuristatech/iurista-tui/internal/ui/components"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func newTestModel(t *testing.T, signedIn bool) Model {
	t.Helper()
	sess := session.NewManager()
	if signedIn {
		sess.SignIn(&model.User{ID: 7, Email: "ana@pyme.co", Name: "Ana"}, "tok")
	}
	return New(styles.NewTheme(), Options{
		Client:  api.NewClient(),
		Session: sess,
	})
}

// ===== SEND GATE =====

func TestSendAnonymousRaisesAuthPrompt(t *testing.T) {
	m := newTestModel(t, false)

	m, cmd := m.SendMessage("¿Cómo despido a un empleado?")
	if cmd != nil {
		t.Error("anonymous send produced a network command")
	}
	if !m.authPrompt.Visible() {
		t.Error("auth prompt not shown for anonymous send")
	}
	if m.log.Len() != 0 {
		t.Errorf("log has %d messages, want 0 (nothing appended before auth)", m.log.Len())
	}
	if m.Loading() {
		t.Error("loading set for a rejected send")
	}
}

func TestSendWhileLoadingRejected(t *testing.T) {
	m := newTestModel(t, true)

	m, cmd := m.SendMessage("primera consulta")
	if cmd == nil {
		t.Fatal("first send produced no command")
	}

	m, cmd = m.SendMessage("segunda consulta")
	if cmd != nil {
		t.Error("second send produced a command while loading")
	}
	if m.log.Len() != 1 {
		t.Errorf("log has %d messages, want 1", m.log.Len())
	}
}

// ===== OPTIMISTIC APPEND =====

func TestSendAppendsPendingMessage(t *testing.T) {
	m := newTestModel(t, true)

	m, cmd := m.SendMessage("Necesito revisar un contrato")
	if cmd == nil {
		t.Fatal("send produced no command")
	}
	if !m.Loading() {
		t.Error("loading not set after send")
	}
	if !m.typing.Active() {
		t.Error("typing indicator not started")
	}
	if !m.capsule.Visible() {
		t.Error("status capsule not shown")
	}

	last := m.log.Last()
	if last == nil || last.Role != model.RoleUser {
		t.Fatal("user message not appended")
	}
	if !last.Pending {
		t.Error("optimistic message not flagged pending")
	}
}

// ===== RECONCILIATION =====

func TestReplyReconcilesAndAppendsAssistant(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("consulta laboral")

	m, _ = m.Update(chatReplyMsg{resp: &api.ChatResponse{
		Response:         "Respuesta del asistente",
		Status:           "analyzing",
		ConversationID:   42,
		SuggestedActions: []string{"Ver más"},
	}})

	if m.Loading() {
		t.Error("loading not cleared after reply")
	}
	if m.log.HasPending() {
		t.Error("pending flag not reconciled")
	}
	if m.log.Len() != 2 {
		t.Fatalf("log has %d messages, want 2", m.log.Len())
	}
	last := m.log.Last()
	if last.Role != model.RoleAssistant || last.Content != "Respuesta del asistente" {
		t.Errorf("assistant reply not appended, got %+v", last)
	}
	if len(last.SuggestedActions) != 1 {
		t.Error("suggested actions dropped")
	}

	convID := m.session.ConversationID()
	if convID == nil || *convID != 42 {
		t.Errorf("conversation id not adopted, got %v", convID)
	}
}

func TestStaleReplyDropped(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("consulta")

	// The user switched to another conversation while the send was in
	// flight.
	other := int64(99)
	m.session.SetConversation(&other)

	m, _ = m.Update(chatReplyMsg{resp: &api.ChatResponse{
		Response:       "respuesta tardía",
		ConversationID: 42,
	}})

	if m.Loading() {
		t.Error("loading not cleared for a dropped reply")
	}
	for _, msg := range m.log.Messages() {
		if msg.Content == "respuesta tardía" {
			t.Fatal("late reply for an abandoned conversation was appended")
		}
	}
	if convID := m.session.ConversationID(); convID == nil || *convID != 99 {
		t.Errorf("active conversation changed by stale reply, got %v", convID)
	}
}

func TestSendFailureAppendsFixedError(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("consulta")

	m, _ = m.Update(chatFailedMsg{err: api.ErrNotReachable})

	if m.Loading() {
		t.Error("loading not cleared after failure")
	}
	if m.log.HasPending() {
		t.Error("pending flag not reconciled after failure")
	}
	last := m.log.Last()
	if last == nil || last.Role != model.RoleAssistant {
		t.Fatal("no assistant error entry appended")
	}
	if last.Content != connectionErrorText {
		t.Errorf("error entry = %q, want %q", last.Content, connectionErrorText)
	}
}

func TestUploadFailureAppendsReason(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("analiza esto")

	m, _ = m.Update(uploadFailedMsg{reason: "No se pudo leer el PDF."})

	last := m.log.Last()
	if last == nil || last.Content != "No se pudo leer el PDF." {
		t.Errorf("upload failure reason not surfaced, got %+v", last)
	}
	if m.Loading() {
		t.Error("loading not cleared after upload failure")
	}
}

// ===== CONVERSATION SWITCHING =====

func TestNewChatClearsLogAndConversation(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("consulta")
	m, _ = m.Update(chatReplyMsg{resp: &api.ChatResponse{
		Response:       "respuesta",
		ConversationID: 42,
	}})

	m, cmd := m.newChat()
	if cmd != nil {
		t.Error("new chat issued a network command")
	}
	if !m.log.IsEmpty() {
		t.Error("log not cleared for a new chat")
	}
	if m.session.ConversationID() != nil {
		t.Error("conversation id not cleared for a new chat")
	}
}

func TestConversationLoadedReplacesLog(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("vieja consulta")
	m.log.Reconcile()
	m.loading = false

	m, _ = m.Update(conversationLoadedMsg{
		conversationID: 5,
		messages: []*model.Message{
			{ID: "srv-1", Role: model.RoleUser, Content: "hola"},
			{ID: "srv-2", Role: model.RoleAssistant, Content: "buenas"},
		},
	})

	if m.log.Len() != 2 {
		t.Fatalf("log has %d messages after load, want 2", m.log.Len())
	}
	if convID := m.session.ConversationID(); convID == nil || *convID != 5 {
		t.Errorf("conversation id = %v, want 5", convID)
	}
}

// ===== ATTACHMENTS =====

func TestAttachRejectsUnsupportedType(t *testing.T) {
	m := newTestModel(t, true)
	m.Attach("/tmp/definitely-missing-file.exe")
	if m.attachment != nil {
		t.Error("invalid attachment was staged")
	}
	if m.attachErr == "" {
		t.Error("no user-facing error for invalid attachment")
	}
}

func TestFileOnlySendUsesDefaultText(t *testing.T) {
	m := newTestModel(t, true)

	dir := t.TempDir()
	path := dir + "/contrato.txt"
	if err := writeFile(path, "contrato de prueba"); err != nil {
		t.Fatal(err)
	}
	m.Attach(path)
	if m.attachment == nil {
		t.Fatalf("valid txt attachment rejected: %s", m.attachErr)
	}

	m, cmd := m.submit()
	if cmd == nil {
		t.Fatal("file-only send produced no command")
	}
	last := m.log.Last()
	if last == nil || !last.HasDocument {
		t.Fatal("file send not marked as carrying a document")
	}
	if !strings.Contains(last.Content, "contrato.txt") {
		t.Errorf("display content %q missing filename", last.Content)
	}
	if !strings.Contains(last.Content, defaultFileMessage) {
		t.Errorf("display content %q missing default text", last.Content)
	}
}

func TestAttachCommandStagesFile(t *testing.T) {
	m := newTestModel(t, true)

	dir := t.TempDir()
	path := dir + "/demanda.txt"
	if err := writeFile(path, "texto de la demanda"); err != nil {
		t.Fatal(err)
	}

	m.input.SetValue("/adjuntar " + path)
	m, cmd := m.submit()
	if cmd != nil {
		t.Error("attach command issued a network command")
	}
	if m.attachment == nil {
		t.Fatalf("attachment not staged: %s", m.attachErr)
	}
	if m.attachment.Filename != "demanda.txt" {
		t.Errorf("staged filename = %q", m.attachment.Filename)
	}
	if m.input.Value() != "" {
		t.Error("input not cleared after attach command")
	}
	if m.log.Len() != 0 {
		t.Error("attach command appended a message")
	}
}

func TestReplyRecordsServerStatus(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("consulta")

	m, _ = m.Update(chatReplyMsg{resp: &api.ChatResponse{
		Response:       "He identificado elementos de riesgo.",
		Status:         "risk",
		ConversationID: 42,
	}})

	if m.capsule.Visible() {
		t.Error("capsule still visible after reply")
	}
	if got := m.capsule.Status(); got != classify.StatusRisk {
		t.Errorf("recorded status = %q, want %q", got, classify.StatusRisk)
	}
}

// ===== WELCOME QUICK ACTIONS =====

func TestWelcomeQuickActionAnonymousRaisesPrompt(t *testing.T) {
	m := newTestModel(t, false)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("anonymous quick action produced a command")
	}
	if !m.authPrompt.Visible() {
		t.Error("auth prompt not shown for anonymous quick action")
	}
	if m.log.Len() != 0 {
		t.Errorf("log has %d messages, want 0", m.log.Len())
	}
}

func TestWelcomeQuickActionSendsCardPrompt(t *testing.T) {
	m := newTestModel(t, true)

	// Move to the second card, then activate it.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("quick action produced no command")
	}

	last := m.log.Last()
	if last == nil || last.Role != model.RoleUser {
		t.Fatal("quick prompt not appended as user message")
	}
	if want := components.PracticeAreas[1].QuickPrompt; last.Content != want {
		t.Errorf("sent %q, want %q", last.Content, want)
	}
}

func TestWelcomeKeysIgnoredOnceTranscriptHasMessages(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.SendMessage("consulta")
	m, _ = m.Update(chatReplyMsg{resp: &api.ChatResponse{
		Response:       "respuesta",
		ConversationID: 42,
	}})

	before := m.log.Len()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.log.Len() != before {
		t.Error("enter on a non-empty transcript sent a welcome prompt")
	}
}

// ===== LOCAL-MODE EXTRACTION =====

func TestLocalSendExtractsDocumentText(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/demanda.txt"
	if err := writeFile(path, "nos notificaron una demanda por incumplimiento"); err != nil {
		t.Fatal(err)
	}
	a, err := attach.Validate(path)
	if err != nil {
		t.Fatal(err)
	}

	msg := localSendCmd(nil, nil, "Analiza este documento", a)()
	reply, ok := msg.(localReplyMsg)
	if !ok {
		t.Fatalf("got %T, want localReplyMsg", msg)
	}
	// Risk wording inside the document drives the simulated turn.
	if reply.reply.Category != classify.CategoryRiskDetected {
		t.Errorf("category = %q, want %q", reply.reply.Category, classify.CategoryRiskDetected)
	}
}

func TestLocalSendUnextractableFileFails(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/contrato.docx"
	if err := writeFile(path, "no es un docx de verdad"); err != nil {
		t.Fatal(err)
	}
	a, err := attach.Validate(path)
	if err != nil {
		t.Fatal(err)
	}

	msg := localSendCmd(nil, nil, "Analiza este documento", a)()
	failed, ok := msg.(uploadFailedMsg)
	if !ok {
		t.Fatalf("got %T, want uploadFailedMsg", msg)
	}
	if failed.reason == "" {
		t.Error("no user-facing reason for the extraction failure")
	}
}
