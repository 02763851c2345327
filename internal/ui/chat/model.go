// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/attach"
	"github.com/iuristatech/iurista-tui/internal/classify"
	"github.com/iuristatech/iurista-tui/internal/logging"
	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/session"
	"github.com/iuristatech/iurista-tui/internal/storage"
	"github.com/iuristatech/iurista-tui/internal/ui/components"
	"github.com/iuristatech/iurista-tui/internal/ui/styles"
)

// connectionErrorText is the fixed assistant reply appended when a send
// cannot reach the backend.
const connectionErrorText = "Error de conexión con el servidor."

// defaultFileMessage stands in when a file is sent with no accompanying
// text.
const defaultFileMessage = "Analiza este documento"

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat view: transcript, input, sidebar, and the send
// pipeline.
type Model struct {
	theme   *styles.Theme
	client  *api.Client
	session *session.Manager

	// history is non-nil only in local mode; it replaces the backend for
	// conversation persistence.
	history   *storage.HistoryStore
	localMode bool

	log      *model.Log
	renderer *components.MessageRenderer

	sidebar    components.Sidebar
	welcome    components.Welcome
	capsule    components.StatusCapsule
	typing     components.TypingIndicator
	authPrompt components.AuthPrompt

	input    textarea.Model
	viewport viewport.Model

	attachment *attach.Attachment
	attachErr  string

	loading        bool
	showTimestamps bool
	width          int
	height         int
	ready          bool
}

// Options configures the chat view.
type Options struct {
	Client         *api.Client
	Session        *session.Manager
	History        *storage.HistoryStore
	LocalMode      bool
	ShowTimestamps bool
}

// New creates the chat view.
func New(theme *styles.Theme, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Escribe tu consulta legal aquí..."
	ta.Prompt = "│ "
	ta.CharLimit = 4000
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	// Enter submits; newline moves to alt+enter.
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")
	ta.Focus()

	return Model{
		theme:          theme,
		client:         opts.Client,
		session:        opts.Session,
		history:        opts.History,
		localMode:      opts.LocalMode,
		log:            model.NewLog(),
		renderer:       components.NewMessageRenderer(theme, 80),
		sidebar:        components.NewSidebar(theme),
		welcome:        components.NewWelcome(theme),
		capsule:        components.NewStatusCapsule(theme),
		typing:         components.NewTypingIndicator(theme),
		authPrompt:     components.NewAuthPrompt(theme),
		input:          ta,
		viewport:       viewport.New(80, 20),
		showTimestamps: opts.ShowTimestamps,
	}
}

// Init triggers the initial conversation sync.
func (m Model) Init() tea.Cmd {
	return m.refreshConversations()
}

// Log exposes the message log for the app model (logout reset and tests).
func (m *Model) Log() *model.Log {
	return m.log
}

// Loading reports whether a send is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Reset clears the transcript, attachment, and sidebar for a logout.
func (m *Model) Reset() {
	m.log.Clear()
	m.attachment = nil
	m.attachErr = ""
	m.loading = false
	m.typing.Stop()
	m.capsule.Hide()
	m.authPrompt.Hide()
	m.sidebar.SetConversations(nil)
	if m.sidebar.Visible() {
		m.sidebar.Toggle()
	}
	m.refreshViewport()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages through the send pipeline and the components.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case chatReplyMsg:
		return m.handleReply(msg)

	case chatFailedMsg:
		logging.With("chat").Warn("send failed", "error", msg.err)
		return m.handleSendFailure(connectionErrorText)

	case uploadFailedMsg:
		reason := msg.reason
		if reason == "" {
			reason = "No se pudo procesar el documento adjunto."
		}
		logging.With("chat").Warn("upload failed", "reason", reason, "error", msg.err)
		return m.handleSendFailure(reason)

	case localReplyMsg:
		return m.handleLocalReply(msg)

	case conversationsMsg:
		m.sidebar.SetConversations(msg.conversations)
		return m, nil

	case conversationLoadedMsg:
		id := msg.conversationID
		m.session.SetConversation(&id)
		m.log.ReplaceAll(msg.messages)
		m.loading = false
		m.typing.Stop()
		m.capsule.Hide()
		m.refreshViewport()
		return m, nil

	case syncFailedMsg:
		logging.With("chat").Warn("conversation sync failed", "error", msg.err)
		return m, nil
	}

	var cmd tea.Cmd
	m.typing, cmd = m.typing.Update(msg)
	return m, cmd
}

// handleKey dispatches key presses by UI state: modal first, then sidebar,
// then the input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.authPrompt.Visible() {
		return m.handleAuthPromptKey(msg)
	}

	if m.sidebar.Visible() {
		switch msg.String() {
		case "up", "k":
			m.sidebar.Prev()
			return m, nil
		case "down", "j":
			m.sidebar.Next()
			return m, nil
		case "enter":
			return m.openSelectedConversation()
		case "esc", "ctrl+h":
			m.sidebar.Toggle()
			return m, nil
		}
		return m, nil
	}

	// With an empty transcript and input, the welcome cards take the
	// navigation keys; enter sends the highlighted card's quick prompt.
	if m.log.IsEmpty() && m.input.Value() == "" && m.attachment == nil {
		switch msg.String() {
		case "left", "shift+tab":
			m.welcome.Prev()
			m.refreshViewport()
			return m, nil
		case "right", "tab":
			m.welcome.Next()
			m.refreshViewport()
			return m, nil
		case "enter":
			return m.SendMessage(m.welcome.Selected().QuickPrompt)
		}
	}

	switch msg.String() {
	case "enter":
		return m.submit()
	case "ctrl+h":
		m.sidebar.Toggle()
		return m, nil
	case "ctrl+n":
		return m.newChat()
	case "ctrl+x":
		m.attachment = nil
		m.attachErr = ""
		return m, nil
	case "esc":
		m.attachErr = ""
		return m, nil
	}

	// Digit shortcuts fire suggested actions when the input is empty.
	if m.input.Value() == "" && len(msg.String()) == 1 {
		if next, cmd, ok := m.maybeQuickAction(msg.String()); ok {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleAuthPromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		m.authPrompt.Toggle()
		return m, nil
	case "enter":
		register := m.authPrompt.Choice() == components.AuthChoiceRegister
		m.authPrompt.Hide()
		return m, func() tea.Msg { return RequestAuthMsg{Register: register} }
	case "esc":
		m.authPrompt.Hide()
		return m, nil
	}
	return m, nil
}

// maybeQuickAction turns a digit press into a send of the matching
// suggested action under the last assistant reply.
func (m Model) maybeQuickAction(key string) (Model, tea.Cmd, bool) {
	last := m.log.Last()
	if last == nil || last.Role != model.RoleAssistant || len(last.SuggestedActions) == 0 {
		return m, nil, false
	}
	if key < "1" || key > "9" {
		return m, nil, false
	}
	idx := int(key[0] - '1')
	if idx >= len(last.SuggestedActions) {
		return m, nil, false
	}
	next, cmd := m.SendMessage(last.SuggestedActions[idx])
	return next, cmd, true
}

// =============================================================================
// SEND PIPELINE
// =============================================================================

// attachCommand is the input command that stages a file for the next
// send, e.g. "/adjuntar contrato.pdf".
const attachCommand = "/adjuntar"

// submit sends the input's current content.
func (m Model) submit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" && m.attachment == nil {
		return m, nil
	}

	if text == attachCommand || strings.HasPrefix(text, attachCommand+" ") {
		m.Attach(strings.TrimSpace(strings.TrimPrefix(text, attachCommand)))
		m.input.Reset()
		return m, nil
	}
	if text == "" {
		text = defaultFileMessage
	}

	next, cmd := m.SendMessage(text)
	if cmd != nil {
		// The typed text survives an auth-gated or rejected send.
		next.input.Reset()
	}
	return next, cmd
}

// Submit sends whatever is in the input box. The app model calls this
// after a successful sign-in to dispatch a send that was gated by the auth
// prompt, since the typed text survives the gate.
func (m Model) Submit() (Model, tea.Cmd) {
	return m.submit()
}

// SendMessage runs the send pipeline for the given text, using the current
// attachment if any. Returns a nil command when the send was rejected
// (loading, or anonymous visitor).
func (m Model) SendMessage(text string) (Model, tea.Cmd) {
	// One in-flight send at a time.
	if m.loading {
		return m, nil
	}

	// Anonymous visitors are prompted to sign in; nothing is appended.
	if !m.session.Authenticated() {
		m.authPrompt.Show()
		return m, nil
	}

	attachment := m.attachment
	display := text
	if attachment != nil {
		display = "📎 " + attachment.Filename + "\n" + text
	}

	m.log.AppendUser(display, attachment != nil)
	m.loading = true
	m.attachment = nil
	m.attachErr = ""
	m.capsule.Show(classify.DetectStatus(text))
	typingCmd := m.typing.Start()
	m.refreshViewport()

	var sendCmd tea.Cmd
	switch {
	case m.localMode:
		sendCmd = localSendCmd(m.history, m.session.ConversationID(), text, attachment)
	case attachment != nil:
		sendCmd = uploadThenChatCmd(m.client, m.userID(), m.session.ConversationID(), text, attachment)
	default:
		sendCmd = sendChatCmd(m.client, m.userID(), m.session.ConversationID(), text, "")
	}
	return m, tea.Batch(typingCmd, sendCmd)
}

// Attach validates and stages a file for the next send.
func (m *Model) Attach(path string) {
	a, err := attach.Validate(path)
	if err != nil {
		m.attachment = nil
		m.attachErr = err.Error()
		return
	}
	m.attachment = a
	m.attachErr = ""
}

// handleReply finishes a successful remote round trip.
func (m Model) handleReply(msg chatReplyMsg) (Model, tea.Cmd) {
	m.loading = false
	m.typing.Stop()
	m.capsule.Hide()
	m.capsule.SetStatus(statusFromWire(msg.resp.Status))
	m.log.Reconcile()

	// A reply for a conversation the user already left is dropped.
	if !m.session.AdoptConversation(msg.resp.ConversationID) {
		logging.With("chat").Debug("dropped late reply",
			"conversation_id", msg.resp.ConversationID)
		m.refreshViewport()
		return m, nil
	}

	text := msg.resp.Response
	if text == "" {
		text = "Error: Sin respuesta"
	}
	m.log.AppendAssistant(text, msg.resp.SuggestedActions)
	m.refreshViewport()

	// A newly assigned conversation shows up in the sidebar right away.
	return m, m.refreshConversations()
}

// handleLocalReply finishes a simulated round trip.
func (m Model) handleLocalReply(msg localReplyMsg) (Model, tea.Cmd) {
	m.loading = false
	m.typing.Stop()
	m.capsule.Hide()
	m.log.Reconcile()

	if msg.conversationID != 0 && !m.session.AdoptConversation(msg.conversationID) {
		m.refreshViewport()
		return m, nil
	}

	m.log.AppendAssistant(msg.reply.Text, msg.reply.SuggestedActions)
	m.refreshViewport()
	return m, m.refreshConversations()
}

// handleSendFailure reconciles the pending message and appends one
// assistant error entry.
func (m Model) handleSendFailure(text string) (Model, tea.Cmd) {
	m.loading = false
	m.typing.Stop()
	m.capsule.Hide()
	m.log.Reconcile()
	m.log.AppendAssistant(text, nil)
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// CONVERSATION SWITCHING
// =============================================================================

// newChat clears the transcript and active conversation without any
// network call.
func (m Model) newChat() (Model, tea.Cmd) {
	m.session.SetConversation(nil)
	m.log.Clear()
	m.loading = false
	m.typing.Stop()
	m.capsule.Hide()
	if m.sidebar.Visible() {
		m.sidebar.Toggle()
	}
	m.refreshViewport()
	return m, nil
}

// openSelectedConversation loads the sidebar selection, or starts a new
// chat when "Nueva consulta" is selected. A switch replaces the log
// wholesale; an in-flight reply for the old conversation will be dropped
// at adoption time.
func (m Model) openSelectedConversation() (Model, tea.Cmd) {
	selected := m.sidebar.Selected()
	m.sidebar.Toggle()
	if selected == nil {
		return m.newChat()
	}

	m.loading = false
	m.typing.Stop()
	m.capsule.Hide()

	if m.localMode {
		return m, localLoadConversationCmd(m.history, selected.ID)
	}
	return m, loadConversationCmd(m.client, selected.ID)
}

// refreshConversations returns the sidebar-refresh command for the current
// mode, or nil for anonymous remote users.
func (m Model) refreshConversations() tea.Cmd {
	if m.localMode {
		if m.history == nil {
			return nil
		}
		return localConversationsCmd(m.history)
	}
	if user := m.session.User(); user != nil {
		return fetchConversationsCmd(m.client, user.ID)
	}
	return nil
}

// statusFromWire maps a server status tag onto the capsule status. The
// wire uses the same spellings; anything unknown falls back to analyzing.
func statusFromWire(status string) classify.Status {
	switch classify.Status(status) {
	case classify.StatusDocument:
		return classify.StatusDocument
	case classify.StatusRisk:
		return classify.StatusRisk
	default:
		return classify.StatusAnalyzing
	}
}

// userID returns the session user's id for the wire, nil when anonymous.
func (m Model) userID() *int64 {
	user := m.session.User()
	if user == nil {
		return nil
	}
	id := user.ID
	return &id
}
