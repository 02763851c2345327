// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Line-oriented consultation for the iurista CLI.
//
// Handles "iurista ask", which answers a single question on stdout, or
// opens a REPL when no question is given.
//
// Examples:
//   iurista ask "¿Cómo formalizo un contrato laboral?"
//   iurista ask --local "¿Qué visa necesito para nómadas digitales?"
//   iurista ask --login
//   echo "¿Qué es la UGPP?" | iurista ask

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/config"
	"github.com/iuristatech/iurista-tui/internal/engine"
	"github.com/iuristatech/iurista-tui/internal/logging"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the glamour renderer for assistant output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse prints a reply, markdown-formatted only when stdout is a
// terminal so piped output stays clean.
func displayResponse(response string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(response))
	} else {
		fmt.Println(response)
	}
}

// IsStdoutTTY reports whether stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// ASK SESSION
// =============================================================================

// askSession holds the state of one CLI consultation run.
type askSession struct {
	client         *api.Client
	local          bool
	userID         *int64
	conversationID *int64
}

// HandleAsk handles the "ask" command.
func HandleAsk(args *ArgParser) {
	cfg := config.Global()

	clientCfg := api.DefaultConfig()
	clientCfg.BaseURL = args.FlagOrDefault("api-url", cfg.Server.APIURL)
	client := api.NewClientWithConfig(clientCfg)

	s := &askSession{
		client: client,
		local:  args.BoolFlag("local") || cfg.Chat.LocalMode,
	}

	if args.BoolFlag("login") && !s.local {
		if err := s.login(); err != nil {
			fmt.Fprintln(os.Stderr, "No se pudo iniciar sesión:", err)
			os.Exit(1)
		}
	}

	// Single-question mode: question on the command line or piped stdin.
	if question := args.Rest(); question != "" {
		s.ask(question)
		return
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if q := strings.TrimSpace(scanner.Text()); q != "" {
				s.ask(q)
			}
		}
		return
	}

	s.repl()
}

// repl runs the interactive loop with line history.
func (s *askSession) repl() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("IuristaTech · Asistente Legal. Escriba su consulta (\"salir\" termina).")
	for {
		input, err := line.Prompt("iurista> ")
		if err != nil {
			// liner.ErrPromptAborted on ctrl+c, io.EOF on ctrl+d.
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "salir" || input == "exit" || input == "quit" {
			return
		}
		line.AppendHistory(input)
		s.ask(input)
	}
}

// ask answers one question, remembering the conversation id across REPL
// turns so follow-ups stay in context.
func (s *askSession) ask(question string) {
	if s.local {
		reply := engine.Respond(question)
		displayResponse(reply.Text)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := s.client.Chat(ctx, api.ChatRequest{
		UserID:         s.userID,
		ConversationID: s.conversationID,
		Message:        question,
	})
	if err != nil {
		logging.With("cli").Warn("ask failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error de conexión con el servidor.")
		return
	}

	if s.conversationID == nil && resp.ConversationID != 0 {
		id := resp.ConversationID
		s.conversationID = &id
	}
	displayResponse(resp.Response)
}

// login prompts for credentials, reading the password without echo.
func (s *askSession) login() error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Correo electrónico: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	fmt.Print("Contraseña: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := s.client.Login(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		return err
	}

	id := resp.User.ID
	s.userID = &id
	fmt.Println("Sesión iniciada como", resp.User.DisplayName())
	return nil
}
