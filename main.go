// iurista - Terminal client for the IuristaTech legal assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/cli"
	"github.com/iuristatech/iurista-tui/internal/config"
	"github.com/iuristatech/iurista-tui/internal/logging"
	"github.com/iuristatech/iurista-tui/internal/session"
	"github.com/iuristatech/iurista-tui/internal/storage"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	if err := setup(args); err != nil {
		fmt.Fprintln(os.Stderr, "iurista:", err)
		os.Exit(1)
	}
	defer logging.Close()

	switch cmd {
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintHelp()
	default:
		runTUI(args)
	}
}

// setup loads configuration and opens the log file before any front-end
// starts.
func setup(args *cli.ArgParser) error {
	if path := args.Flag("config"); path != "" {
		cfg, err := config.LoadFromPath(path)
		if err != nil {
			return err
		}
		config.SetGlobal(cfg)
	}

	cfg := config.Global()
	if url := args.Flag("api-url"); url != "" {
		cfg.Server.APIURL = url
	}
	if args.BoolFlag("local") {
		cfg.Chat.LocalMode = true
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	return logging.Init(dir, logLevel(cfg.Logging.Level))
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runTUI starts the full-screen interface.
func runTUI(args *cli.ArgParser) {
	cfg := config.Global()

	client := api.NewClientWithConfig(api.ClientConfig{BaseURL: cfg.Server.APIURL})
	sess := session.NewManager()

	store, err := storage.NewSessionStore()
	if err != nil {
		logging.L().Warn("session store unavailable", "error", err)
	}

	// A persisted, unexpired session signs the user back in before the
	// first frame.
	rehydrate(sess, store, client)

	var history *storage.HistoryStore
	if cfg.Chat.LocalMode {
		history, err = storage.OpenHistory(cfg.Chat.HistoryPath)
		if err != nil {
			logging.L().Warn("local history unavailable", "error", err)
		} else {
			defer history.Close()
		}
	}

	app := newApp(cfg, client, sess, store, history)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Config edits repoint the client without a restart.
	watcher, err := config.Watch(func(updated *config.Config) {
		client.SetBaseURL(updated.Server.APIURL)
	})
	if err == nil {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "iurista:", err)
		os.Exit(1)
	}
}

// rehydrate restores the persisted session unless its token has expired.
func rehydrate(sess *session.Manager, store *storage.SessionStore, client *api.Client) {
	if store == nil {
		return
	}
	saved, err := store.Load()
	if err != nil {
		return
	}
	if session.TokenExpired(saved.Token, timeNow()) {
		logging.L().Info("persisted session expired, discarding")
		store.Clear()
		return
	}
	sess.SignIn(saved.User, saved.Token)
	client.SetToken(saved.Token)
}
