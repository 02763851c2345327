// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for iurista.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ServerConfig: Backend connection settings
//   - ChatConfig: Local-mode and history settings
//   - UIConfig: Theme, splash, and transcript settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (IURISTA_*)
//   - .env file in the working directory
//   - ~/.iurista/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg := config.Global()
//	client := api.NewClientWithConfig(api.ClientConfig{BaseURL: cfg.Server.APIURL})
//
// A Watcher can reload the global config when the file changes on disk:
//
//	w, _ := config.Watch(func(cfg *config.Config) { /* re-theme */ })
//	defer w.Close()
package config
