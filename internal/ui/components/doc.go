// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides UI components for the iurista TUI.

Each component follows the Bubble Tea pattern: a model struct with Update
and View methods, composed into the page models under internal/ui and the
root application model.

# Components

  - Splash: the animated brand screen shown at startup
  - Welcome: hero text plus the three practice-area quick-action cards
  - Sidebar: conversation history list with status indicators
  - Bubble rendering for user, assistant, and error messages (message.go)
  - StatusCapsule: the "Analizando Normativa" style activity capsule
  - TypingIndicator: animated dots while a reply is in flight
  - AuthPrompt: the sign-in/register modal for anonymous visitors
  - Header and shortcut bar shared across pages
*/
package components
