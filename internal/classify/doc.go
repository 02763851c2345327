// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify maps a raw user utterance to a topic category and a
// processing-status tag using fixed Spanish keyword lists.
//
// Both classifications are pure first-match-wins substring scans over the
// lowercased input: no scoring, no stemming, no diacritic folding. Category
// and status are independent: the same message can be laboral/document.
// Risk and out-of-scope rules deliberately pre-empt topical routing.
package classify
