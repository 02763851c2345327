// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the iurista TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Navy - Primary brand color, headers, user highlights
var Navy = lipgloss.AdaptiveColor{Light: "#1E3A5F", Dark: "#7FA8D9"}

// NavyDeep - Darker navy for backgrounds
var NavyDeep = lipgloss.AdaptiveColor{Light: "#16263D", Dark: "#1B2A42"}

// Gold - Secondary accent, selections, the firm's seal
var Gold = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#E8C05A"}

// GoldDeep - Darker gold for backgrounds
var GoldDeep = lipgloss.AdaptiveColor{Light: "#8B6508", Dark: "#5C4A12"}

// Emerald - Success states, active conversation indicator
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors and risk-detected conversations
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// RoseDeep - Darker rose for backgrounds
var RoseDeep = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#881337"}

// Amber - Warnings, document-request status
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1D27"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#141720"}

// SurfaceBright - Slightly lighter/darker surface for highlights
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#2A2E3D"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2A2E3D"}

// OverlayDim - Dimmer overlay for less prominent elements
var OverlayDim = lipgloss.AdaptiveColor{Light: "#D4D4D4", Dark: "#3D4254"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#D5DBEB"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A0A8BE"}

// TextMuted - Hints, timestamps, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6A7187"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1D27"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Navy tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1D3B63"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#1E3A5F", Dark: "#DCEBFB"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#3B6EA5", Dark: "#3B6EA5"}

// Assistant message bubble - Warm parchment tones
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#FDF8EC", Dark: "#2E2A3A"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#4A3F23", Dark: "#EEE8D8"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#D9C58A", Dark: "#B09A4F"}

// Error reply bubble - Rose tones, used for the connection-failure message
var ErrorBubbleBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#3D1A26"}
var ErrorBubbleFg = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FECACA"}

// =============================================================================
// STATUS INDICATOR COLORS
// =============================================================================

// Conversation status colors, matching the sidebar indicators.
var StatusActiveColor = Emerald
var StatusRiskColor = Rose
var StatusArchivedColor = TextMuted

// Chat status capsule colors.
var CapsuleAnalyzing = Navy
var CapsuleDocument = Amber
var CapsuleRisk = Rose
