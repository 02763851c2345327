// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the iurista TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderBrand    lipgloss.Style

	// ==========================================================================
	// SPLASH AND LANDING STYLES
	// ==========================================================================

	SplashBox     lipgloss.Style
	SplashSeal    lipgloss.Style
	SplashTagline lipgloss.Style
	LandingBox    lipgloss.Style
	LandingTitle  lipgloss.Style
	LandingButton lipgloss.Style
	AreaCard      lipgloss.Style
	AreaCardTitle lipgloss.Style
	AreaCardDesc  lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorBubble     lipgloss.Style
	PendingMark     lipgloss.Style
	MessageMeta     lipgloss.Style
	ActionChip      lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	AttachmentChip   lipgloss.Style
	AttachmentError  lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND CAPSULE STYLES
	// ==========================================================================

	StatusBar       lipgloss.Style
	CapsuleAnalyze  lipgloss.Style
	CapsuleDocument lipgloss.Style
	CapsuleRisk     lipgloss.Style
	ShortcutKey     lipgloss.Style
	ShortcutDesc    lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar             lipgloss.Style
	SidebarTitle        lipgloss.Style
	SidebarItem         lipgloss.Style
	SidebarItemSelected lipgloss.Style
	SidebarMeta         lipgloss.Style
	StatusDotActive     lipgloss.Style
	StatusDotRisk       lipgloss.Style
	StatusDotArchived   lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// AUTH MODAL STYLES
	// ==========================================================================

	ModalBox          lipgloss.Style
	ModalTitle        lipgloss.Style
	ModalLabel        lipgloss.Style
	ModalError        lipgloss.Style
	ModalButton       lipgloss.Style
	ModalButtonActive lipgloss.Style

	// ==========================================================================
	// ADMIN DASHBOARD STYLES
	// ==========================================================================

	AdminTab         lipgloss.Style
	AdminTabActive   lipgloss.Style
	StatCard         lipgloss.Style
	StatValue        lipgloss.Style
	StatLabel        lipgloss.Style
	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style

	// ==========================================================================
	// ACCESSIBILITY: Status indicator styles
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Navy).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Gold).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Navy)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	// Splash and landing
	t.SplashBox = lipgloss.NewStyle().
		Align(lipgloss.Center).
		Padding(2, 4)

	t.SplashSeal = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	t.SplashTagline = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.LandingBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Navy).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.LandingTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Navy)

	t.LandingButton = lipgloss.NewStyle().
		Background(Gold).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 3)

	t.AreaCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2).
		Width(28)

	t.AreaCardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Navy)

	t.AreaCardDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(ErrorBubbleFg).
		Background(ErrorBubbleBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		BorderLeft(true).
		PaddingLeft(2).
		MarginRight(4)

	t.PendingMark = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.MessageMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ActionChip = lipgloss.NewStyle().
		Foreground(Navy).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.AttachmentChip = lipgloss.NewStyle().
		Foreground(Navy).
		Background(SurfaceBright).
		Padding(0, 1)

	t.AttachmentError = lipgloss.NewStyle().
		Foreground(Rose)

	// Status bar and capsule
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.CapsuleAnalyze = lipgloss.NewStyle().
		Foreground(CapsuleAnalyzing).
		Bold(true)

	t.CapsuleDocument = lipgloss.NewStyle().
		Foreground(CapsuleDocument).
		Bold(true)

	t.CapsuleRisk = lipgloss.NewStyle().
		Foreground(CapsuleRisk).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Navy)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.SidebarItemSelected = lipgloss.NewStyle().
		Background(Navy).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.SidebarMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusDotActive = lipgloss.NewStyle().Foreground(StatusActiveColor)
	t.StatusDotRisk = lipgloss.NewStyle().Foreground(StatusRiskColor)
	t.StatusDotArchived = lipgloss.NewStyle().Foreground(StatusArchivedColor)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(Gold)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Auth modal
	t.ModalBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Navy).
		Padding(1, 3)

	t.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Navy)

	t.ModalLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ModalError = lipgloss.NewStyle().
		Foreground(Rose)

	t.ModalButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)

	t.ModalButtonActive = lipgloss.NewStyle().
		Background(Gold).
		Foreground(TextInverse).
		Bold(true).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Gold).
		Padding(0, 2)

	// Admin dashboard
	t.AdminTab = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.AdminTabActive = lipgloss.NewStyle().
		Foreground(Navy).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Gold).
		Padding(0, 2)

	t.StatCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2).
		Width(22).
		Align(lipgloss.Center)

	t.StatValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	t.StatLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Navy).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableRowSelected = lipgloss.NewStyle().
		Background(Navy).
		Foreground(TextInverse)

	// Accessibility indicators
	t.SuccessStyle = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.WarningStyle = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	t.InfoStyle = lipgloss.NewStyle().Foreground(Navy)
}

// SetSize records the terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
