// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"
)

func TestNewTheme_StylesInitialized(t *testing.T) {
	theme := NewTheme()

	// A zero-value style renders its input unchanged; initialized styles
	// carry at least one property. Spot-check the load-bearing ones.
	if theme.UserBubble.GetPaddingLeft() == 0 {
		t.Error("UserBubble not initialized")
	}
	if !theme.HeaderTitle.GetBold() {
		t.Error("HeaderTitle should be bold")
	}
	if !theme.CapsuleRisk.GetBold() {
		t.Error("CapsuleRisk should be bold")
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("size = %dx%d", theme.Width, theme.Height)
	}
}

func TestSpinnerDuration(t *testing.T) {
	if got := DotsSpinner.Duration(); got != time.Second/6 {
		t.Errorf("DotsSpinner.Duration() = %v", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
		want    string
	}{
		{"empty", 4, 0, "----"},
		{"half", 4, 50, "##--"},
		{"full", 4, 100, "####"},
		{"clamped above", 4, 150, "####"},
		{"clamped below", 4, -10, "----"},
		{"zero width", 0, 50, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderProgressBar(tc.width, tc.percent); got != tc.want {
				t.Errorf("RenderProgressBar(%d, %v) = %q, want %q", tc.width, tc.percent, got, tc.want)
			}
		})
	}
}

func TestStatusIndicators_ASCII(t *testing.T) {
	all := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
		StatusIndicators.Connected,
		StatusIndicators.Offline,
	}
	for _, s := range all {
		for _, r := range s {
			if r > 127 {
				t.Errorf("indicator %q is not ASCII", s)
			}
		}
		if strings.TrimSpace(s) == "" {
			t.Error("empty indicator")
		}
	}
}
