// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"github.com/mattn/go-runewidth"
)

// TruncateRunes truncates s to at most maxRunes characters, appending "..."
// when something was cut. Safe for UTF-8: it counts runes, not bytes, so
// Spanish accented characters are never split.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates s to at most maxWidth terminal columns, appending
// an ellipsis when something was cut. Uses go-runewidth so double-width
// characters count as two columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of s in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FormatFileSize renders a byte count the way the chat UI shows attachment
// sizes: "842 B", "12.3 KB", "1.8 MB".
func FormatFileSize(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * 1024
	)
	switch {
	case bytes < kb:
		return itoa(bytes) + " B"
	case bytes < mb:
		return formatTenths(bytes, kb) + " KB"
	default:
		return formatTenths(bytes, mb) + " MB"
	}
}

// formatTenths formats bytes/unit with one decimal place, truncating.
func formatTenths(bytes, unit int64) string {
	whole := bytes / unit
	tenth := (bytes % unit) * 10 / unit
	return itoa(whole) + "." + itoa(tenth)
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
