// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestArgParserFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		sub  string
		flag map[string]string
		bool map[string]bool
	}{
		{
			name: "long flag with space",
			raw:  []string{"ask", "--api-url", "http://iurista.local"},
			sub:  "ask",
			flag: map[string]string{"api-url": "http://iurista.local"},
		},
		{
			name: "long flag with equals",
			raw:  []string{"ask", "--config=/tmp/iurista.toml"},
			sub:  "ask",
			flag: map[string]string{"config": "/tmp/iurista.toml"},
		},
		{
			name: "boolean flags",
			raw:  []string{"ask", "--local", "--login"},
			sub:  "ask",
			bool: map[string]bool{"local": true, "login": true},
		},
		{
			name: "explicit boolean value",
			raw:  []string{"--local=false"},
			bool: map[string]bool{"local": false},
		},
		{
			name: "no arguments",
			raw:  nil,
			sub:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.raw)
			if p.Subcommand() != tt.sub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.sub)
			}
			for name, want := range tt.flag {
				if got := p.Flag(name); got != want {
					t.Errorf("Flag(%q) = %q, want %q", name, got, want)
				}
			}
			for name, want := range tt.bool {
				if got := p.BoolFlag(name); got != want {
					t.Errorf("BoolFlag(%q) = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestArgParserRest(t *testing.T) {
	p := NewArgParser([]string{"ask", "¿Qué", "es", "la", "UGPP?"})
	if got := p.Rest(); got != "¿Qué es la UGPP?" {
		t.Errorf("Rest() = %q", got)
	}

	p = NewArgParser([]string{"ask"})
	if got := p.Rest(); got != "" {
		t.Errorf("Rest() with no question = %q", got)
	}
}

func TestFlagOrDefault(t *testing.T) {
	p := NewArgParser([]string{"ask"})
	if got := p.FlagOrDefault("api-url", "http://127.0.0.1:5000"); got != "http://127.0.0.1:5000" {
		t.Errorf("FlagOrDefault = %q", got)
	}
}
