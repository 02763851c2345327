// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Server.APIURL != "http://127.0.0.1:5000" {
		t.Errorf("APIURL = %q", cfg.Server.APIURL)
	}
	if cfg.Chat.LocalMode {
		t.Error("local mode should default off")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad url", func(c *Config) { c.Server.APIURL = "not a url" }, "server.api_url"},
		{"timeout too small", func(c *Config) { c.Server.TimeoutSecs = 0 }, "server.timeout_secs"},
		{"timeout too large", func(c *Config) { c.Server.TimeoutSecs = 9999 }, "server.timeout_secs"},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, "ui.theme"},
		{"splash out of range", func(c *Config) { c.UI.SplashMillis = 60000 }, "ui.splash_millis"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q missing field %q", err, tc.wantErr)
			}
		})
	}
}

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	if cfg.Server.APIURL == "" || cfg.UI.Theme == "" || cfg.Logging.Level == "" {
		t.Errorf("defaults not filled: %+v", cfg)
	}
	if cfg.Chat.HistoryPath == "" {
		t.Error("history path default not derived")
	}
}

// =============================================================================
// TOML ROUND TRIP
// =============================================================================

func TestTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	data := `
version = "1.0.0"

[server]
api_url = "https://api.iurista.co"
timeout_secs = 10

[chat]
local_mode = true

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}
	if cfg.Server.APIURL != "https://api.iurista.co" {
		t.Errorf("APIURL = %q", cfg.Server.APIURL)
	}
	if cfg.Server.TimeoutSecs != 10 {
		t.Errorf("TimeoutSecs = %d", cfg.Server.TimeoutSecs)
	}
	if !cfg.Chat.LocalMode {
		t.Error("LocalMode not loaded")
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	// Untouched fields keep defaults.
	if cfg.UI.SplashMillis != 3600 {
		t.Errorf("SplashMillis = %d", cfg.UI.SplashMillis)
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("IURISTA_API_URL", "http://10.0.0.5:5000")
	t.Setenv("IURISTA_LOCAL", "true")
	t.Setenv("IURISTA_THEME", "light")
	t.Setenv("IURISTA_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.APIURL != "http://10.0.0.5:5000" {
		t.Errorf("APIURL = %q", cfg.Server.APIURL)
	}
	if !cfg.Chat.LocalMode {
		t.Error("IURISTA_LOCAL not applied")
	}
	if cfg.UI.Theme != "light" || cfg.Logging.Level != "debug" {
		t.Errorf("theme/level = %q/%q", cfg.UI.Theme, cfg.Logging.Level)
	}
}

// =============================================================================
// GLOBAL SINGLETON
// =============================================================================

// Global(), SetGlobal(), and ReloadGlobal() must tolerate concurrent use.
// Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			_ = Global()
		}()
	}
	wg.Wait()

	if Global() == nil {
		t.Fatal("Global returned nil after concurrent access")
	}
}

// An explicitly installed config must survive later Global() calls; the
// lazy load must not overwrite it.
func TestSetGlobal_PreemptsLazyLoad(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	cfg := Default()
	cfg.Server.APIURL = "http://custom.example:9999"
	SetGlobal(cfg)

	if got := Global().Server.APIURL; got != "http://custom.example:9999" {
		t.Errorf("Global().Server.APIURL = %q, want the SetGlobal value", got)
	}
}
