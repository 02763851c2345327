// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// The state directory also holds the session token, so it must not be
// group- or world-readable.
func TestInit_PrivateStateDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	dir := filepath.Join(t.TempDir(), "iurista-home")
	if err := Init(dir, 0); err != nil {
		t.Fatal(err)
	}
	defer Close()

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("state dir mode = %o, want 700", perm)
	}

	L().Info("prueba")
	if _, err := os.Stat(filepath.Join(dir, LogFileName)); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
