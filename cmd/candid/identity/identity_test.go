// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ninegua/candid/lib/identity"
)

func TestLoadIdentityPlainFile(t *testing.T) {
	original, err := identity.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, err := original.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	path := filepath.Join(t.TempDir(), "identity.json")
	if err := writeIdentityFile(path, data); err != nil {
		t.Fatalf("writeIdentityFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("identity file permissions = %o, want 0600", mode)
	}

	loaded, err := loadIdentity(path)
	if err != nil {
		t.Fatalf("loadIdentity: %v", err)
	}
	if !loaded.PublicKey().Equal(original.PublicKey()) {
		t.Error("loaded identity has a different public key")
	}
}

func TestLoadIdentityMissingFile(t *testing.T) {
	if _, err := loadIdentity(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("loadIdentity of missing file succeeded")
	}
}
