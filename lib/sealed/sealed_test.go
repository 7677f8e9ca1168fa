// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealUnsealRoundTrip(t *testing.T) {
	plaintext := []byte(`["deadbeef","cafebabe"]`)

	ciphertext, err := Seal(plaintext, "correct horse")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains(ciphertext, plaintext) {
		t.Fatal("ciphertext contains the plaintext")
	}

	recovered, err := Unseal(ciphertext, "correct horse")
	if err != nil {
		t.Fatalf("Unseal: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("Unseal = %q, want %q", recovered, plaintext)
	}
}

func TestUnsealWrongPassphrase(t *testing.T) {
	ciphertext, err := Seal([]byte("secret"), "right")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Unseal(ciphertext, "wrong"); err == nil {
		t.Error("Unseal with wrong passphrase succeeded")
	}
}

func TestEmptyPassphrase(t *testing.T) {
	if _, err := Seal([]byte("x"), ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Errorf("Seal: err = %v, want ErrEmptyPassphrase", err)
	}
	if _, err := Unseal([]byte("x"), ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Errorf("Unseal: err = %v, want ErrEmptyPassphrase", err)
	}
}

func TestSealEmptyPlaintext(t *testing.T) {
	ciphertext, err := Seal(nil, "pass")
	if err != nil {
		t.Fatalf("Seal(nil): %v", err)
	}
	recovered, err := Unseal(ciphertext, "pass")
	if err != nil {
		t.Fatalf("Unseal: %v", err)
	}
	if len(recovered) != 0 {
		t.Errorf("Unseal = %x, want empty", recovered)
	}
}
