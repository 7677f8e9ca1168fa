// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"bytes"
	"testing"
)

func TestDeriveFromSeedDeterministic(t *testing.T) {
	seed := []byte("an arbitrary-length seed buffer")

	first, err := DeriveFromSeed(seed)
	if err != nil {
		t.Fatalf("DeriveFromSeed: %v", err)
	}
	second, err := DeriveFromSeed(seed)
	if err != nil {
		t.Fatalf("DeriveFromSeed: %v", err)
	}

	firstPublic, _ := first.KeyPair()
	secondPublic, _ := second.KeyPair()
	if !bytes.Equal(firstPublic, secondPublic) {
		t.Error("same seed derived different identities")
	}

	other, err := DeriveFromSeed([]byte("a different seed"))
	if err != nil {
		t.Fatalf("DeriveFromSeed: %v", err)
	}
	if first.PublicKey().Equal(other.PublicKey()) {
		t.Error("different seeds derived the same identity")
	}
}

func TestDeriveFromSeedDiffersFromRawSeed(t *testing.T) {
	// The HMAC master-key step must actually run: deriving from a
	// 32-byte buffer is not the same as using it as the seed directly.
	seed := bytes.Repeat([]byte{0x01}, 32)

	derived, err := DeriveFromSeed(seed)
	if err != nil {
		t.Fatalf("DeriveFromSeed: %v", err)
	}
	direct, err := FromSeed(seed)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if derived.PublicKey().Equal(direct.PublicKey()) {
		t.Error("DeriveFromSeed skipped the HMAC master-key step")
	}
}

func TestFromSeedPhrase(t *testing.T) {
	const phrase = "abandon abandon abandon abandon ability able about above absent absorb abstract absurd"

	first, err := FromSeedPhrase(phrase, "")
	if err != nil {
		t.Fatalf("FromSeedPhrase: %v", err)
	}
	second, err := FromSeedPhrase(phrase, "")
	if err != nil {
		t.Fatalf("FromSeedPhrase: %v", err)
	}
	if !first.PublicKey().Equal(second.PublicKey()) {
		t.Error("same phrase derived different identities")
	}

	// Whitespace normalization: extra spacing does not change the key.
	spaced, err := FromSeedPhrase("  abandon   abandon abandon abandon ability able about above absent absorb abstract absurd ", "")
	if err != nil {
		t.Fatalf("FromSeedPhrase: %v", err)
	}
	if !spaced.PublicKey().Equal(first.PublicKey()) {
		t.Error("whitespace variation changed the derived identity")
	}

	// A passphrase selects a different identity.
	protected, err := FromSeedPhrase(phrase, "trezor")
	if err != nil {
		t.Fatalf("FromSeedPhrase: %v", err)
	}
	if protected.PublicKey().Equal(first.PublicKey()) {
		t.Error("passphrase did not change the derived identity")
	}
}
