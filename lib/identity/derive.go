// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// masterKeyDomain is the SLIP-0010 HMAC key for the Ed25519 curve.
var masterKeyDomain = []byte("ed25519 seed")

const (
	// mnemonicSaltPrefix and mnemonicRounds are the BIP-39 PBKDF2
	// parameters for turning a seed phrase into a 64-byte seed.
	mnemonicSaltPrefix = "mnemonic"
	mnemonicRounds     = 2048
	mnemonicSeedSize   = 64
)

// DeriveFromSeed derives an identity from an arbitrary seed buffer
// using the SLIP-0010 master key construction: HMAC-SHA-512 keyed with
// "ed25519 seed" over the seed, with the first 32 bytes of the MAC
// used as the Ed25519 seed. Pure function of the input.
func DeriveFromSeed(seed []byte) (*Ed25519Identity, error) {
	mac := hmac.New(sha512.New, masterKeyDomain)
	if _, err := mac.Write(seed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	return FromSeed(mac.Sum(nil)[:ed25519.SeedSize])
}

// FromSeedPhrase derives an identity from a BIP-39 style seed phrase.
// The phrase is whitespace-normalized and stretched with
// PBKDF2-SHA-512 (2048 rounds, salt "mnemonic" plus the passphrase)
// into a 64-byte seed, which then goes through DeriveFromSeed. Pass an
// empty passphrase for the common unprotected-phrase case.
func FromSeedPhrase(phrase, passphrase string) (*Ed25519Identity, error) {
	normalized := strings.Join(strings.Fields(phrase), " ")
	seed := pbkdf2.Key(
		[]byte(normalized),
		[]byte(mnemonicSaltPrefix+passphrase),
		mnemonicRounds,
		mnemonicSeedSize,
		sha512.New,
	)
	return DeriveFromSeed(seed)
}
