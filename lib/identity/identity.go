// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/ninegua/candid/lib/derkey"
	"github.com/ninegua/candid/lib/principal"
)

// Errors returned by identity construction.
var (
	ErrInvalidSeedLength   = errors.New("identity: seed is not 32 bytes")
	ErrInvalidSecretLength = errors.New("identity: secret key is not 64 bytes")
	ErrDeserialization     = errors.New("identity: unsupported JSON identity shape")
	ErrKeyDerivation       = errors.New("identity: seed derivation failed")
)

// Signer is the capability an identity exposes to the request layer:
// a public key for the envelope and detached signatures over message
// bytes. Implementations must be safe for concurrent read-only use.
type Signer interface {
	PublicKey() derkey.PublicKey
	Sign(message []byte) ([]byte, error)
}

// Ed25519Identity is a Signer backed by an Ed25519 key pair. Key
// material is immutable after construction; all accessors return
// fresh copies.
type Ed25519Identity struct {
	publicKey derkey.PublicKey
	secretKey ed25519.PrivateKey
}

var _ Signer = (*Ed25519Identity)(nil)

// Generate creates an identity with a fresh random key pair.
func Generate() (*Ed25519Identity, error) {
	publicKey, secretKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("identity: generating Ed25519 keypair: %w", err)
	}
	return fromEd25519(publicKey, secretKey)
}

// FromSeed creates an identity deterministically from a 32-byte seed.
// The same seed always yields the same key pair.
func FromSeed(seed []byte) (*Ed25519Identity, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSeedLength, len(seed))
	}
	secretKey := ed25519.NewKeyFromSeed(seed)
	return fromEd25519(secretKey.Public().(ed25519.PublicKey), secretKey)
}

// FromKeyPair reconstructs an identity from an existing raw public key
// (32 bytes) and secret key (64 bytes). The pair is validated
// structurally only; no check that the halves belong together.
func FromKeyPair(publicRaw, secretRaw []byte) (*Ed25519Identity, error) {
	if len(secretRaw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSecretLength, len(secretRaw))
	}
	return fromEd25519(bytes.Clone(publicRaw), bytes.Clone(secretRaw))
}

// fromEd25519 wraps stdlib key material, validating the public key
// length via the DER constructor.
func fromEd25519(publicKey ed25519.PublicKey, secretKey ed25519.PrivateKey) (*Ed25519Identity, error) {
	wrapped, err := derkey.FromRaw(publicKey)
	if err != nil {
		return nil, err
	}
	return &Ed25519Identity{publicKey: wrapped, secretKey: secretKey}, nil
}

// Sign produces a detached Ed25519 signature over message. Signing is
// deterministic: identical inputs yield identical signatures, and no
// identity state is mutated.
func (id *Ed25519Identity) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(id.secretKey, message), nil
}

// Verify reports whether signature is a valid detached signature over
// message under publicKey.
func Verify(publicKey derkey.PublicKey, message, signature []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(publicKey.Raw()), message, signature)
}

// PublicKey returns the identity's DER-wrappable public key.
func (id *Ed25519Identity) PublicKey() derkey.PublicKey {
	return id.publicKey
}

// KeyPair returns fresh copies of the raw public and secret key bytes.
// Mutating the returned slices does not affect the identity.
func (id *Ed25519Identity) KeyPair() (publicRaw, secretRaw []byte) {
	return id.publicKey.Raw(), bytes.Clone(id.secretKey)
}

// Principal returns the self-authenticating principal for this
// identity's public key.
func (id *Ed25519Identity) Principal() principal.Principal {
	return principal.SelfAuthenticating(id.publicKey.DER())
}
