// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package identity provides signing identities for outgoing protocol
// messages.
//
// A Signer owns a key pair and produces detached signatures over
// arbitrary byte buffers. The concrete Ed25519Identity supports
// several construction paths for compatibility with existing key
// material:
//
//   - fresh generation from the process CSPRNG
//   - deterministic generation from a 32-byte seed
//   - SLIP-0010 master key derivation from an arbitrary seed buffer
//   - BIP-39 seed phrases (mnemonic plus optional passphrase)
//   - structural reconstruction from an existing raw key pair
//   - deserialization from the historical JSON encodings
//
// Serialization always emits the canonical two-element hex array form;
// the object-shaped JSON encodings are accepted on read only.
package identity
