// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed provides passphrase encryption for identity files at
// rest. It wraps filippo.io/age with scrypt recipients for the one
// operation pair this library needs: seal an identity's JSON encoding
// before it touches disk, and unseal it on load.
//
// Ciphertext is the raw binary age format; callers decide where it is
// stored. Secret key material inside the plaintext is the caller's to
// zero when done.
package sealed
