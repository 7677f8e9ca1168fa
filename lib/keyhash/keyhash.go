// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package keyhash provides short hex fingerprints for key material.
//
// Fingerprints identify keys in CLI output and logs without printing
// whole keys: the first 8 bytes of the SHA-256 digest, hex encoded.
// They are display identifiers only, never an authentication check.
package keyhash

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintSize is the length in bytes of the truncated digest.
const FingerprintSize = 8

// Fingerprint returns the 16-character hex fingerprint of data.
func Fingerprint(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:FingerprintSize])
}
