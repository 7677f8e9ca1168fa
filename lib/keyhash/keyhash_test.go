// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package keyhash

import "testing"

func TestFingerprint(t *testing.T) {
	first := Fingerprint([]byte("key material"))
	if len(first) != FingerprintSize*2 {
		t.Errorf("fingerprint length = %d, want %d", len(first), FingerprintSize*2)
	}
	if first != Fingerprint([]byte("key material")) {
		t.Error("Fingerprint is not deterministic")
	}
	if first == Fingerprint([]byte("other material")) {
		t.Error("distinct inputs share a fingerprint")
	}
}
