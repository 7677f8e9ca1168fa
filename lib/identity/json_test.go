// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestJSONArrayRoundTrip(t *testing.T) {
	original := testIdentity(t)

	data, err := original.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	restored, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	restoredData, err := restored.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON after restore: %v", err)
	}
	if !bytes.Equal(data, restoredData) {
		t.Errorf("array shape does not round-trip:\n %s\n %s", data, restoredData)
	}

	originalPublic, originalSecret := original.KeyPair()
	restoredPublic, restoredSecret := restored.KeyPair()
	if !bytes.Equal(originalPublic, restoredPublic) || !bytes.Equal(originalSecret, restoredSecret) {
		t.Error("restored identity has different key material")
	}
}

func TestToJSONShape(t *testing.T) {
	id := testIdentity(t)

	data, err := id.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		t.Fatalf("output is not a string array: %v", err)
	}
	if len(pair) != 2 {
		t.Fatalf("output has %d elements, want 2", len(pair))
	}
	if want := hex.EncodeToString(id.PublicKey().DER()); pair[0] != want {
		t.Errorf("element 0 = %q, want DER public key hex %q", pair[0], want)
	}
	_, secretRaw := id.KeyPair()
	if want := hex.EncodeToString(secretRaw); pair[1] != want {
		t.Errorf("element 1 = %q, want secret key hex %q", pair[1], want)
	}
}

func TestFromJSONModernObject(t *testing.T) {
	original := testIdentity(t)
	publicRaw, secretRaw := original.KeyPair()

	data, err := json.Marshal(map[string]any{
		"publicKey": toIntArray(publicRaw),
		"secretKey": toIntArray(secretRaw),
	})
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	restored, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !restored.PublicKey().Equal(original.PublicKey()) {
		t.Error("modern object shape restored a different public key")
	}
}

func TestFromJSONLegacyObject(t *testing.T) {
	seed := bytes.Repeat([]byte{0x13}, ed25519.SeedSize)
	original, err := FromSeed(seed)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}

	privateDER := append(bytes.Clone(pkcs8Prefix), seed...)
	data, err := json.Marshal(map[string]any{
		"_publicKey":  toIntArray(original.PublicKey().DER()),
		"_privateKey": toIntArray(privateDER),
	})
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	restored, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !restored.PublicKey().Equal(original.PublicKey()) {
		t.Error("legacy object shape restored a different public key")
	}

	// The restored identity must sign identically to the original.
	message := []byte("legacy probe")
	originalSig, _ := original.Sign(message)
	restoredSig, _ := restored.Sign(message)
	if !bytes.Equal(originalSig, restoredSig) {
		t.Error("legacy restore produced a different signing key")
	}
}

func TestFromJSONRejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty object", `{}`},
		{"not JSON", `not json`},
		{"empty input", ``},
		{"number", `42`},
		{"array of numbers", `[1, 2]`},
		{"one-element array", `["aa"]`},
		{"three-element array", `["aa", "bb", "cc"]`},
		{"bad hex", `["zz", "zz"]`},
		{"object with half a pair", `{"publicKey": [1, 2, 3]}`},
		{"mixed field pairs", `{"publicKey": [1], "_privateKey": [2]}`},
		{"out-of-range byte", `{"publicKey": [300], "secretKey": [1]}`},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := FromJSON([]byte(testCase.input)); !errors.Is(err, ErrDeserialization) {
				t.Errorf("FromJSON(%q): err = %v, want ErrDeserialization", testCase.input, err)
			}
		})
	}
}

func TestFromJSONArrayWithBadKeySizes(t *testing.T) {
	// Hex decodes fine but the DER key is the wrong length.
	input := fmt.Sprintf(`[%q, %q]`, "aabb", hex.EncodeToString(make([]byte, 64)))
	if _, err := FromJSON([]byte(input)); !errors.Is(err, ErrDeserialization) {
		t.Errorf("short DER key: err = %v, want ErrDeserialization", err)
	}

	id := testIdentity(t)
	input = fmt.Sprintf(`[%q, %q]`, hex.EncodeToString(id.PublicKey().DER()), "aabb")
	if _, err := FromJSON([]byte(input)); !errors.Is(err, ErrDeserialization) {
		t.Errorf("short secret key: err = %v, want ErrDeserialization", err)
	}
}

func toIntArray(b []byte) []int {
	out := make([]int, len(b))
	for index, value := range b {
		out[index] = int(value)
	}
	return out
}
