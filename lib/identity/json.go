// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ninegua/candid/lib/derkey"
)

// pkcs8Prefix is the DER encoding of a PKCS#8 Ed25519 private key
// header; the 32-byte seed follows it, 48 bytes total.
var pkcs8Prefix = []byte{
	0x30, 0x2e, 0x02, 0x01, 0x00, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65,
	0x70, 0x04, 0x22, 0x04, 0x20,
}

// ToJSON serializes the identity in the canonical form: a two-element
// array of lowercase hex strings, the DER-encoded public key followed
// by the raw secret key. This is the only shape that round-trips
// byte-for-byte through FromJSON.
func (id *Ed25519Identity) ToJSON() ([]byte, error) {
	pair := [2]string{
		hex.EncodeToString(id.publicKey.DER()),
		hex.EncodeToString(id.secretKey),
	}
	data, err := json.Marshal(pair)
	if err != nil {
		return nil, fmt.Errorf("identity: serializing: %w", err)
	}
	return data, nil
}

// FromJSON deserializes an identity from any of the historical JSON
// encodings, attempting each known shape in a fixed order:
//
//  1. the canonical two-element array of hex strings
//  2. an object with publicKey/secretKey raw-byte-array fields
//  3. the legacy object with _publicKey/_privateKey DER-byte-array
//     fields
//
// Anything else fails with ErrDeserialization.
func FromJSON(data []byte) (*Ed25519Identity, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDeserialization)
	}
	switch trimmed[0] {
	case '[':
		return fromJSONArray(trimmed)
	case '{':
		return fromJSONObject(trimmed)
	default:
		return nil, fmt.Errorf("%w: not a JSON array or object", ErrDeserialization)
	}
}

// fromJSONArray parses the canonical shape: [publicKeyDerHex, secretKeyHex].
func fromJSONArray(data []byte) (*Ed25519Identity, error) {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return nil, fmt.Errorf("%w: array elements must be strings: %w", ErrDeserialization, err)
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("%w: array has %d elements, want 2", ErrDeserialization, len(pair))
	}

	derBytes, err := hex.DecodeString(pair[0])
	if err != nil {
		return nil, fmt.Errorf("%w: public key hex: %w", ErrDeserialization, err)
	}
	secretBytes, err := hex.DecodeString(pair[1])
	if err != nil {
		return nil, fmt.Errorf("%w: secret key hex: %w", ErrDeserialization, err)
	}

	return fromDERAndSecret(derBytes, secretBytes)
}

// jsonObject covers both object shapes; shape selection is by which
// field pair is present.
type jsonObject struct {
	PublicKey        *byteList `json:"publicKey"`
	SecretKey        *byteList `json:"secretKey"`
	LegacyPublicKey  *byteList `json:"_publicKey"`
	LegacyPrivateKey *byteList `json:"_privateKey"`
}

func fromJSONObject(data []byte) (*Ed25519Identity, error) {
	var object jsonObject
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	switch {
	case object.PublicKey != nil && object.SecretKey != nil:
		identity, err := FromKeyPair(*object.PublicKey, *object.SecretKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
		}
		return identity, nil

	case object.LegacyPublicKey != nil && object.LegacyPrivateKey != nil:
		seed, err := seedFromPKCS8(*object.LegacyPrivateKey)
		if err != nil {
			return nil, err
		}
		identity, err := fromDERAndSecret(*object.LegacyPublicKey, ed25519.NewKeyFromSeed(seed))
		if err != nil {
			return nil, err
		}
		return identity, nil

	default:
		return nil, fmt.Errorf("%w: object is missing key fields", ErrDeserialization)
	}
}

// fromDERAndSecret builds an identity from a DER public key and a raw
// 64-byte secret key, mapping validation failures to ErrDeserialization.
func fromDERAndSecret(derBytes, secretBytes []byte) (*Ed25519Identity, error) {
	publicKey, err := fromDERBytes(derBytes)
	if err != nil {
		return nil, err
	}
	if len(secretBytes) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: secret key has %d bytes, want %d",
			ErrDeserialization, len(secretBytes), ed25519.PrivateKeySize)
	}
	return FromKeyPair(publicKey, secretBytes)
}

// fromDERBytes unwraps a DER public key, mapping failures to
// ErrDeserialization so callers see one error kind for malformed input.
func fromDERBytes(derBytes []byte) ([]byte, error) {
	key, err := derkey.FromDER(derBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return key.Raw(), nil
}

// seedFromPKCS8 extracts the 32-byte Ed25519 seed from a PKCS#8
// private key DER blob (fixed 16-byte header plus the seed).
func seedFromPKCS8(der []byte) ([]byte, error) {
	if len(der) != len(pkcs8Prefix)+ed25519.SeedSize {
		return nil, fmt.Errorf("%w: private key DER has %d bytes, want %d",
			ErrDeserialization, len(der), len(pkcs8Prefix)+ed25519.SeedSize)
	}
	if !bytes.Equal(der[:len(pkcs8Prefix)], pkcs8Prefix) {
		return nil, fmt.Errorf("%w: private key DER header mismatch", ErrDeserialization)
	}
	return der[len(pkcs8Prefix):], nil
}

// byteList decodes a JSON array of integers in [0, 255] into bytes.
// The historical object encodings store key material this way rather
// than as base64 strings.
type byteList []byte

func (b *byteList) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("byte array: %w", err)
	}
	out := make([]byte, len(values))
	for index, value := range values {
		if value < 0 || value > 255 {
			return fmt.Errorf("byte array element %d out of range: %d", index, value)
		}
		out[index] = byte(value)
	}
	*b = out
	return nil
}
