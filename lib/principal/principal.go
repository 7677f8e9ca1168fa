// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MaxLength is the maximum length in bytes of a principal identifier.
// Self-authenticating principals are 29 bytes (SHA-224 digest plus the
// suffix byte); opaque canister identifiers are shorter.
const MaxLength = 29

// selfAuthenticatingSuffix marks a principal derived from a public key.
const selfAuthenticatingSuffix = 0x02

// Principal is an opaque identifier for a protocol participant. The
// zero value is the anonymous empty principal.
type Principal struct {
	raw []byte
}

// FromBytes constructs a Principal from its raw byte representation.
// The input is copied; the caller keeps ownership of b.
func FromBytes(b []byte) Principal {
	return Principal{raw: bytes.Clone(b)}
}

// FromText parses the hex textual form of a principal. Odd-length
// input is padded with a leading zero nibble, so "2a" and "02a" parse
// to the same principal as the integer 0x2a rendered in hex.
func FromText(text string) (Principal, error) {
	if len(text)%2 == 1 {
		text = "0" + text
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		return Principal{}, fmt.Errorf("principal: parsing text %q: %w", text, err)
	}
	return Principal{raw: raw}, nil
}

// SelfAuthenticating derives the principal that a public key
// authenticates as: SHA-224 of the DER-encoded key followed by the
// self-authenticating suffix byte.
func SelfAuthenticating(derKey []byte) Principal {
	digest := sha256.Sum224(derKey)
	raw := make([]byte, 0, sha256.Size224+1)
	raw = append(raw, digest[:]...)
	raw = append(raw, selfAuthenticatingSuffix)
	return Principal{raw: raw}
}

// Bytes returns a copy of the raw byte representation.
func (p Principal) Bytes() []byte {
	return bytes.Clone(p.raw)
}

// String returns the lowercase hex textual form, satisfying
// fmt.Stringer.
func (p Principal) String() string {
	return hex.EncodeToString(p.raw)
}

// Equal reports whether two principals have identical raw bytes.
func (p Principal) Equal(other Principal) bool {
	return bytes.Equal(p.raw, other.raw)
}

// IsZero reports whether this is the empty (anonymous) principal.
func (p Principal) IsZero() bool {
	return len(p.raw) == 0
}

// MarshalCBOR implements cbor.Marshaler, emitting the raw byte
// representation as a CBOR byte string. Principals embedded in struct
// fields take this path and end up on the same wire form the codec
// produces for principals in maps and slices.
func (p Principal) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.raw)
}

// UnmarshalCBOR implements cbor.Unmarshaler from a CBOR byte string.
func (p *Principal) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("principal: decoding byte string: %w", err)
	}
	p.raw = raw
	return nil
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the hex form.
func (p *Principal) UnmarshalText(text []byte) error {
	parsed, err := FromText(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
