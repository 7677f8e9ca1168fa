// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package derkey wraps raw Ed25519 public keys in their DER
// certificate form: the fixed 12-byte RFC 8410 SubjectPublicKeyInfo
// header identifying the Ed25519 algorithm, followed by the 32 raw key
// bytes, 44 bytes total.
//
// Decoding is validated by reconstruction: the trailing 32 bytes are
// re-encoded and compared byte-for-byte against the input, which
// rejects truncated headers and keys of the wrong algorithm wrapped in
// a similar container.
package derkey

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// RawKeySize is the length of a raw Ed25519 public key.
	RawKeySize = 32

	// PrefixSize is the length of the fixed DER header.
	PrefixSize = 12

	// CertificateSize is the total length of a DER-encoded key.
	CertificateSize = PrefixSize + RawKeySize
)

// derPrefix is the DER encoding of an Ed25519 SubjectPublicKeyInfo
// header: SEQUENCE(44) { SEQUENCE(5) { OID 1.3.101.112 }, BIT STRING(33) }.
var derPrefix = []byte{
	0x30, 0x2a, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70, 0x03, 0x21, 0x00,
}

// Errors returned by the constructors.
var (
	ErrInvalidKeyLength         = errors.New("derkey: raw key is not 32 bytes")
	ErrInvalidCertificateLength = errors.New("derkey: DER key is not 44 bytes")
	ErrPrefixMismatch           = errors.New("derkey: DER header does not match the Ed25519 prefix")
)

// PublicKey is a raw Ed25519 public key with deterministic conversion
// to and from the DER certificate form.
type PublicKey struct {
	raw [RawKeySize]byte
}

// FromRaw constructs a PublicKey from exactly 32 raw key bytes. The
// length is validated eagerly so no partially valid value exists.
func FromRaw(raw []byte) (PublicKey, error) {
	if len(raw) != RawKeySize {
		return PublicKey{}, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(raw))
	}
	var key PublicKey
	copy(key.raw[:], raw)
	return key, nil
}

// FromDER constructs a PublicKey from a 44-byte DER-encoded key. The
// trailing 32 bytes are recovered as the candidate raw key, and the
// input must equal the candidate's re-encoding byte-for-byte.
func FromDER(der []byte) (PublicKey, error) {
	if len(der) != CertificateSize {
		return PublicKey{}, fmt.Errorf("%w: got %d bytes", ErrInvalidCertificateLength, len(der))
	}

	key, err := FromRaw(der[PrefixSize:])
	if err != nil {
		return PublicKey{}, err
	}
	if !bytes.Equal(key.DER(), der) {
		return PublicKey{}, ErrPrefixMismatch
	}
	return key, nil
}

// Raw returns a copy of the 32 raw key bytes.
func (k PublicKey) Raw() []byte {
	return bytes.Clone(k.raw[:])
}

// DER returns the 44-byte DER encoding: the fixed prefix followed by
// the raw key. Pure function of the key, always 44 bytes.
func (k PublicKey) DER() []byte {
	der := make([]byte, 0, CertificateSize)
	der = append(der, derPrefix...)
	der = append(der, k.raw[:]...)
	return der
}

// Equal reports whether two keys hold identical raw bytes.
func (k PublicKey) Equal(other PublicKey) bool {
	return k.raw == other.raw
}
