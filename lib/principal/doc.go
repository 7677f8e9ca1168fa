// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package principal provides the opaque identifier type for protocol
// participants (canisters and users).
//
// On the wire a principal is a raw byte string; the textual form used
// by this library is lowercase hex. The full protocol-level textual
// encoding (checksummed base32 grouping) belongs to the transport
// layer and is out of scope here: the codec only needs the byte and
// hex-text round-trip.
//
// Principal implements encoding.TextMarshaler and TextUnmarshaler so
// it serializes as a text string in JSON and in CBOR struct fields,
// while the wire codec encodes it as a raw byte string.
package principal
