// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec implements the self-describing CBOR wire format for
// canister request and response messages.
//
// Encoding layers a small registry of type-specific rules over a base
// CBOR engine configured with Core Deterministic Encoding (RFC 8949
// §4.2). The standard rules cover the three value types the protocol
// extends CBOR with:
//
//   - principals encode as their raw byte representation
//   - opaque byte buffers encode verbatim as byte strings
//   - arbitrary-precision integers encode under the bignum tags, tag 2
//     for zero and positive values and tag 3 for negative values
//
// Tag 3 carries the plain absolute-value magnitude, not the offset
// form from RFC 8949. The peer encodes negative bignums this way, so
// both directions here follow the same rule.
//
// Every encoded message is wrapped in the CBOR self-describe tag
// (55799), which acts as a format marker. Decoding strips the marker,
// reads exactly one top-level value (trailing bytes are ignored), and
// rewrites a top-level "canister_id" integer field into a
// principal.Principal. All other fields come back exactly as the base
// engine produced them.
package codec
