// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Wire-format tag numbers.
const (
	// TagSelfDescribed wraps every encoded message. It marks the
	// payload as CBOR and is a no-op pass-through on decode.
	TagSelfDescribed = 55799

	// TagUnsignedBignum carries the big-endian magnitude of a zero or
	// positive arbitrary-precision integer.
	TagUnsignedBignum = 2

	// TagNegativeBignum carries the big-endian magnitude of the
	// absolute value of a negative arbitrary-precision integer. Plain
	// magnitude, not the RFC 8949 offset form.
	TagNegativeBignum = 3

	// TagUint64LittleEndian is reserved in the wire format but not
	// produced by any encode path. Decoders pass it through as an
	// opaque tagged value.
	TagUint64LittleEndian = 71
)

// encMode is the base CBOR encoder, configured with Core Deterministic
// Encoding (RFC 8949 §4.2) so the same logical message always produces
// identical bytes.
var encMode cbor.EncMode

// decMode is the base CBOR decoder. Interface-typed targets decode
// maps as map[string]any (the protocol only uses string keys), and
// plain integers beyond int64 range come back as *big.Int pointers.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Types implementing encoding.TextMarshaler but not cbor.Marshaler
	// serialize as CBOR text strings.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		BigIntDec:      cbor.BigIntDecodePointer,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// std is the process-wide registry with the standard encoder set. It
// is assembled once here and never mutated afterwards; concurrent use
// is read-only. Callers needing extra encoders build their own
// registry with New and inject it at the call site.
var std = New()

// Encode serializes value as a self-describing wire message using the
// standard encoder set.
func Encode(value any) ([]byte, error) {
	return std.Encode(value)
}

// Decode deserializes one wire message using the standard registry.
func Decode(data []byte) (any, error) {
	return std.Decode(data)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// first data item in data, along with the remaining unconsumed bytes.
func Diagnose(data []byte) (string, []byte, error) {
	return cbor.DiagnoseFirst(data)
}
