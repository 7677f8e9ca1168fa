// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/ninegua/candid/lib/principal"
)

// ErrNoEncoder is returned when a value has no matching registered
// encoder and the base engine cannot represent its type either.
var ErrNoEncoder = errors.New("codec: no encoder for value type")

// ErrUnsupportedMapKey is returned when a map key's encoded form
// cannot itself serve as a Go map key, such as a bignum whose wire
// form is a tagged byte string.
var ErrUnsupportedMapKey = errors.New("codec: unsupported map key type")

// Encoder is one type-specific encoding rule. Match is a structural
// predicate (type identity only, side-effect free, never fails);
// Encode maps the value to something the base engine can serialize.
type Encoder struct {
	Name     string
	Priority int
	Match    func(value any) bool
	Encode   func(value any) (any, error)
}

// Registry is an ordered set of encoding rules layered over the base
// CBOR engine. Rule selection is deterministic: the matching encoder
// with the lowest priority number wins, and among equal priorities the
// most recently registered encoder wins. The base engine is the
// fallback for values no rule matches.
//
// A registry is assembled once at startup and must not be mutated
// afterwards; concurrent Encode and Decode calls are read-only.
type Registry struct {
	encoders []Encoder
}

// New returns a registry loaded with the standard protocol encoders:
// principal (priority 0), opaque buffer (priority 1), and
// arbitrary-precision integer (priority 1).
func New() *Registry {
	registry := &Registry{}
	registry.Register(Encoder{
		Name:     "principal",
		Priority: 0,
		Match:    matchPrincipal,
		Encode:   encodePrincipal,
	})
	registry.Register(Encoder{
		Name:     "buffer",
		Priority: 1,
		Match:    matchBuffer,
		Encode:   encodeBuffer,
	})
	registry.Register(Encoder{
		Name:     "bignum",
		Priority: 1,
		Match:    matchBigInt,
		Encode:   encodeBigInt,
	})
	return registry
}

// Register appends an encoding rule. Call only during startup
// configuration, before the registry is shared across goroutines.
func (r *Registry) Register(encoder Encoder) {
	r.encoders = append(r.encoders, encoder)
}

// Encode serializes value as a wire message: the value tree is
// transformed by the registry rules, serialized with the base engine,
// and wrapped in the self-describe tag.
func (r *Registry) Encode(value any) ([]byte, error) {
	node, err := r.transform(value)
	if err != nil {
		return nil, err
	}
	body, err := encMode.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("codec: encoding wire message: %w", err)
	}
	return encMode.Marshal(cbor.RawTag{Number: TagSelfDescribed, Content: body})
}

// lookup returns the winning encoder for value, or nil when no rule
// matches. Scanning the registration list in order with a <= priority
// comparison implements the selection contract: lowest priority wins,
// later registration wins ties.
func (r *Registry) lookup(value any) *Encoder {
	var best *Encoder
	for index := range r.encoders {
		encoder := &r.encoders[index]
		if !encoder.Match(value) {
			continue
		}
		if best == nil || encoder.Priority <= best.Priority {
			best = encoder
		}
	}
	return best
}

// transform rewrites a value tree into base-engine terms, applying the
// winning encoder at each node. Encoder output is terminal; rules are
// not re-applied to it. Generic maps and slices recurse, keys
// included; everything else (integers, strings, structs with cbor
// tags) passes through to the base engine untouched.
func (r *Registry) transform(value any) (any, error) {
	if encoder := r.lookup(value); encoder != nil {
		encoded, err := encoder.Encode(value)
		if err != nil {
			return nil, fmt.Errorf("codec: %s encoder: %w", encoder.Name, err)
		}
		return encoded, nil
	}

	switch v := value.(type) {
	case map[string]any:
		transformed := make(map[string]any, len(v))
		for key, element := range v {
			node, err := r.transform(element)
			if err != nil {
				return nil, err
			}
			transformed[key] = node
		}
		return transformed, nil

	case map[any]any:
		transformed := make(map[any]any, len(v))
		for key, element := range v {
			encodedKey, err := r.transform(key)
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			if !hashableKey(encodedKey) {
				return nil, fmt.Errorf("%w: %T", ErrUnsupportedMapKey, key)
			}
			node, err := r.transform(element)
			if err != nil {
				return nil, err
			}
			transformed[encodedKey] = node
		}
		return transformed, nil

	case []any:
		transformed := make([]any, len(v))
		for index, element := range v {
			node, err := r.transform(element)
			if err != nil {
				return nil, err
			}
			transformed[index] = node
		}
		return transformed, nil
	}

	if !baseEncodable(value) {
		return nil, fmt.Errorf("%w: %T", ErrNoEncoder, value)
	}
	return value, nil
}

// hashableKey reports whether a transformed key can be stored in the
// rebuilt map. Encoder output such as a byte slice or a raw tag is
// not.
func hashableKey(value any) bool {
	if value == nil {
		return true
	}
	return reflect.TypeOf(value).Comparable()
}

// baseEncodable reports whether the base engine can represent a value
// of this type at all. Kinds with no CBOR representation are rejected
// up front so encoding fails with ErrNoEncoder instead of a generic
// engine error.
func baseEncodable(value any) bool {
	if value == nil {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return false
	}
	return true
}

func matchPrincipal(value any) bool {
	switch value.(type) {
	case principal.Principal, *principal.Principal:
		return true
	}
	return false
}

// encodePrincipal emits the principal's raw byte representation as a
// CBOR byte string.
func encodePrincipal(value any) (any, error) {
	switch v := value.(type) {
	case principal.Principal:
		return v.Bytes(), nil
	case *principal.Principal:
		return v.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNoEncoder, value)
}

func matchBuffer(value any) bool {
	_, ok := value.([]byte)
	return ok
}

// encodeBuffer emits the buffer contents verbatim as a CBOR byte string.
func encodeBuffer(value any) (any, error) {
	return value, nil
}

func matchBigInt(value any) bool {
	switch value.(type) {
	case big.Int, *big.Int:
		return true
	}
	return false
}

// encodeBigInt emits the bignum tag form: tag 2 wrapping the
// big-endian magnitude for zero and positive values, tag 3 wrapping
// the absolute value's magnitude for negative values.
func encodeBigInt(value any) (any, error) {
	var number *big.Int
	switch v := value.(type) {
	case big.Int:
		number = &v
	case *big.Int:
		number = v
	default:
		return nil, fmt.Errorf("%w: %T", ErrNoEncoder, value)
	}

	tag := uint64(TagUnsignedBignum)
	if number.Sign() < 0 {
		tag = TagNegativeBignum
	}
	magnitude, err := encMode.Marshal(number.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encoding magnitude: %w", err)
	}
	return cbor.RawTag{Number: tag, Content: magnitude}, nil
}
