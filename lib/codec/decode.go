// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/ninegua/candid/lib/principal"
)

// Decode deserializes exactly one wire message from data. Trailing
// bytes after the first top-level value are ignored. The self-describe
// tag is stripped wherever it appears, bignum tags are read with the
// wire's plain-magnitude convention, and a top-level "canister_id"
// integer field is rewritten into a principal. Other tags (including
// the reserved tag 71) pass through as opaque cbor.Tag values, and
// untagged fields come back exactly as the base engine produced them:
// a plain negative integer beyond int64 range decodes to its own
// value, never shifted by the bignum adjustment.
func (r *Registry) Decode(data []byte) (any, error) {
	decoder := decMode.NewDecoder(bytes.NewReader(data))
	var root wireNode
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("codec: decoding wire message: %w", err)
	}

	if err := rewriteCanisterID(root.value); err != nil {
		return nil, err
	}
	return root.value, nil
}

// CBOR major types (RFC 8949 §3), shifted out of a data item's initial
// byte.
const (
	majorArray = 4
	majorMap   = 5
	majorTag   = 6
)

// wireNode decodes one data item with the wire conventions applied at
// the tag boundary. The base engine hands UnmarshalCBOR the raw item
// bytes before its own bignum handling runs, which is what lets tag 3
// carry a plain magnitude here while untagged integers keep their
// RFC 8949 meaning.
type wireNode struct {
	value any
}

func (n *wireNode) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("codec: empty data item")
	}

	switch data[0] >> 5 {
	case majorTag:
		number, content, err := splitTagHead(data)
		if err != nil {
			return err
		}
		switch number {
		case TagUnsignedBignum, TagNegativeBignum:
			var magnitude []byte
			if err := decMode.Unmarshal(content, &magnitude); err != nil {
				return err
			}
			value := new(big.Int).SetBytes(magnitude)
			if number == TagNegativeBignum {
				value.Neg(value)
			}
			n.value = value

		case TagSelfDescribed:
			var inner wireNode
			if err := decMode.Unmarshal(content, &inner); err != nil {
				return err
			}
			n.value = inner.value

		default:
			var inner wireNode
			if err := decMode.Unmarshal(content, &inner); err != nil {
				return err
			}
			n.value = cbor.Tag{Number: number, Content: inner.value}
		}

	case majorMap:
		var entries map[string]wireNode
		if err := decMode.Unmarshal(data, &entries); err != nil {
			return err
		}
		message := make(map[string]any, len(entries))
		for key, entry := range entries {
			message[key] = entry.value
		}
		n.value = message

	case majorArray:
		var items []wireNode
		if err := decMode.Unmarshal(data, &items); err != nil {
			return err
		}
		list := make([]any, len(items))
		for index, item := range items {
			list[index] = item.value
		}
		n.value = list

	default:
		return decMode.Unmarshal(data, &n.value)
	}
	return nil
}

// splitTagHead splits a tag data item into its tag number and content
// bytes. The engine checks well-formedness before handing the item
// over, so the head cannot be truncated.
func splitTagHead(data []byte) (uint64, []byte, error) {
	const (
		oneByteArgument   = 24
		twoByteArgument   = 25
		fourByteArgument  = 26
		eightByteArgument = 27
	)
	switch info := data[0] & 0x1f; {
	case info < oneByteArgument:
		return uint64(info), data[1:], nil
	case info == oneByteArgument:
		return uint64(data[1]), data[2:], nil
	case info == twoByteArgument:
		return uint64(binary.BigEndian.Uint16(data[1:3])), data[3:], nil
	case info == fourByteArgument:
		return uint64(binary.BigEndian.Uint32(data[1:5])), data[5:], nil
	case info == eightByteArgument:
		return binary.BigEndian.Uint64(data[1:9]), data[9:], nil
	default:
		return 0, nil, fmt.Errorf("codec: malformed tag head 0x%02x", data[0])
	}
}

// rewriteCanisterID replaces a top-level "canister_id" field holding
// an integer-like value with the principal whose text form is that
// value in hex. The rewrite is not recursive and leaves the field
// untouched when the decoded value is not a string-keyed map, the
// field is absent, or its value is not integer-like.
func rewriteCanisterID(value any) error {
	message, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := message["canister_id"]
	if !ok {
		return nil
	}
	text, ok := hexFromInteger(raw)
	if !ok {
		return nil
	}

	id, err := principal.FromText(text)
	if err != nil {
		return fmt.Errorf("codec: rewriting canister_id: %w", err)
	}
	message["canister_id"] = id
	return nil
}

// hexFromInteger renders an integer-like decoded value as lowercase
// hex text. The base engine produces uint64 or int64 for plain CBOR
// integers and *big.Int for bignum tags.
func hexFromInteger(value any) (string, bool) {
	switch v := value.(type) {
	case uint64:
		return fmt.Sprintf("%x", v), true
	case int64:
		return fmt.Sprintf("%x", v), true
	case *big.Int:
		return v.Text(16), true
	case big.Int:
		return v.Text(16), true
	default:
		return "", false
	}
}
