// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/ninegua/candid/cmd/candid/cli"
	"github.com/ninegua/candid/lib/codec"
)

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:    "encode",
		Summary: "Convert JSON on stdin to a wire message on stdout",
		Description: `Read a JSON value from stdin and write the self-describing wire CBOR
encoding to stdout. Integer JSON numbers encode as arbitrary-precision
integers under the bignum tags; other numbers encode as floats.`,
		Usage: "candid wire encode",
		Examples: []cli.Example{
			{
				Description: "Build a message and inspect its wire structure",
				Command:     "echo '{\"canister_id\": 42}' | candid wire encode | candid wire diag",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("encode takes no positional arguments, got %q", args[0])
			}
			return encodeWire(os.Stdin, os.Stdout)
		},
	}
}

// encodeWire reads one JSON value from r and writes the wire encoding
// to w.
func encodeWire(r io.Reader, w io.Writer) error {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	data, err := codec.Encode(wireValue(value))
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// wireValue converts JSON-decoded values to their wire-level types:
// integer numbers become big.Int so they take the bignum encoding.
func wireValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, element := range v {
			v[key] = wireValue(element)
		}
		return v

	case []any:
		for index, element := range v {
			v[index] = wireValue(element)
		}
		return v

	case json.Number:
		if number, ok := new(big.Int).SetString(v.String(), 10); ok {
			return number
		}
		float, err := v.Float64()
		if err != nil {
			// Unreachable for valid JSON; keep the literal as text.
			return v.String()
		}
		return float

	default:
		return value
	}
}
