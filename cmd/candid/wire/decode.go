// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	gocbor "github.com/fxamacker/cbor/v2"
	"github.com/spf13/pflag"

	"github.com/ninegua/candid/cmd/candid/cli"
	"github.com/ninegua/candid/lib/codec"
	"github.com/ninegua/candid/lib/principal"
)

func decodeCommand() *cli.Command {
	var compact bool

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert a wire message on stdin to JSON on stdout",
		Description: `Read one wire-format CBOR message from stdin and write the equivalent
JSON to stdout. The self-describe envelope is stripped, bignums decode
with the wire's plain-magnitude negative convention, and a top-level
canister_id field appears as its principal hex text.

Byte strings are printed as hex strings. Tagged values appear as
{"tag": <number>, "value": <content>} objects.`,
		Usage: "candid wire decode [-c]",
		Examples: []cli.Example{
			{
				Description: "Decode a captured request body",
				Command:     "candid wire decode < request.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flags.BoolVarP(&compact, "compact", "c", false, "single-line output")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("decode takes no positional arguments, got %q", args[0])
			}
			return decodeWire(os.Stdin, os.Stdout, compact)
		},
	}
}

// decodeWire reads one wire message from r and writes JSON to w.
func decodeWire(r io.Reader, w io.Writer, compact bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected a CBOR message on stdin")
	}

	value, err := codec.Decode(data)
	if err != nil {
		return err
	}
	return writeJSON(w, jsonValue(value), compact)
}

// jsonValue recursively converts decoded wire values to
// JSON-compatible types.
func jsonValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, element := range v {
			v[key] = jsonValue(element)
		}
		return v

	case map[any]any:
		result := make(map[string]any, len(v))
		for key, element := range v {
			result[fmt.Sprint(key)] = jsonValue(element)
		}
		return result

	case []any:
		for index, element := range v {
			v[index] = jsonValue(element)
		}
		return v

	case []byte:
		return hex.EncodeToString(v)

	case principal.Principal:
		return v.String()

	case *big.Int:
		return json.RawMessage(v.String())

	case gocbor.Tag:
		return map[string]any{"tag": v.Number, "value": jsonValue(v.Content)}

	default:
		return v
	}
}

// writeJSON encodes value as JSON and writes it with a trailing
// newline. Pretty-printed with 2-space indentation unless compact.
func writeJSON(w io.Writer, value any, compact bool) error {
	var output []byte
	var err error
	if compact {
		output, err = json.Marshal(value)
	} else {
		output, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
