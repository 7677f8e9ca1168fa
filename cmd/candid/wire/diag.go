// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"io"
	"os"

	"github.com/ninegua/candid/cmd/candid/cli"
	"github.com/ninegua/candid/lib/codec"
)

func diagCommand() *cli.Command {
	return &cli.Command{
		Name:    "diag",
		Summary: "Convert CBOR on stdin to diagnostic notation",
		Description: `Read CBOR from stdin and write RFC 8949 Extended Diagnostic Notation
to stdout. Unlike JSON output, diagnostic notation preserves CBOR type
information: byte strings vs text strings, tagged values, and the
self-describe envelope itself.

Input is processed as a sequence: each item is diagnosed on its own
line, so concatenated messages produce one line per message.`,
		Usage: "candid wire diag",
		Examples: []cli.Example{
			{
				Description: "Inspect the exact wire structure of a message",
				Command:     "candid wire diag < request.cbor",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("diag takes no positional arguments, got %q", args[0])
			}
			return diagWire(os.Stdin, os.Stdout)
		},
	}
}

// diagWire reads CBOR from r and writes diagnostic notation to w.
func diagWire(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR data on stdin")
	}

	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.Diagnose(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}
