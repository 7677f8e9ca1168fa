// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire implements the "candid wire" subcommands for inspecting
// and producing wire-format CBOR messages.
package wire

import "github.com/ninegua/candid/cmd/candid/cli"

// Command returns the "wire" command tree.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "wire",
		Summary: "Inspect and produce wire-format CBOR messages",
		Subcommands: []*cli.Command{
			decodeCommand(),
			diagCommand(),
			encodeCommand(),
		},
	}
}
