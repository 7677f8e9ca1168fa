// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// The candid command works with the wire codec and signing identities
// of the canister RPC protocol: encoding and inspecting wire messages,
// and creating and using identity files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ninegua/candid/cmd/candid/cli"
	identitycmd "github.com/ninegua/candid/cmd/candid/identity"
	"github.com/ninegua/candid/cmd/candid/wire"
)

func main() {
	root := &cli.Command{
		Name:    "candid",
		Summary: "Wire codec and signing identity tool",
		Subcommands: []*cli.Command{
			wire.Command(),
			identitycmd.Command(),
		},
	}

	if err := root.Execute(os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "candid: %v\n", err)
		os.Exit(1)
	}
}
