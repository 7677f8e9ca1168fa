// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package identity implements the "candid identity" subcommands for
// creating, inspecting, and using signing identity files.
//
// Identity files hold the canonical JSON encoding (two hex strings)
// and may be sealed with a passphrase; sealed files are recognized by
// the age format header, so every command accepts either form.
package identity

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ninegua/candid/cmd/candid/cli"
	"github.com/ninegua/candid/lib/identity"
	"github.com/ninegua/candid/lib/sealed"
)

// ageHeader starts every sealed identity file.
var ageHeader = []byte("age-encryption.org/")

// Command returns the "identity" command tree.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "identity",
		Summary: "Create, inspect, and use signing identities",
		Subcommands: []*cli.Command{
			newCommand(),
			showCommand(),
			signCommand(),
			sealCommand(),
			unsealCommand(),
		},
	}
}

// loadIdentity reads an identity file, unsealing it first when it
// carries the age header.
func loadIdentity(path string) (*identity.Ed25519Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading identity file: %w", err)
	}

	if bytes.HasPrefix(data, ageHeader) {
		passphrase, err := cli.ReadPassphrase("Passphrase: ")
		if err != nil {
			return nil, err
		}
		data, err = sealed.Unseal(data, passphrase)
		if err != nil {
			return nil, err
		}
	}

	return identity.FromJSON(data)
}

// writeIdentityFile writes identity material with owner-only
// permissions.
func writeIdentityFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing identity file: %w", err)
	}
	return nil
}
