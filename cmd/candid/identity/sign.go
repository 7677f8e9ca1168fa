// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/ninegua/candid/cmd/candid/cli"
)

func signCommand() *cli.Command {
	return &cli.Command{
		Name:    "sign",
		Summary: "Sign stdin with an identity file",
		Description: `Read a message from stdin, sign it with the identity's secret key, and
print the detached Ed25519 signature as hex. Signing is deterministic:
the same identity and message always produce the same signature.`,
		Usage: "candid identity sign <file> < message",
		Examples: []cli.Example{
			{
				Description: "Sign a request body",
				Command:     "candid identity sign identity.json < request.cbor",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("sign takes exactly one identity file argument")
			}

			id, err := loadIdentity(args[0])
			if err != nil {
				return err
			}

			message, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read message: %w", err)
			}

			signature, err := id.Sign(message)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, hex.EncodeToString(signature))
			return nil
		},
	}
}
