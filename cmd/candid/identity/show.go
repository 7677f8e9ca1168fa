// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/ninegua/candid/cmd/candid/cli"
	"github.com/ninegua/candid/lib/keyhash"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Summary: "Print an identity's public details",
		Description: `Print the principal, DER-encoded public key, and key fingerprint of an
identity file. Sealed files prompt for their passphrase. The secret key
is never printed.`,
		Usage: "candid identity show <file>",
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("show takes exactly one identity file argument")
			}

			id, err := loadIdentity(args[0])
			if err != nil {
				return err
			}

			derKey := id.PublicKey().DER()
			fmt.Fprintf(os.Stdout, "principal:   %s\n", id.Principal())
			fmt.Fprintf(os.Stdout, "public key:  %s\n", hex.EncodeToString(derKey))
			fmt.Fprintf(os.Stdout, "fingerprint: %s\n", keyhash.Fingerprint(derKey))
			return nil
		},
	}
}
