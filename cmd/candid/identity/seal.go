// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ninegua/candid/cmd/candid/cli"
	"github.com/ninegua/candid/lib/sealed"
)

func sealCommand() *cli.Command {
	return &cli.Command{
		Name:    "seal",
		Summary: "Encrypt an identity file with a passphrase",
		Usage:   "candid identity seal <in> <out>",
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("seal takes input and output file arguments")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading identity file: %w", err)
			}
			if bytes.HasPrefix(data, ageHeader) {
				return fmt.Errorf("%s is already sealed", args[0])
			}

			passphrase, err := cli.ReadPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			ciphertext, err := sealed.Seal(data, passphrase)
			if err != nil {
				return err
			}
			return writeIdentityFile(args[1], ciphertext)
		},
	}
}

func unsealCommand() *cli.Command {
	return &cli.Command{
		Name:    "unseal",
		Summary: "Decrypt a sealed identity file",
		Usage:   "candid identity unseal <in> <out>",
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("unseal takes input and output file arguments")
			}

			ciphertext, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading sealed file: %w", err)
			}
			if !bytes.HasPrefix(ciphertext, ageHeader) {
				return fmt.Errorf("%s is not a sealed identity file", args[0])
			}

			passphrase, err := cli.ReadPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			data, err := sealed.Unseal(ciphertext, passphrase)
			if err != nil {
				return err
			}
			return writeIdentityFile(args[1], data)
		},
	}
}
