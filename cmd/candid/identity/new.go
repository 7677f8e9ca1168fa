// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ninegua/candid/cmd/candid/cli"
	"github.com/ninegua/candid/lib/identity"
	"github.com/ninegua/candid/lib/keyhash"
	"github.com/ninegua/candid/lib/sealed"
)

func newCommand() *cli.Command {
	var (
		outPath        string
		seal           bool
		fromSeedPhrase bool
	)

	return &cli.Command{
		Name:    "new",
		Summary: "Generate a signing identity",
		Description: `Generate a fresh Ed25519 signing identity and write its JSON encoding
to --out (or stdout). With --from-seed-phrase, the identity is derived
deterministically from a seed phrase read from the terminal instead of
from randomness. With --seal, the file is encrypted with a passphrase
before it touches disk.`,
		Usage: "candid identity new [-o file] [--seal] [--from-seed-phrase]",
		Examples: []cli.Example{
			{
				Description: "Generate a sealed identity file",
				Command:     "candid identity new -o identity.json.age --seal",
			},
			{
				Description: "Recover an identity from a seed phrase",
				Command:     "candid identity new --from-seed-phrase -o identity.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("new", pflag.ContinueOnError)
			flags.StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
			flags.BoolVar(&seal, "seal", false, "encrypt the file with a passphrase")
			flags.BoolVar(&fromSeedPhrase, "from-seed-phrase", false, "derive from a seed phrase instead of randomness")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("new takes no positional arguments, got %q", args[0])
			}
			return runNew(outPath, seal, fromSeedPhrase)
		},
	}
}

func runNew(outPath string, seal, fromSeedPhrase bool) error {
	var id *identity.Ed25519Identity
	var err error
	if fromSeedPhrase {
		phrase, promptErr := cli.ReadPassphrase("Seed phrase: ")
		if promptErr != nil {
			return promptErr
		}
		id, err = identity.FromSeedPhrase(phrase, "")
	} else {
		id, err = identity.Generate()
	}
	if err != nil {
		return err
	}

	data, err := id.ToJSON()
	if err != nil {
		return err
	}

	if seal {
		passphrase, err := cli.ReadPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
		data, err = sealed.Seal(data, passphrase)
		if err != nil {
			return err
		}
	}

	derKey := id.PublicKey().DER()
	fmt.Fprintf(os.Stderr, "principal:   %s\n", id.Principal())
	fmt.Fprintf(os.Stderr, "fingerprint: %s\n", keyhash.Fingerprint(derKey))

	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return writeIdentityFile(outPath, data)
}
