// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the candid
// binary: named subcommands with pflag flag sets, generated help
// output, and an ExitError type for handled non-zero exits.
package cli
