// Copyright 2026 The Candid Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without an extra error
// message. The main function checks for it on returned errors to
// distinguish a handled non-zero exit from an unexpected error that
// should be displayed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the process exit code to use.
func (e *ExitError) ExitCode() int {
	return e.Code
}
