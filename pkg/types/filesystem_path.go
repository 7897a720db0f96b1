// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is an absolute or relative path to a script, marker file,
	// environment root or interpreter binary. The zero value is invalid.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value is
	// empty or whitespace-only.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// Validate returns an error if the path is empty or whitespace-only.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
