// SPDX-License-Identifier: MPL-2.0

package venv

import "errors"

var (
	// ErrMarkerFileNotFound is returned when no marker file exists between the
	// script's directory and the filesystem root.
	ErrMarkerFileNotFound = errors.New(MarkerFileName + " file is missing")
	// ErrEmptyMarkerFile is returned when the marker file holds only whitespace.
	ErrEmptyMarkerFile = errors.New("marker file is empty")
	// ErrEnvRootNotDir is returned when the environment root named by the marker
	// file does not exist or is not a directory.
	ErrEnvRootNotDir = errors.New("not a directory")
	// ErrInterpreterNotFound is returned when the environment root has no
	// interpreter binary at the expected sub-path.
	ErrInterpreterNotFound = errors.New("interpreter is missing")
)
