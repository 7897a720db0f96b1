// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"runtime"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// InterpreterSubpath returns the location of the interpreter binary relative to
// an environment root for the current OS.
func InterpreterSubpath() string {
	return interpreterSubpathFor(runtime.GOOS)
}

func interpreterSubpathFor(goos string) string {
	if goos == Windows {
		return filepath.Join("Scripts", "python.exe")
	}
	return filepath.Join("bin", "python")
}
