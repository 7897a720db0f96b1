// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// maxConfigFileSize bounds how much of a config file is handed to CUE.
const maxConfigFileSize = 64 * 1024

// formatCUEError flattens a CUE error into "<file>: <field.path>: <message>"
// lines so schema violations point at the offending key.
func formatCUEError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		pathStr := strings.Join(cueerrors.Path(e), ".")
		msg := e.Error()
		// CUE sometimes repeats the path at the start of the message.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}
		if pathStr != "" {
			lines = append(lines, pathStr+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}
