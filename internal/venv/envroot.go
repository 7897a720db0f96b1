// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"os"
	"strings"

	"github.com/venvrun/venvrun/internal/issue"
	"github.com/venvrun/venvrun/pkg/fspath"
	"github.com/venvrun/venvrun/pkg/types"
)

// ResolveEnvRoot reads the marker file and returns the environment root it
// names. Relative paths are joined onto the marker's directory and cleaned;
// absolute paths are returned as written, minus surrounding whitespace.
func ResolveEnvRoot(marker types.FilesystemPath) (types.FilesystemPath, error) {
	data, err := os.ReadFile(marker.String())
	if err != nil {
		return "", issue.Wrap(err, "read marker file", marker)
	}

	root := types.FilesystemPath(strings.TrimSpace(string(data)))
	if root.Validate() != nil {
		return "", issue.New("read marker file").
			At(marker).
			Hint("Write the path of the virtual environment into the file").
			Wrap(ErrEmptyMarkerFile)
	}

	if !fspath.IsAbs(root) {
		root = fspath.Clean(fspath.JoinStr(fspath.Dir(marker), root.String()))
	}

	if !fspath.IsDir(root) {
		return "", issue.New("resolve environment root").
			At(root).
			Hint("Check the path written in %s", marker).
			Hint("Create the environment first, e.g. 'python -m venv <dir>'").
			Wrap(ErrEnvRootNotDir)
	}

	return root, nil
}
