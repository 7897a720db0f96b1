// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"github.com/venvrun/venvrun/internal/issue"
	"github.com/venvrun/venvrun/pkg/fspath"
	"github.com/venvrun/venvrun/pkg/platform"
	"github.com/venvrun/venvrun/pkg/types"
)

// ResolveInterpreter returns the interpreter binary inside root.
func ResolveInterpreter(root types.FilesystemPath) (types.FilesystemPath, error) {
	interpreter := fspath.JoinStr(root, platform.InterpreterSubpath())
	if !fspath.IsFile(interpreter) {
		return "", issue.New("resolve interpreter").
			At(interpreter).
			Hint("Make sure %s is a complete virtual environment", root).
			Wrap(ErrInterpreterNotFound)
	}
	return interpreter, nil
}
