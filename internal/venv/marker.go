// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"github.com/venvrun/venvrun/internal/issue"
	"github.com/venvrun/venvrun/pkg/fspath"
	"github.com/venvrun/venvrun/pkg/types"
)

// MarkerFileName is the name of the file that records where a project's
// environment root lives. Change it and rebuild to use a different name.
const MarkerFileName = ".venv"

// FindMarkerFile returns the path of the nearest marker file at or above dir.
// Directories named like the marker are skipped, so a project whose environment
// itself lives in ".venv/" keeps searching upward.
func FindMarkerFile(dir types.FilesystemPath) (types.FilesystemPath, error) {
	start, err := fspath.Abs(dir)
	if err != nil {
		return "", issue.Wrap(err, "locate marker file", dir)
	}

	for current := start; ; current = fspath.Dir(current) {
		candidate := fspath.JoinStr(current, MarkerFileName)
		if fspath.IsFile(candidate) {
			return candidate, nil
		}
		if fspath.IsRoot(current) {
			break
		}
	}

	return "", issue.New("locate marker file").
		At(start).
		Hint("Create a %s file in the project root containing the path of the virtual environment", MarkerFileName).
		Hint("The path may be absolute or relative to the directory holding the file").
		Wrap(ErrMarkerFileNotFound)
}
