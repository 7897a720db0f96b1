// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath and os.Stat that
// accept and return types.FilesystemPath, so the launcher can walk directories
// and probe files without converting back and forth at every call site.
package fspath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/venvrun/venvrun/pkg/types"
)

// JoinStr joins a typed base path with raw string segments such as the marker
// file name or the interpreter sub-path.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Abs wraps filepath.Abs for FilesystemPath.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// Clean wraps filepath.Clean for FilesystemPath. It resolves "." and ".."
// segments lexically.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// IsAbs wraps filepath.IsAbs for FilesystemPath.
func IsAbs(p types.FilesystemPath) bool {
	return filepath.IsAbs(string(p))
}

// IsRoot reports whether p is a filesystem root, i.e. its parent is itself.
func IsRoot(p types.FilesystemPath) bool {
	return Dir(p) == Clean(p)
}

// IsFile reports whether p exists and is not a directory. Symlinks are followed.
func IsFile(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && !info.IsDir()
}

// IsDir reports whether p exists and is a directory. Symlinks are followed.
func IsDir(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && info.IsDir()
}
