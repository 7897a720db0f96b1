// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/venvrun/venvrun/pkg/platform"
)

// MustWriteFile creates path, including missing parents, with content and mode.
// The test fails immediately if any step fails.
func MustWriteFile(t testing.TB, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustMakeEnv creates an environment root with an interpreter stub running
// body and returns the interpreter path.
func MustMakeEnv(t testing.TB, root, body string) string {
	t.Helper()
	interpreter := filepath.Join(root, platform.InterpreterSubpath())
	MustWriteFile(t, interpreter, "#!/bin/sh\n"+body+"\n", 0o755)
	return interpreter
}

// NewProject creates a temporary project whose marker file points at the
// relative environment "venv", with an interpreter stub running body.
// It returns the project directory.
func NewProject(t testing.TB, marker, body string) string {
	t.Helper()
	dir := t.TempDir()
	MustWriteFile(t, filepath.Join(dir, marker), "venv\n", 0o644)
	MustMakeEnv(t, filepath.Join(dir, "venv"), body)
	return dir
}

// SkipIfAncestorFile skips the test when a regular file called name exists in
// any directory above dir. Tests asserting that a search reaches the
// filesystem root without a match cannot run on such hosts.
func SkipIfAncestorFile(t testing.TB, dir, name string) {
	t.Helper()
	for current := filepath.Dir(dir); ; current = filepath.Dir(current) {
		if info, err := os.Stat(filepath.Join(current, name)); err == nil && !info.IsDir() {
			t.Skipf("host has a %s file at %s", name, current)
		}
		if filepath.Dir(current) == current {
			return
		}
	}
}

// SkipOnWindows skips tests that execute interpreter stubs.
func SkipOnWindows(t testing.TB) {
	t.Helper()
	if runtime.GOOS == platform.Windows {
		t.Skip("interpreter stubs are shell scripts")
	}
}
