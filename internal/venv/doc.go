// SPDX-License-Identifier: MPL-2.0

// Package venv resolves the virtual environment that owns a script and launches
// the script through that environment's interpreter.
//
// Resolution walks upward from the script's directory looking for a marker file
// (MarkerFileName). The first one found wins. Its single line names the
// environment root, either absolute or relative to the marker's own directory.
// The interpreter lives at a fixed sub-path of the root (see
// platform.InterpreterSubpath). Every resolution step fails with an
// issue.ActionableError wrapping one of the sentinel errors below, and no child
// process is started unless all of them succeed.
package venv
