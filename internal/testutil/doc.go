// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that need a project on disk:
// a marker file, an environment root and an interpreter stub.
//
// Interpreter stubs are POSIX shell scripts, so tests that execute them call
// SkipOnWindows first.
package testutil
