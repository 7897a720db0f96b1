// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Resolution failures in the launcher carry the operation that failed, the path
// involved and hints on how to fix the project layout, so the CLI can print
// something more useful than a bare os.Stat error.
package issue
