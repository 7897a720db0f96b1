// SPDX-License-Identifier: MPL-2.0

// Package types holds the small value types shared by the launcher and the CLI:
// filesystem paths that must point somewhere and process exit codes.
package types
