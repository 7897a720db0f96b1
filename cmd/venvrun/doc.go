// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the venvrun command line.
//
// venvrun has a single Cobra command. Flag parsing stops at the first
// positional argument, which names the script; everything after it is handed
// to the script untouched. Resolution and launching live in internal/venv;
// this package only maps flags and config onto venv.Options and errors onto
// exit codes.
package cmd
