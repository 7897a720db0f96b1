// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"strconv"
	"strings"

	"github.com/venvrun/venvrun/pkg/types"

	"mvdan.cc/sh/v3/syntax"
)

// Invocation is a fully resolved request to run one script. It only lives for
// the duration of a single run.
type Invocation struct {
	// Script is the target script exactly as given on the command line.
	Script string
	// Args are forwarded to the script untouched.
	Args []string
	// MarkerFile is the marker file that was honored.
	MarkerFile types.FilesystemPath
	// EnvRoot is the environment root named by MarkerFile.
	EnvRoot types.FilesystemPath
	// Interpreter is the binary that will run Script.
	Interpreter types.FilesystemPath
}

// Argv returns the argument vector for the child process: the interpreter,
// the script, then each forwarded argument as its own element.
func (inv *Invocation) Argv() []string {
	argv := make([]string, 0, 2+len(inv.Args))
	argv = append(argv, inv.Interpreter.String(), inv.Script)
	return append(argv, inv.Args...)
}

// CommandLine renders Argv as a single shell-quoted line for diagnostics.
func (inv *Invocation) CommandLine() string {
	argv := inv.Argv()
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			q = strconv.Quote(arg)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}
