// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/venvrun/venvrun/internal/issue"
	"github.com/venvrun/venvrun/pkg/fspath"
	"github.com/venvrun/venvrun/pkg/types"

	"github.com/charmbracelet/log"
)

// DefaultWaitDelay is how long an interrupted child gets to exit before it is killed.
const DefaultWaitDelay = 5 * time.Second

type (
	// Options configures a Launcher. It is built once from parsed flags and
	// config and never changes afterwards.
	Options struct {
		// Silent suppresses the marker file and environment diagnostics.
		Silent bool
		// Verbose additionally logs the command line before launching.
		Verbose bool
		// WaitDelay bounds the wait after the child was interrupted.
		// Zero means DefaultWaitDelay.
		WaitDelay time.Duration
	}

	// Stdio holds the streams handed to the child process. Diagnostics go to Err.
	Stdio struct {
		In  io.Reader
		Out io.Writer
		Err io.Writer
	}

	// Launcher resolves scripts to invocations and runs them.
	Launcher struct {
		opts   Options
		stdio  Stdio
		logger *log.Logger
	}
)

// NewLauncher creates a Launcher writing diagnostics to stdio.Err.
func NewLauncher(stdio Stdio, opts Options) *Launcher {
	if opts.WaitDelay <= 0 {
		opts.WaitDelay = DefaultWaitDelay
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	if opts.Silent {
		level = log.WarnLevel
	}

	logger := log.NewWithOptions(stdio.Err, log.Options{
		Prefix: "venvrun",
		Level:  level,
	})

	return &Launcher{
		opts:   opts,
		stdio:  stdio,
		logger: logger,
	}
}

// Resolve finds the marker file for script, the environment root it names and
// the interpreter inside that root.
func (l *Launcher) Resolve(script string, args []string) (*Invocation, error) {
	scriptPath := types.FilesystemPath(script)
	if err := scriptPath.Validate(); err != nil {
		return nil, issue.Wrap(err, "resolve script", scriptPath)
	}

	abs, err := fspath.Abs(scriptPath)
	if err != nil {
		return nil, issue.Wrap(err, "resolve script", scriptPath)
	}

	marker, err := FindMarkerFile(fspath.Dir(abs))
	if err != nil {
		return nil, err
	}
	l.logger.Info("marker file", "path", marker)

	root, err := ResolveEnvRoot(marker)
	if err != nil {
		return nil, err
	}

	interpreter, err := ResolveInterpreter(root)
	if err != nil {
		return nil, err
	}
	l.logger.Info("environment", "dir", root)

	return &Invocation{
		Script:      script,
		Args:        args,
		MarkerFile:  marker,
		EnvRoot:     root,
		Interpreter: interpreter,
	}, nil
}

// Launch runs the invocation with inherited standard streams and waits for it.
// A child that runs and exits non-zero is not an error: its code is returned
// for the caller to act on. Errors are reserved for failing to run the child.
func (l *Launcher) Launch(ctx context.Context, inv *Invocation) (types.ExitCode, error) {
	argv := inv.Argv()
	l.logger.Debug("launching", "command", inv.CommandLine())

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = l.stdio.In
	cmd.Stdout = l.stdio.Out
	cmd.Stderr = l.stdio.Err
	cmd.Cancel = func() error { return interrupt(cmd.Process) }
	cmd.WaitDelay = l.opts.WaitDelay

	err := cmd.Run()
	if err == nil {
		return types.ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCodeOf(exitErr.ProcessState), nil
	}
	if ctx.Err() != nil && cmd.ProcessState != nil {
		// The child handled the interrupt and exited on its own. Wait reports
		// the cancellation rather than a successful status.
		return exitCodeOf(cmd.ProcessState), nil
	}

	return types.ExitFailure, issue.Wrap(err, "launch interpreter", inv.Interpreter)
}

// Run resolves script and launches it.
func (l *Launcher) Run(ctx context.Context, script string, args []string) (types.ExitCode, error) {
	inv, err := l.Resolve(script, args)
	if err != nil {
		return types.ExitFailure, err
	}
	return l.Launch(ctx, inv)
}

// exitCodeOf maps a finished process to an exit code. Processes killed by a
// signal have no code of their own and count as failures.
func exitCodeOf(state *os.ProcessState) types.ExitCode {
	code := types.ExitCode(state.ExitCode())
	if code.Validate() != nil {
		return types.ExitFailure
	}
	return code
}

// interrupt asks the child to stop the way a terminal Ctrl-C would, falling
// back to killing it where interrupts are unsupported.
func interrupt(p *os.Process) error {
	if err := p.Signal(os.Interrupt); err != nil {
		return p.Kill()
	}
	return nil
}
