// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/venvrun/venvrun/internal/config"
	"github.com/venvrun/venvrun/internal/issue"
	"github.com/venvrun/venvrun/internal/venv"
	"github.com/venvrun/venvrun/pkg/types"
)

type (
	// App wires the CLI to its dependencies. Cobra handlers receive an App and
	// delegate to it, so tests can swap the config source and the streams.
	App struct {
		Config  ConfigProvider
		stdin   io.Reader
		stdout  io.Writer
		stderr  io.Writer
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// LaunchRequest captures one invocation's CLI inputs.
	LaunchRequest struct {
		// Script is the first positional argument.
		Script string
		// Args are the remaining positional arguments, forwarded verbatim.
		Args []string
		// Silent is the -s flag, nil when it was not given so ui.silent applies.
		Silent *bool
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// Launch resolves req.Script against its project's environment and runs it.
// The script's own exit status only becomes venvrun's exit status when
// launch.propagate_exit_code is set.
func (a *App) Launch(ctx context.Context, req LaunchRequest) error {
	cfg := a.loadConfig(ctx)
	a.verbose = cfg.UI.Verbose
	applyColorScheme(cfg.UI.ColorScheme)

	silent := cfg.UI.Silent
	if req.Silent != nil {
		silent = *req.Silent
	}

	launcher := venv.NewLauncher(
		venv.Stdio{In: a.stdin, Out: a.stdout, Err: a.stderr},
		venv.Options{
			Silent:    silent,
			Verbose:   cfg.UI.Verbose,
			WaitDelay: cfg.Launch.WaitDelay,
		},
	)

	code, err := launcher.Run(ctx, req.Script, req.Args)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	if cfg.Launch.PropagateExitCode && !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}

// loadConfig returns the user's configuration, falling back to defaults with
// a warning when the config file cannot be used.
func (a *App) loadConfig(ctx context.Context) *config.Config {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, false))
		return config.DefaultConfig()
	}
	return cfg
}

// renderError writes err to w. Silent ExitErrors print nothing.
func (a *App) renderError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
