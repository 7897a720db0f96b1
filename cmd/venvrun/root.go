// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/venvrun/venvrun/internal/venv"
	"github.com/venvrun/venvrun/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var errDoubleDash = errors.New("unknown flag: --")

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// newRootCommand builds the venvrun command around app.
func newRootCommand(app *App) *cobra.Command {
	var silent bool

	rootCmd := &cobra.Command{
		Use:   "venvrun [-s] <script> [arg]...",
		Short: "Run a script with its project's virtualenv interpreter",
		Long: TitleStyle.Render("venvrun") + SubtitleStyle.Render(" - run scripts in a virtualenv without activating it") + `

venvrun looks for a ` + venv.MarkerFileName + ` file in the script's directory and then in
each parent directory. The first one found holds the path of the virtual
environment, absolute or relative to the file's own directory. The script is
then run by that environment's interpreter with the remaining arguments.

` + SubtitleStyle.Render("Examples:") + `
  venvrun demo.py               Run demo.py with the project's interpreter
  venvrun src/tool.py -v out    Forward -v and out to tool.py
  venvrun -s demo.py            Same, without diagnostics on stderr`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.ArgsLenAtDash() == 0 {
				// A bare "--" is not an option venvrun knows.
				return &ExitError{Code: types.ExitFailure, Err: errDoubleDash}
			}
			if len(args) == 0 {
				printUsage(cmd.OutOrStdout())
				if cmd.Flags().NFlag() > 0 {
					// Flags were given but no script.
					return &ExitError{Code: types.ExitFailure}
				}
				return nil
			}

			req := LaunchRequest{Script: args[0], Args: args[1:]}
			if cmd.Flags().Changed("silent") {
				req.Silent = &silent
			}
			return app.Launch(cmd.Context(), req)
		},
	}

	// Everything after the script belongs to the script.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolVarP(&silent, "silent", "s", false, "silent mode (no diagnostic output)")
	// Declared here so cobra does not claim -v, which belongs to no option.
	rootCmd.Flags().Bool("version", false, "print the version and exit")

	return rootCmd
}

// printUsage prints the one-line usage shown when no script is given.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: "+CmdStyle.Render("venvrun")+"  script.py  [arg]...")
}

// Execute runs venvrun with the process arguments and exits with its exit code.
// This is called by main.main().
func Execute() {
	os.Exit(int(ExecuteContext(context.Background(), os.Args[1:], Dependencies{})))
}

// ExecuteContext runs venvrun with explicit arguments and dependencies and
// returns the exit code instead of exiting.
func ExecuteContext(ctx context.Context, args []string, deps Dependencies) types.ExitCode {
	app := NewApp(deps)
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	// fang adds styled help, the version flag and interrupt handling; the
	// completion and man subcommands would shadow scripts with those names.
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.renderError(w, err)
		}),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return types.ExitFailure
	}
	return types.ExitSuccess
}
