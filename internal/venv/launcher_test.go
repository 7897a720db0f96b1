// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/venvrun/venvrun/internal/testutil"
	"github.com/venvrun/venvrun/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProject lays out proj/.venv -> venv, proj/venv with an interpreter stub
// running body, and returns the project dir and the path of a script in it.
func newProject(t *testing.T, body string) (proj, script string) {
	t.Helper()
	proj = testutil.NewProject(t, MarkerFileName, body)
	return proj, filepath.Join(proj, "src", "app.py")
}

func newTestLauncher(opts Options) (*Launcher, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewLauncher(Stdio{Out: &stdout, Err: &stderr}, opts), &stdout, &stderr
}

func TestInvocation_Argv(t *testing.T) {
	t.Parallel()

	inv := &Invocation{
		Script:      "app.py",
		Args:        []string{"-v", "two words"},
		Interpreter: types.FilesystemPath("/proj/venv/bin/python"),
	}
	assert.Equal(t, []string{"/proj/venv/bin/python", "app.py", "-v", "two words"}, inv.Argv())
	assert.Equal(t, "/proj/venv/bin/python app.py -v 'two words'", inv.CommandLine())
}

func TestLauncher_Resolve(t *testing.T) {
	t.Parallel()

	proj, script := newProject(t, "exit 0")
	l, _, stderr := newTestLauncher(Options{})

	inv, err := l.Resolve(script, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(proj, MarkerFileName), inv.MarkerFile.String())
	assert.Equal(t, filepath.Join(proj, "venv"), inv.EnvRoot.String())
	assert.Equal(t, script, inv.Script)
	assert.Equal(t, []string{"x"}, inv.Args)

	assert.Contains(t, stderr.String(), "marker file")
	assert.Contains(t, stderr.String(), "environment")
}

func TestLauncher_Resolve_Silent(t *testing.T) {
	t.Parallel()

	_, script := newProject(t, "exit 0")
	l, _, stderr := newTestLauncher(Options{Silent: true, Verbose: true})

	_, err := l.Resolve(script, nil)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
}

func TestLauncher_Resolve_MissingInterpreterLogsMarkerOnly(t *testing.T) {
	t.Parallel()

	proj := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(proj, MarkerFileName), "venv", 0o644)
	testutil.MustWriteFile(t, filepath.Join(proj, "venv", "README"), "", 0o644)
	l, _, stderr := newTestLauncher(Options{})

	_, err := l.Resolve(filepath.Join(proj, "app.py"), nil)
	require.ErrorIs(t, err, ErrInterpreterNotFound)
	assert.Contains(t, stderr.String(), "marker file")
	assert.NotContains(t, stderr.String(), "environment")
}

func TestLauncher_Resolve_EmptyScript(t *testing.T) {
	t.Parallel()

	l, _, _ := newTestLauncher(Options{})
	_, err := l.Resolve("  ", nil)
	require.ErrorIs(t, err, types.ErrInvalidFilesystemPath)
}

func TestLauncher_Run_ForwardsArguments(t *testing.T) {
	t.Parallel()
	testutil.SkipOnWindows(t)

	_, script := newProject(t, `printf '%s\n' "$@"`)
	l, stdout, _ := newTestLauncher(Options{Silent: true})

	code, err := l.Run(context.Background(), script, []string{"--flag", "two words", "$HOME"})
	require.NoError(t, err)
	assert.Equal(t, types.ExitSuccess, code)
	assert.Equal(t, script+"\n--flag\ntwo words\n$HOME\n", stdout.String())
}

func TestLauncher_Run_ReturnsChildExitCode(t *testing.T) {
	t.Parallel()
	testutil.SkipOnWindows(t)

	_, script := newProject(t, "echo failing >&2; exit 3")
	l, _, stderr := newTestLauncher(Options{Silent: true})

	code, err := l.Run(context.Background(), script, nil)
	require.NoError(t, err)
	assert.Equal(t, types.ExitCode(3), code)
	assert.Equal(t, "failing\n", stderr.String())
}

func TestLauncher_Run_VerboseLogsCommandLine(t *testing.T) {
	t.Parallel()
	testutil.SkipOnWindows(t)

	_, script := newProject(t, "exit 0")
	l, _, stderr := newTestLauncher(Options{Verbose: true})

	_, err := l.Run(context.Background(), script, []string{"a b"})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "launching")
	assert.Contains(t, stderr.String(), "'a b'")
}

func TestLauncher_Run_ResolutionFailureSpawnsNothing(t *testing.T) {
	t.Parallel()

	proj := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(proj, MarkerFileName), "missing-env", 0o644)
	l, stdout, _ := newTestLauncher(Options{})

	code, err := l.Run(context.Background(), filepath.Join(proj, "app.py"), nil)
	require.ErrorIs(t, err, ErrEnvRootNotDir)
	assert.Equal(t, types.ExitFailure, code)
	assert.Empty(t, stdout.String())
}

func TestLauncher_Launch_StartFailure(t *testing.T) {
	t.Parallel()

	l, _, _ := newTestLauncher(Options{Silent: true})
	inv := &Invocation{
		Script:      "app.py",
		Interpreter: types.FilesystemPath(filepath.Join(t.TempDir(), "no-such-python")),
	}

	code, err := l.Launch(context.Background(), inv)
	require.Error(t, err)
	assert.Equal(t, types.ExitFailure, code)
	assert.Contains(t, err.Error(), "failed to launch interpreter")
}

func TestLauncher_Run_InterruptedChildExitStatus(t *testing.T) {
	t.Parallel()
	testutil.SkipOnWindows(t)

	tests := []struct {
		name string
		trap string
		want types.ExitCode
	}{
		{"exits cleanly", "exit 0", types.ExitSuccess},
		{"exits with status", "exit 4", types.ExitCode(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// The stub touches its second argument once the trap is installed.
			_, script := newProject(t, "trap '"+tt.trap+"' INT\n: > \"$2\"\nwhile :; do sleep 0.1; done")
			ready := filepath.Join(t.TempDir(), "ready")
			l, _, _ := newTestLauncher(Options{Silent: true, WaitDelay: 10 * time.Second})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				for {
					if _, err := os.Stat(ready); err == nil {
						cancel()
						return
					}
					select {
					case <-ctx.Done():
						return
					case <-time.After(10 * time.Millisecond):
					}
				}
			}()

			code, err := l.Run(ctx, script, []string{ready})
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}
