// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/venvrun/venvrun/internal/issue"
	"github.com/venvrun/venvrun/internal/venv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.False(t, cfg.UI.Silent)
	assert.False(t, cfg.UI.Verbose)
	assert.Equal(t, ColorSchemeAuto, cfg.UI.ColorScheme)
	assert.False(t, cfg.Launch.PropagateExitCode, "exit code propagation is off by default")
	assert.Equal(t, venv.DefaultWaitDelay, cfg.Launch.WaitDelay)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `
ui: {
	silent: true
	color_scheme: "dark"
}
launch: {
	propagate_exit_code: true
	wait_delay: "250ms"
}
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	require.NoError(t, err)

	assert.True(t, cfg.UI.Silent)
	assert.False(t, cfg.UI.Verbose, "verbose keeps its default")
	assert.Equal(t, ColorSchemeDark, cfg.UI.ColorScheme)
	assert.True(t, cfg.Launch.PropagateExitCode)
	assert.Equal(t, 250*time.Millisecond, cfg.Launch.WaitDelay)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "ui: verbose: true\n")
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)

	cfg, resolved, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.True(t, cfg.UI.Verbose)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	require.ErrorIs(t, err, ErrConfigFileNotFound)

	got, ok := issue.PathOf(err)
	require.True(t, ok)
	assert.Equal(t, path, got.String())
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "marker_file: \".env\"\n", "marker_file"},
		{"wrong type", "ui: silent: \"yes\"\n", "ui.silent"},
		{"bad color scheme", "ui: color_scheme: \"blue\"\n", "ui.color_scheme"},
		{"bad duration", "launch: wait_delay: \"soon\"\n", "launch.wait_delay"},
		{"syntax error", "ui: {\n", "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := writeConfig(t, tt.content)

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var ae *issue.ActionableError
			require.ErrorAs(t, err, &ae)
			assert.NotEmpty(t, ae.Hints)
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := loadWithOptions(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, scheme := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		assert.NoError(t, scheme.Validate(), "scheme %q", scheme)
	}
	assert.ErrorIs(t, ColorScheme("blue").Validate(), ErrInvalidColorScheme)
}

func TestConfig_Validate_NegativeWaitDelay(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Launch.WaitDelay = -time.Second
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidWaitDelay)
}

func TestConfigDir(t *testing.T) {
	t.Parallel()

	dir, err := ConfigDir()
	if err != nil {
		t.Skipf("no user config dir on this host: %v", err)
	}
	assert.Equal(t, AppName, filepath.Base(dir))
}
