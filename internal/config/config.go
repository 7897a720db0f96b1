// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/venvrun/venvrun/internal/issue"
	"github.com/venvrun/venvrun/pkg/types"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "venvrun"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the venvrun configuration directory inside the platform's
// user config directory.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// loadWithOptions performs option-driven config loading. The returned path is
// the file that was read, or "" when defaults were used.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.silent", defaults.UI.Silent)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("launch.propagate_exit_code", defaults.Launch.PropagateExitCode)
	v.SetDefault("launch.wait_delay", defaults.Launch.WaitDelay)

	cfgPath := opts.ConfigFilePath
	if cfgPath == "" {
		cfgDir := opts.ConfigDirPath
		if cfgDir == "" {
			dir, err := ConfigDir()
			if err != nil {
				return nil, "", err
			}
			cfgDir = dir
		}
		cfgPath = filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

		if !fileExists(cfgPath) {
			cfg, err := unmarshal(v)
			return cfg, "", err
		}
	} else if !fileExists(cfgPath) {
		return nil, "", issue.New("load configuration").
			At(types.FilesystemPath(cfgPath)).
			Hint("Verify the file path is correct").
			Wrap(ErrConfigFileNotFound)
	}

	if err := loadCUEIntoViper(v, cfgPath); err != nil {
		return nil, "", issue.New("load configuration").
			At(types.FilesystemPath(cfgPath)).
			Hint("Check that the file contains valid CUE syntax").
			Hint("Known keys: ui.silent, ui.verbose, ui.color_scheme, launch.propagate_exit_code, launch.wait_delay").
			Wrap(err)
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, "", issue.Wrap(err, "validate configuration", types.FilesystemPath(cfgPath))
	}
	return cfg, cfgPath, nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) > maxConfigFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	// Concrete(false): every field is optional.
	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
