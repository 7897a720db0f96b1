// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/venvrun/venvrun/internal/venv"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidWaitDelay is returned when launch.wait_delay is negative.
	ErrInvalidWaitDelay = errors.New("invalid wait delay")
	// ErrConfigFileNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigFileNotFound = errors.New("config file not found")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures diagnostics and error output
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Launch configures how the script's process is run
		Launch LaunchConfig `json:"launch" mapstructure:"launch"`
	}

	// UIConfig configures diagnostics and error output.
	UIConfig struct {
		// Silent makes -s the default.
		Silent bool `json:"silent" mapstructure:"silent"`
		// Verbose shows error chains and the launched command line.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme sets the color scheme ("auto", "dark", "light")
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// LaunchConfig configures how the script's process is run.
	LaunchConfig struct {
		// PropagateExitCode makes venvrun exit with the script's exit status.
		// Off by default: venvrun exits 0 once the script has been run.
		PropagateExitCode bool `json:"propagate_exit_code" mapstructure:"propagate_exit_code"`
		// WaitDelay is the grace period after an interrupt before the script is killed.
		WaitDelay time.Duration `json:"wait_delay" mapstructure:"wait_delay"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is for programmatic detection.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate returns an error if the ColorScheme is not one of the defined schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate checks the fields CUE cannot fully constrain.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Launch.WaitDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidWaitDelay, c.Launch.WaitDelay))
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Silent:      false,
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Launch: LaunchConfig{
			PropagateExitCode: false,
			WaitDelay:         venv.DefaultWaitDelay,
		},
	}
}
