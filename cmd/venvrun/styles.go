// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/venvrun/venvrun/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by usage, warning and error output.
const (
	// ColorPrimary is purple - used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for command names and flags.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names and flags.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// applyColorScheme tells lipgloss which background to style for. "auto"
// leaves terminal detection alone.
func applyColorScheme(scheme config.ColorScheme) {
	switch scheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
