// SPDX-License-Identifier: MPL-2.0

// Package config handles the optional user configuration using Viper with CUE as
// the file format.
//
// Configuration is loaded from config.cue in the platform config directory
// (os.UserConfigDir()/venvrun). The file only changes defaults for the command
// line (silent mode, verbose errors) and launch behavior (exit code propagation,
// interrupt grace period). The marker file name and interpreter location are
// deliberately not configurable. Environment variables are never bound.
//
// The file is validated against an embedded CUE schema (config_schema.cue).
package config
