// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the per-OS conventions the launcher depends on,
// most notably where a virtual environment keeps its interpreter binary.
package platform
