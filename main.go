// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/venvrun/venvrun/cmd/venvrun"

func main() {
	cmd.Execute()
}
