// SPDX-License-Identifier: MPL-2.0

// spawnkit turns dynamic spawn configurations into validated command
// descriptors and runs them.
package main

import cmd "spawnkit/cmd/spawnkit"

func main() {
	cmd.Execute()
}
