// SPDX-License-Identifier: MIT

// Command srmp solves cost-function networks in the UAI MARKOV format
// and generates benchmark instances.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
