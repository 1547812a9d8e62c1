// SPDX-License-Identifier: MIT

// Command powerpca builds a principal-component basis for a CSV table with
// power iteration and writes the basis and the projected table.
//
// Usage:
//
//	powerpca [flags] <input.csv>
//	powerpca project [flags] <basis.csv> <input.csv>
package main

import (
	"os"
)

func main() {
	a := newApp(os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Error().Err(err).Msg("powerpca failed")
		os.Exit(1)
	}
}
