// Package main provides the pharmtui command: a terminal client for the
// Pharmacy Learning Toolkit backend. Run without arguments it starts the
// interactive panels; the subcommands run a single panel operation headless.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
