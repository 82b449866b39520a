// ABOUTME: Entry point for the brightboard admin console
// ABOUTME: Command-line and TUI front-end for the platform's admin API

package main

import (
	"fmt"
	"os"

	"github.com/brightboard/admin-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
