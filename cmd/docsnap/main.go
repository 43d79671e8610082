// Package main is the entry point for the docsnap CLI.
package main

import (
	"os"

	"github.com/docsnap/docsnap/cmd/docsnap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
