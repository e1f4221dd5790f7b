// Package main is the entry point for the runlet CLI.
package main

import (
	"os"

	"runlet/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
