// Package main - Entry point for the cablesize CLI
package main

import (
	"os"

	"cablesize/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
