// Package main is the entry point for the recnik CLI.
package main

import (
	"os"

	"github.com/darkclainer/recnik/cmd/recnik/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
