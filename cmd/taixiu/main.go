// Package main is the entry point for the taixiu CLI.
package main

import (
	"os"

	"github.com/runger/taixiu/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
