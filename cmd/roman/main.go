// Package main provides the roman CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/roman/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
