// Package main provides the rollbook student record manager.
package main

import (
	"os"

	"github.com/leapstack-labs/rollbook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
