// Package main provides the loaneda CLI.
package main

import (
	"os"

	"berkotech.co/loaneda/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
