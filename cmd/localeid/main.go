// Package main provides the localeid CLI.
package main

import (
	"os"

	"github.com/mlocati/gettext-unicode-locale-id/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
