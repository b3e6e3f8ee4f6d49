package main

import (
	"os"

	"lockbox/cmd/lockbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
