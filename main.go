package main

import (
	"os"

	"github.com/mastowrap/mastowrap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
