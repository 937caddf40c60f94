package main

import (
	"os"

	"github.com/devika/neuroquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
