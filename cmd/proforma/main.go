package main

import (
	"os"

	"github.com/proforma-dev/proforma/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
