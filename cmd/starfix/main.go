package main

import (
	"os"

	"github.com/lintkit/starfix/cmd/starfix/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
