package main

import (
	"os"

	"github.com/txdesk-dev/txdesk/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
