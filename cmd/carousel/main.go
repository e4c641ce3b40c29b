package main

import (
	"os"

	"github.com/agiangrant/carousel/cmd/carousel/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
