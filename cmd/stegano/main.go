package main

import (
	"os"

	"stegano/cmd/stegano/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
