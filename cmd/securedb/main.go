package main

import (
	"os"

	"securedb/cmd/securedb/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
