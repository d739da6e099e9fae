package main

import (
	"os"

	"github.com/bianoble/skill-link/cmd/skill-link/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
