package main

import (
	"os"

	"github.com/acarerdinc/relevia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
