package main

import (
	"os"

	"github.com/kspace-org/kspace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
