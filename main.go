package main

import (
	"os"

	"github.com/abhisek/budai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
