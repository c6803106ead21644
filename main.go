package main

import (
	"os"

	"github.com/hallward/usher/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
