package main

import (
	"os"

	"github.com/raneesh-edsmartly/socratic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
