package main

import (
	"os"

	"github.com/CircleCI-Public/repo-browser/cmd"
)

func main() {
	// See cmd/root.go for Execute()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
