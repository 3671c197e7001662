package main

import (
	"os"

	"github.com/mujasoft/NaturalCommitLint/cmd"
	"github.com/mujasoft/NaturalCommitLint/logger"
)

func main() {
	defer logger.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
