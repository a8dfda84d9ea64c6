package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	// Cobra prints the error; the logger only exists once bootstrap ran.
	if err := newRootCommand().Execute(); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
