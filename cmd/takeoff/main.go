package main

import (
	"os"

	"Takeoff/internal/cli"
	"Takeoff/internal/logger"
)

func main() {
	log := logger.New(logger.ParseLevel(os.Getenv("LOG_LEVEL")), os.Stderr)
	if err := cli.NewRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
