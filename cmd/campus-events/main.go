package main

import (
	"fmt"
	"os"

	"github.com/campusconnect/campus-events/internal/cli"
	"github.com/campusconnect/campus-events/internal/config"
	"github.com/campusconnect/campus-events/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr))

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
