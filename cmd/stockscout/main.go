package main

import (
	"fmt"
	"os"

	"stockscout/internal/cli"
	"stockscout/internal/config"
	"stockscout/internal/logging"
)

func main() {
	configDir := os.Getenv("STOCKSCOUT_CONFIG_DIR")

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stockscout: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLoggerWithConfig(cfg.LogConfig())

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "stockscout: %v\n", err)
		os.Exit(1)
	}
}
