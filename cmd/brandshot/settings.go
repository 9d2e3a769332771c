package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandshot/internal/config"
	"github.com/alexisbeaulieu97/brandshot/internal/logger"
)

// loadSettings reads the optional config file and builds a logger on the
// command's error stream. Global flags win over the file.
func loadSettings(cmd *cobra.Command, root *rootFlags, configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, newCommandError("load configuration", configPath, err, "Fix the reported field or omit --config to use the defaults.")
	}

	opts := cfg.LoggerOptions()
	if root.verbose {
		opts.Level = "debug"
	}
	if root.logFormat != "" {
		opts.HumanReadable = root.logFormat != "json"
	}
	opts.Writer = cmd.ErrOrStderr()

	log, err := logger.New(opts)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
