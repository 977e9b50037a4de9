package main

import (
	"github.com/spf13/cobra"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/config"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/logger"
)

// app holds the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		cfg.Logger.Format = a.logFormat
	}
	if err := logger.Init(cfg.Logger); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logger.Level = a.logLevel
		logger.SetLevel(logger.ParseLevel(a.logLevel))
	}
	a.cfg = cfg
	return nil
}
