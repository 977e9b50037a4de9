// Package main provides the CLI entry point for sfmcconv.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "sfmcconv",
		Short: "Localize SFMC HTML email templates",
		Long: `sfmcconv applies a country's string replacements and brand fragments
(tracking pixel, preference-center links, styles) to an SFMC HTML email
template and writes <name>_updated.html next to it.`,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (YAML or TOML, default: ./sfmcconv.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&app.logFormat, "log-format", "", "Log format: console, json (overrides config)")

	rootCmd.AddCommand(newConvertCmd(app), newSheetsCmd(), newPurposesCmd())
	return rootCmd
}

// printf writes user-facing output to the command's stdout.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
