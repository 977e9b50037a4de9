package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/logger"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/parser"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [workbook.xlsx]",
		Short: "List the country sheets of a dictionary workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := parser.ListSheets(args[0])
			if err != nil {
				// An unreadable workbook offers no countries.
				logger.Get().Error("error reading Excel file", slog.String("path", args[0]), slog.Any("error", err))
				return nil
			}
			logger.Get().Debug("found sheets", "sheets", sheets)
			for _, s := range sheets {
				printf(cmd, "%s\n", s)
			}
			return nil
		},
	}
}

func newPurposesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purposes [workbook.xlsx]",
		Short: "List the purposes of an ADD parameters workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := parser.OpenWorkbook(args[0])
			if err != nil {
				return fmt.Errorf("failed to open workbook: %w", err)
			}
			defer wb.Close()

			purposes, err := wb.Purposes()
			if err != nil {
				return fmt.Errorf("failed to read purposes: %w", err)
			}
			for _, p := range purposes {
				printf(cmd, "%s\n", p)
			}
			return nil
		},
	}
}
