package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/report"
)

type convertFlags struct {
	htmlPath         string
	replacementsPath string
	fragmentsPath    string
	country          string
	model            string
	purpose          string
	outputFormat     string
}

func newConvertCmd(a *app) *cobra.Command {
	f := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Localize an HTML template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, f)
		},
	}

	cmd.Flags().StringVar(&f.htmlPath, "html", "", "HTML template to localize")
	cmd.Flags().StringVar(&f.replacementsPath, "replacements", "", "Dictionary workbook (one old/new sheet per country)")
	cmd.Flags().StringVar(&f.fragmentsPath, "fragments", "", "ADD parameters workbook (model/type/purpose/code sheets)")
	cmd.Flags().StringVarP(&f.country, "country", "c", "", "Country sheet, e.g. PRT")
	cmd.Flags().StringVarP(&f.model, "model", "m", string(sfmcconv.ModelRenault), "Brand: Dacia or Renault")
	cmd.Flags().StringVarP(&f.purpose, "purpose", "p", "", "Purpose (only used by purpose countries)")
	cmd.Flags().StringVarP(&f.outputFormat, "output-format", "o", "text", "Result format: text, json, yaml")

	return cmd
}

func runConvert(cmd *cobra.Command, a *app, f *convertFlags) error {
	in := sfmcconv.Input{
		HTMLPath:         f.htmlPath,
		ReplacementsPath: f.replacementsPath,
		FragmentsPath:    f.fragmentsPath,
		Country:          f.country,
		Model:            sfmcconv.Model(f.model),
		Purpose:          f.purpose,
	}

	res, err := sfmcconv.Convert(in, sfmcconv.OptionsFromConfig(a.cfg))
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	switch f.outputFormat {
	case "text", "":
		printf(cmd, "%s", report.Render(res.OutputPath, res.Usage))
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		printf(cmd, "%s\n", data)
	case "yaml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		printf(cmd, "%s", data)
	default:
		return fmt.Errorf("invalid output format: %s (must be text, json, or yaml)", f.outputFormat)
	}
	return nil
}
