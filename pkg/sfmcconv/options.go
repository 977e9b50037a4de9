// Package sfmcconv localizes SFMC HTML email templates from a replacement
// workbook and a fragment workbook.
package sfmcconv

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/config"
)

// Model is the brand a template is localized for.
type Model string

const (
	ModelDacia   Model = "Dacia"
	ModelRenault Model = "Renault"
)

// Models lists the supported brands.
var Models = []Model{ModelDacia, ModelRenault}

// Input is everything a conversion run needs from the caller.
type Input struct {
	// HTMLPath is the template to localize.
	HTMLPath string
	// ReplacementsPath is the workbook with one old/new sheet per country.
	ReplacementsPath string
	// FragmentsPath is the workbook with one model/type/purpose/code sheet per country.
	FragmentsPath string
	// Country is the sheet name selecting the rules, e.g. "PRT".
	Country string
	Model   Model
	// Purpose selects the purpose fragment; only used for purpose countries.
	Purpose string
}

// Validate checks the input before any file is touched.
func (in Input) Validate() error {
	if in.HTMLPath == "" || in.ReplacementsPath == "" || in.FragmentsPath == "" {
		return newError(KindConfig, "input", "", errors.New("please select the necessary files"))
	}
	if in.Country == "" {
		return newError(KindConfig, "input", "", errors.New("no country selected"))
	}
	if !slices.Contains(Models, in.Model) {
		return newError(KindConfig, "input", "", fmt.Errorf("unsupported model %q (must be %s or %s)", in.Model, ModelDacia, ModelRenault))
	}
	return nil
}

// Options tunes a conversion run.
type Options struct {
	// TrackedURLs are counted in the usage report.
	TrackedURLs []string
	// TrackedKeywords are counted and located by line in the usage report.
	TrackedKeywords []string
	// PurposeCountries are the countries whose purpose fragment is filtered by Input.Purpose.
	PurposeCountries []string
	// OutputSuffix replaces ".html" in the output file name.
	OutputSuffix string
}

// DefaultOptions returns the options of the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig maps the report and convert sections of cfg to Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		TrackedURLs:      cfg.Report.TrackedURLs,
		TrackedKeywords:  cfg.Report.TrackedKeywords,
		PurposeCountries: cfg.Convert.PurposeCountries,
		OutputSuffix:     cfg.Convert.OutputSuffix,
	}
}

// purposeFor returns the purpose to filter on for in, or "" when the
// country does not distinguish purposes.
func (o Options) purposeFor(in Input) string {
	if slices.Contains(o.PurposeCountries, in.Country) {
		return in.Purpose
	}
	return ""
}
