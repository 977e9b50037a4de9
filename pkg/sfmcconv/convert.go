package sfmcconv

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/logger"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/htmlpatch"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/parser"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/report"
)

// Result describes a successful conversion.
type Result struct {
	// OutputPath is the file the localized template was written to.
	OutputPath string `json:"output_path" yaml:"output_path"`
	// Usage reports tracked URLs and keywords left in the output.
	Usage models.UsageReport `json:"usage" yaml:"usage"`
}

// Fragments are the markup snippets spliced into a template. Any of them may be empty.
type Fragments struct {
	Prepend             string
	PartyIDCrypted      string
	PreferenceCenterURL string
	AppendText          string
	Image               string
	Style               string
}

// Convert localizes in.HTMLPath and writes the result next to it. Nothing is
// written unless every step before the write succeeds.
func Convert(in Input, opts Options) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	log := logger.WithComponent("convert").With("country", in.Country, "model", string(in.Model))

	content, err := readHTML(in.HTMLPath)
	if err != nil {
		return nil, err
	}

	content = htmlpatch.RemoveHeaderBlock(content)

	replacements, err := loadReplacements(in.ReplacementsPath, in.Country)
	if err != nil {
		return nil, err
	}
	if replacements.Len() == 0 {
		return nil, newError(KindConfig, "replacements", in.ReplacementsPath,
			fmt.Errorf("failed to read replacements for country %q", in.Country))
	}
	log.Debug("replacements loaded", "pairs", replacements.Len())

	content = htmlpatch.ApplyLiteralReplacements(content, replacements)

	frags, err := loadFragments(in, opts, log)
	if err != nil {
		return nil, err
	}

	content = ApplyFragments(content, frags)

	outPath := OutputPath(in.HTMLPath, opts.OutputSuffix)
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return nil, newError(KindIO, "write", outPath, err)
	}

	usage := report.Build(content, opts.TrackedURLs, opts.TrackedKeywords)
	log.Info("template converted", "output", outPath, "bytes", len(content))

	return &Result{OutputPath: outPath, Usage: usage}, nil
}

// ApplyFragments stacks the prepend, party id and append text blocks above
// content, injects the style and image blocks, and points the opt-out and
// opt-in links at the preference center when one is configured.
func ApplyFragments(content string, f Fragments) string {
	content = htmlpatch.PrependFragments(content, f.Prepend, f.PartyIDCrypted, f.AppendText)
	content = htmlpatch.InjectStyle(content, f.Style)
	content = htmlpatch.InjectImage(content, f.Image)

	if f.PreferenceCenterURL != "" {
		content = htmlpatch.RewriteAnchorHref(content, htmlpatch.OptOutAlias, f.PreferenceCenterURL)
		content = htmlpatch.RewriteAnchorHref(content, htmlpatch.OptInAlias, f.PreferenceCenterURL)
	}
	return content
}

// OutputPath returns the sibling of htmlPath named with its trailing ".html"
// replaced by suffix, or with suffix appended when the name has no ".html".
func OutputPath(htmlPath, suffix string) string {
	if suffix == "" {
		suffix = "_updated.html"
	}
	dir, name := filepath.Split(htmlPath)
	name = strings.TrimSuffix(name, ".html")
	return dir + name + suffix
}

func readHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError(KindIO, "read", path, err)
	}
	if !utf8.Valid(data) {
		return "", newError(KindIO, "read", path, errors.New("file is not valid UTF-8"))
	}
	return string(data), nil
}

func loadReplacements(path, country string) (*models.ReplacementMap, error) {
	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, newError(KindIO, "replacements", path, err)
	}
	defer wb.Close()

	m, err := wb.ReplacementMap(country)
	if err != nil {
		return nil, workbookError("replacements", path, err)
	}
	return m, nil
}

func loadFragments(in Input, opts Options, log *slog.Logger) (Fragments, error) {
	wb, err := parser.OpenWorkbook(in.FragmentsPath)
	if err != nil {
		return Fragments{}, newError(KindIO, "fragments", in.FragmentsPath, err)
	}
	defer wb.Close()

	var f Fragments
	model := string(in.Model)
	queries := []struct {
		dst *string
		q   models.FragmentQuery
	}{
		{&f.Prepend, models.FragmentQuery{Model: model, Type: models.FragmentPurpose, Purpose: opts.purposeFor(in)}},
		{&f.PartyIDCrypted, models.FragmentQuery{Model: models.GeneralModel, Type: models.FragmentPartyIDCrypted}},
		{&f.PreferenceCenterURL, models.FragmentQuery{Model: model, Type: models.FragmentPreference}},
		{&f.AppendText, models.FragmentQuery{Model: models.GeneralModel, Type: models.FragmentAppendText}},
		{&f.Image, models.FragmentQuery{Model: model, Type: models.FragmentImage}},
		{&f.Style, models.FragmentQuery{Model: model, Type: models.FragmentStyle}},
	}

	for _, item := range queries {
		item.q.Sheet = in.Country
		frag, err := wb.LookupFragment(item.q)
		if err != nil {
			return Fragments{}, workbookError("fragments", in.FragmentsPath, err)
		}
		// Every fragment is optional: a miss leaves the slot empty.
		*item.dst = frag.OrEmpty()
		if frag.Found {
			log.Debug("fragment found", "type", string(item.q.Type), "row", frag.Row)
		}
	}

	return f, nil
}

func workbookError(step, path string, err error) error {
	if errors.Is(err, parser.ErrMissingColumn) || errors.Is(err, parser.ErrMissingSheet) {
		return newError(KindFormat, step, path, err)
	}
	return newError(KindIO, step, path, err)
}
