package sfmcconv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]any
}

func writeWorkbook(t *testing.T, dir, file string, sheets ...testSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			row := row
			require.NoError(t, f.SetSheetRow(s.name, fmt.Sprintf("A%d", r+1), &row))
		}
	}

	path := filepath.Join(dir, file)
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const scenarioHTML = `<html><head></head><body><div id='_two50'></div><img src="x"/>&c=%%jobid%%%3E</body></html>`

func TestConvertScenario(t *testing.T) {
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "mail.html", scenarioHTML+"<p>Bonjour</p>")
	replacements := writeWorkbook(t, dir, "dict.xlsx", testSheet{name: "FR", rows: [][]any{
		{"old", "new"},
		{"Bonjour", "Hello"},
	}})
	fragments := writeWorkbook(t, dir, "add.xlsx",
		testSheet{name: "list", rows: [][]any{{"Purpose"}}},
		testSheet{name: "FR", rows: [][]any{
			{"model", "type", "purpose", "code"},
			{"Renault", "image", "", "<img src='tracker.gif'/>"},
		}},
	)

	res, err := Convert(Input{
		HTMLPath:         htmlPath,
		ReplacementsPath: replacements,
		FragmentsPath:    fragments,
		Country:          "FR",
		Model:            ModelRenault,
	}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "mail_updated.html"), res.OutputPath)

	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "\n\n\n<html>"), "empty fragments still stack three newlines: %q", content)
	assert.Contains(t, content, "<body><img src='tracker.gif'/>")
	assert.NotContains(t, content, "_two50")
	assert.Contains(t, content, "Hello")
	assert.NotContains(t, content, "Bonjour")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	require.NoError(t, err)
	src, ok := doc.Find("body img").First().Attr("src")
	require.True(t, ok)
	assert.Equal(t, "tracker.gif", src)

	original, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, scenarioHTML+"<p>Bonjour</p>", string(original), "input must not be modified")

	assert.Equal(t, 0, res.Usage.URLOccurrences["images/"])
	assert.Equal(t, []string{"targetData", "recipient."}, res.Usage.KeywordOrder)
}

const fullTemplate = `<!DOCTYPE html>
<html>
<head>
<style type="text/css">
@media print { .noprint { display: none } }
</style>
</head>
<body class="mail">
<!-- hide description -->
<table class="preheader"><tr><td>Internal description</td></tr></table>
<p>Bonjour %%=v(targetData.firstname)=%%</p>
<img src="images/logo.png">
<div id='_two50'></div>
<img src="https://t.enews.myrenault.fr/pixel.gif" width="1" height="1"/>&c=%%jobid%%">
<a href="<%%view_email_url%%>" alias="Opt-out link">Version en ligne</a>
<a href="https://old.example.com/unsub" alias="Opt-out link">Se désinscrire</a>
<a href="https://old.example.com/sub" alias="Opt-in link">S'inscrire</a>
<p>%%=v(recipient.id)=%%</p>
</body>
</html>
`

func fullFragmentSheets() []testSheet {
	return []testSheet{
		{name: "list", rows: [][]any{{"Purpose"}, {"Marketing"}, {"Service"}}},
		{name: "PRT", rows: [][]any{
			{"model", "type", "purpose", "code"},
			{"Dacia", "purpose", "Service", "<!-- purpose: service -->"},
			{"Dacia", "purpose", "Marketing", "<!-- purpose: marketing -->"},
			{"generale", "partyIdCrypted", "", "%%[ SET @party = AttributeValue('partyIdCrypted') ]%%"},
			{"Dacia", "prefrence", "", "https://prefs.dacia.pt/?p=%%=v(@party)=%%"},
			{"generale", "append_text", "", "%%[ SET @brand = 'Dacia' ]%%"},
			{"Dacia", "image", "", "<img src='https://track.dacia.pt/open.gif'/>"},
			{"Dacia", "style", "", "<style>.dacia{color:#646B52}</style>"},
			{"Renault", "image", "", "<img src='renault.gif'/>"},
		}},
	}
}

func TestConvertFullPipeline(t *testing.T) {
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "campaign.html", fullTemplate)
	replacements := writeWorkbook(t, dir, "dict.xlsx", testSheet{name: "PRT", rows: [][]any{
		{"old", "new"},
		{"Bonjour", "Olá"},
		{"Version en ligne", "Ver online"},
		{"Se désinscrire", "Cancelar subscrição"},
	}})
	fragments := writeWorkbook(t, dir, "add.xlsx", fullFragmentSheets()...)

	res, err := Convert(Input{
		HTMLPath:         htmlPath,
		ReplacementsPath: replacements,
		FragmentsPath:    fragments,
		Country:          "PRT",
		Model:            ModelDacia,
		Purpose:          "Marketing",
	}, DefaultOptions())
	require.NoError(t, err)

	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content,
		"<!-- purpose: marketing -->\n"+
			"%%[ SET @party = AttributeValue('partyIdCrypted') ]%%\n"+
			"%%[ SET @brand = 'Dacia' ]%%\n"+
			"<!DOCTYPE html>"))

	assert.NotContains(t, content, "hide description")
	assert.NotContains(t, content, "Internal description")
	assert.NotContains(t, content, "@media print")
	assert.Contains(t, content, "<style>.dacia{color:#646B52}</style>")
	assert.Contains(t, content, "<img src='https://track.dacia.pt/open.gif'/>")
	assert.NotContains(t, content, "_two50")
	assert.Contains(t, content, "Olá %%=v(targetData.firstname)=%%")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	require.NoError(t, err)

	hrefs := map[string]string{}
	doc.Find("a[alias]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs[s.Text()] = href
	})
	assert.Equal(t, map[string]string{
		"Ver online":          "<%%view_email_url%%>",
		"Cancelar subscrição": "https://prefs.dacia.pt/?p=%%=v(@party)=%%",
		"S'inscrire":          "https://prefs.dacia.pt/?p=%%=v(@party)=%%",
	}, hrefs)

	assert.Equal(t, 0, res.Usage.URLOccurrences["https://t.enews.myrenault.fr"])
	assert.Equal(t, 1, res.Usage.URLOccurrences["images/"])
	assert.Equal(t, 1, res.Usage.Keywords["targetData"].Count)
	assert.Equal(t, 1, res.Usage.Keywords["recipient."].Count)
	require.Len(t, res.Usage.Keywords["targetData"].Lines, 1)
	assert.Equal(t, "<p>Olá %%=v(targetData.firstname)=%%</p>",
		strings.Split(content, "\n")[res.Usage.Keywords["targetData"].Lines[0]-1])
}

func TestConvertPurposeOnlyForPurposeCountries(t *testing.T) {
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "campaign.html", "<html><head></head><body>x</body></html>")
	replacements := writeWorkbook(t, dir, "dict.xlsx", testSheet{name: "PRT", rows: [][]any{{"old", "new"}, {"x", "y"}}})
	fragments := writeWorkbook(t, dir, "add.xlsx", fullFragmentSheets()...)

	in := Input{
		HTMLPath:         htmlPath,
		ReplacementsPath: replacements,
		FragmentsPath:    fragments,
		Country:          "PRT",
		Model:            ModelDacia,
		Purpose:          "Marketing",
	}

	opts := DefaultOptions()
	opts.PurposeCountries = nil
	res, err := Convert(in, opts)
	require.NoError(t, err)

	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "<!-- purpose: service -->\n"), "first purpose row wins without a purpose filter")
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "mail.html", scenarioHTML)
	latin1 := writeFile(t, dir, "latin1.html", "caf\xe9")
	replacements := writeWorkbook(t, dir, "dict.xlsx",
		testSheet{name: "FR", rows: [][]any{{"old", "new"}, {"a", "b"}}},
		testSheet{name: "EMPTY", rows: [][]any{{"old", "new"}}},
		testSheet{name: "BAD", rows: [][]any{{"from", "to"}, {"a", "b"}}},
	)
	fragments := writeWorkbook(t, dir, "add.xlsx",
		testSheet{name: "FR", rows: [][]any{{"model", "kind", "code"}, {"Renault", "image", "x"}}},
	)

	base := Input{
		HTMLPath:         htmlPath,
		ReplacementsPath: replacements,
		FragmentsPath:    fragments,
		Country:          "FR",
		Model:            ModelRenault,
	}

	tests := []struct {
		name   string
		modify func(*Input)
		target error
	}{
		{"missing paths", func(in *Input) { in.FragmentsPath = "" }, ErrConfig},
		{"missing country", func(in *Input) { in.Country = "" }, ErrConfig},
		{"unknown model", func(in *Input) { in.Model = "Alpine" }, ErrConfig},
		{"unreadable html", func(in *Input) { in.HTMLPath = filepath.Join(dir, "absent.html") }, ErrIO},
		{"html not utf-8", func(in *Input) { in.HTMLPath = latin1 }, ErrIO},
		{"unreadable replacements", func(in *Input) { in.ReplacementsPath = htmlPath }, ErrIO},
		{"country sheet missing", func(in *Input) { in.Country = "DE" }, ErrConfig},
		{"country sheet empty", func(in *Input) { in.Country = "EMPTY" }, ErrConfig},
		{"replacement columns missing", func(in *Input) { in.Country = "BAD" }, ErrFormat},
		{"fragment columns missing", func(in *Input) {}, ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.modify(&in)

			res, err := Convert(in, DefaultOptions())
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.target)

			var convErr *Error
			assert.ErrorAs(t, err, &convErr)
		})
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*_updated.html"))
	require.NoError(t, err)
	assert.Empty(t, matches, "no output may be written when a run aborts")
}

func TestConvertWriteFailure(t *testing.T) {
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "mail.html", scenarioHTML)
	replacements := writeWorkbook(t, dir, "dict.xlsx", testSheet{name: "FR", rows: [][]any{{"old", "new"}, {"a", "b"}}})
	fragments := writeWorkbook(t, dir, "add.xlsx", testSheet{name: "FR", rows: [][]any{{"model", "type", "code"}}})

	// A directory in the way of the output file makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "mail_updated.html"), 0755))

	_, err := Convert(Input{
		HTMLPath:         htmlPath,
		ReplacementsPath: replacements,
		FragmentsPath:    fragments,
		Country:          "FR",
		Model:            ModelRenault,
	}, DefaultOptions())
	assert.ErrorIs(t, err, ErrIO)
}

func TestApplyFragmentsWithoutPreferenceCenter(t *testing.T) {
	input := `<head></head><body><a href="x" alias="Opt-out link">o</a></body>`

	got := ApplyFragments(input, Fragments{Style: "<style/>"})

	assert.Equal(t, "\n\n\n"+`<head><style/></head><body><a href="x" alias="Opt-out link">o</a></body>`, got)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path     string
		suffix   string
		expected string
	}{
		{filepath.Join("dir", "mail.html"), "_updated.html", filepath.Join("dir", "mail_updated.html")},
		{filepath.Join("a.html.d", "mail.html"), "_updated.html", filepath.Join("a.html.d", "mail_updated.html")},
		{"mail.htm", "_updated.html", "mail.htm_updated.html"},
		{"mail.html", "", "mail_updated.html"},
		{"mail.html", "_pt.html", "mail_pt.html"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.path, tt.suffix); got != tt.expected {
			t.Errorf("OutputPath(%q, %q) = %q, expected %q", tt.path, tt.suffix, got, tt.expected)
		}
	}
}
