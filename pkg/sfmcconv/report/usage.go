// Package report builds the usage report of a converted document.
package report

import (
	"fmt"
	"strings"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/htmlpatch"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
)

// Build counts each tracked URL and keyword over the whole content and
// records, per keyword, the 1-based numbers of the lines containing it.
// Counts come from a whole-text scan and are not derived from line hits.
func Build(content string, urls, keywords []string) models.UsageReport {
	r := models.UsageReport{
		URLOccurrences: htmlpatch.CountOccurrences(content, urls),
		Keywords:       make(map[string]models.KeywordUsage, len(keywords)),
		URLOrder:       append([]string(nil), urls...),
		KeywordOrder:   append([]string(nil), keywords...),
	}

	counts := htmlpatch.CountOccurrences(content, keywords)
	lines := SplitLines(content)

	for _, kw := range keywords {
		usage := models.KeywordUsage{Count: counts[kw], Lines: []int{}}
		if kw != "" {
			for i, line := range lines {
				if strings.Contains(line, kw) {
					usage.Lines = append(usage.Lines, i+1)
				}
			}
		}
		r.Keywords[kw] = usage
	}

	return r
}

// SplitLines splits s on "\n", "\r\n" and "\r". A trailing line break does
// not start an extra empty line.
func SplitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}

// Render formats the report as the lines shown to the user after a conversion.
func Render(outputPath string, r models.UsageReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Updated file saved as: %s\n", outputPath)

	urls := make([]string, 0, len(r.URLOrder))
	for _, u := range r.URLOrder {
		urls = append(urls, fmt.Sprintf("%s: %d", u, r.URLOccurrences[u]))
	}
	fmt.Fprintf(&b, "Occurrences of images to update: %s\n", strings.Join(urls, ", "))

	for _, kw := range r.KeywordOrder {
		usage := r.Keywords[kw]
		lines := make([]string, len(usage.Lines))
		for i, n := range usage.Lines {
			lines[i] = fmt.Sprint(n)
		}
		fmt.Fprintf(&b, "%s: %d occurrences (Lines: %s)\n", kw, usage.Count, strings.Join(lines, ", "))
	}

	return b.String()
}
