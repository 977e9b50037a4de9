// Package htmlpatch holds the text transforms applied to an email template.
// Every function is pure: it returns a new string and never fails.
package htmlpatch

import (
	"regexp"
	"strings"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
)

// ApplyLiteralReplacements replaces every occurrence of each old string with
// its new string, pair by pair in map order. A later pair sees the output of
// the earlier ones.
func ApplyLiteralReplacements(text string, m *models.ReplacementMap) string {
	for _, p := range m.Pairs() {
		if p.Old == "" {
			continue
		}
		text = strings.ReplaceAll(text, p.Old, p.New)
	}
	return text
}

// CountOccurrences counts the non-overlapping, case-sensitive occurrences of
// each substring. Empty substrings count zero.
func CountOccurrences(text string, substrings []string) map[string]int {
	counts := make(map[string]int, len(substrings))
	for _, s := range substrings {
		if s == "" {
			counts[s] = 0
			continue
		}
		counts[s] = strings.Count(text, s)
	}
	return counts
}

var hideDescriptionRe = regexp.MustCompile(`<!--\s*hide description\s*-->\s*<([^>]+)>`)

// RemoveHeaderBlock deletes every "hide description" comment together with
// the element that directly follows it, up to the first closing tag of the
// same name. A comment whose element is never closed is left in place.
func RemoveHeaderBlock(text string) string {
	var b strings.Builder
	rest := text

	for {
		loc := hideDescriptionRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}

		closing := "</" + tagName(rest[loc[2]:loc[3]]) + ">"
		end := strings.Index(rest[loc[1]:], closing)
		if end < 0 {
			// Retry from the next byte: the opening "tag" may itself be another comment.
			b.WriteString(rest[:loc[0]+1])
			rest = rest[loc[0]+1:]
			continue
		}

		b.WriteString(rest[:loc[0]])
		rest = rest[loc[1]+end+len(closing):]
	}

	b.WriteString(rest)
	return b.String()
}

// tagName returns the element name of the inside of an opening tag.
func tagName(inner string) string {
	inner = strings.TrimSpace(inner)
	if i := strings.IndexAny(inner, " \t\r\n/"); i >= 0 {
		return inner[:i]
	}
	return inner
}
