package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
)

var (
	trackedURLs     = []string{"https://t.enews.myrenault.fr", "images/"}
	trackedKeywords = []string{"targetData", "recipient."}
)

func TestBuild(t *testing.T) {
	content := "<img src=\"images/a.png\">\r\n" +
		"%%=v(targetData.name)=%% %%=v(targetData.city)=%%\n" +
		"<a href=\"https://t.enews.myrenault.fr/x\">images/images/</a>\r" +
		"recipient.id targetData"

	r := Build(content, trackedURLs, trackedKeywords)

	assert.Equal(t, map[string]int{
		"https://t.enews.myrenault.fr": 1,
		"images/":                      3,
	}, r.URLOccurrences)
	assert.Equal(t, models.KeywordUsage{Count: 3, Lines: []int{2, 4}}, r.Keywords["targetData"])
	assert.Equal(t, models.KeywordUsage{Count: 1, Lines: []int{4}}, r.Keywords["recipient."])
}

func TestBuildNoHits(t *testing.T) {
	r := Build("<html></html>", trackedURLs, trackedKeywords)

	assert.Equal(t, 0, r.URLOccurrences["images/"])
	assert.Equal(t, models.KeywordUsage{Count: 0, Lines: []int{}}, r.Keywords["targetData"])
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"\n\nx", []string{"", "", "x"}},
		{"a\n\r\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SplitLines(tt.input), "SplitLines(%q)", tt.input)
	}
}

func TestRender(t *testing.T) {
	r := Build("images/\ntargetData\ntargetData recipient.", trackedURLs, trackedKeywords)

	got := Render("/tmp/mail_updated.html", r)

	expected := "Updated file saved as: /tmp/mail_updated.html\n" +
		"Occurrences of images to update: https://t.enews.myrenault.fr: 0, images/: 1\n" +
		"targetData: 2 occurrences (Lines: 2, 3)\n" +
		"recipient.: 1 occurrences (Lines: 3)\n"
	assert.Equal(t, expected, got)
}
