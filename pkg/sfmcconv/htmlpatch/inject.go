package htmlpatch

import (
	"regexp"
	"strings"
)

// PrependFragments stacks parts above text, each followed by a newline.
func PrependFragments(text string, parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	b.WriteString(text)
	return b.String()
}

var mediaPrintStyleRe = regexp.MustCompile(`(?s)<style[^>]*>\s*@media\s+print\s*\{.*?\}\s*[^<]*</style>`)

// InjectStyle replaces every <style> block opening with an @media print rule
// by style, even when style is empty. Without such a block, style is inserted
// before the first </head>; without </head>, text is returned unchanged.
func InjectStyle(text, style string) string {
	if mediaPrintStyleRe.MatchString(text) {
		return mediaPrintStyleRe.ReplaceAllLiteralString(text, style)
	}
	if i := strings.Index(text, "</head>"); i >= 0 {
		return text[:i] + style + text[i:]
	}
	return text
}

var trackingPixelRe = regexp.MustCompile(`<div id=['"]_two50['"]></div>\s*<img[^>]*>\s*&c=%%jobid%%[^>]*>`)

// InjectImage replaces the first legacy tracking block after the opening
// <body> tag with image. Without a <body tag, image is appended to text.
func InjectImage(text, image string) string {
	bodyPos := strings.Index(text, "<body")
	if bodyPos < 0 {
		return text + image
	}

	// An unterminated <body tag leaves bodyEnd at 0 and the whole text is searched.
	bodyEnd := 0
	if i := strings.IndexByte(text[bodyPos:], '>'); i >= 0 {
		bodyEnd = bodyPos + i + 1
	}

	after := text[bodyEnd:]
	loc := trackingPixelRe.FindStringIndex(after)
	if loc == nil {
		return text
	}
	return text[:bodyEnd] + after[:loc[0]] + image + after[loc[1]:]
}
