package htmlpatch

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Anchor aliases recognised by RewriteAnchorHref.
const (
	OptOutAlias = "Opt-out link"
	OptInAlias  = "Opt-in link"
)

// ViewEmailPlaceholder is the href of the "view in browser" anchor, which
// must keep pointing at the hosted copy even when aliased as an opt-out link.
const ViewEmailPlaceholder = "<%%view_email_url%%>"

// RewriteAnchorHref sets the double-quoted href of every <a> start tag whose
// alias attribute equals alias. For OptOutAlias, anchors whose href is
// ViewEmailPlaceholder are skipped. Anchors inside comments (including
// Outlook conditional comments) and inside raw-text elements are rewritten
// too. All other bytes are preserved.
func RewriteAnchorHref(text, alias, newHref string) string {
	z := html.NewTokenizer(strings.NewReader(text))

	var b strings.Builder
	b.Grow(len(text))

	// Set after a start tag whose content the tokenizer returns as one text token.
	rawText := false

	for {
		tt := z.Next()
		// Copy before TagName, which lowercases the buffer in place.
		raw := string(z.Raw())

		switch tt {
		case html.ErrorToken:
			// Only io.EOF is possible without a size limit; keep any partial token.
			b.WriteString(raw)
			return b.String()

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			a := atom.Lookup(name)
			if hasAttr && a == atom.A && attrValue(z, "alias") == alias {
				raw = setHref(raw, alias, newHref)
			}
			rawText = tt == html.StartTagToken && isRawTextElement(a)
			b.WriteString(raw)
			continue

		case html.CommentToken:
			raw = rewriteComment(raw, alias, newHref)

		case html.TextToken:
			if rawText {
				raw = RewriteAnchorHref(raw, alias, newHref)
			}
		}

		rawText = false
		b.WriteString(raw)
	}
}

// rewriteComment rewrites anchors in the body of a <!-- --> comment. Other
// comment-like tokens (<!x>, <?x>, </ x>) are returned unchanged.
func rewriteComment(raw, alias, newHref string) string {
	const open, end = "<!--", "-->"
	if !strings.HasPrefix(raw, open) {
		return raw
	}
	body, tail := raw[len(open):], ""
	if strings.HasSuffix(body, end) {
		body, tail = body[:len(body)-len(end)], end
	}
	return open + RewriteAnchorHref(body, alias, newHref) + tail
}

func isRawTextElement(a atom.Atom) bool {
	switch a {
	case atom.Iframe, atom.Noembed, atom.Noframes, atom.Noscript, atom.Plaintext,
		atom.Script, atom.Style, atom.Textarea, atom.Title, atom.Xmp:
		return true
	}
	return false
}

// attrValue returns the value of key on the current tag, consuming the
// remaining attributes.
func attrValue(z *html.Tokenizer, key string) string {
	value := ""
	found := false
	for {
		k, v, more := z.TagAttr()
		if !found && string(k) == key {
			value = string(v)
			found = true
		}
		if !more {
			return value
		}
	}
}

func setHref(tag, alias, newHref string) string {
	start, end, ok := hrefValue(tag)
	if !ok {
		return tag
	}
	if alias == OptOutAlias && tag[start:end] == ViewEmailPlaceholder {
		return tag
	}
	return tag[:start] + newHref + tag[end:]
}

// hrefValue returns the bounds of the value of the first href attribute of a
// raw start tag. ok is false when there is no href or its value is not
// double-quoted. Attributes are split the way the tokenizer splits them, so
// href-like text inside another attribute's value is never matched.
func hrefValue(tag string) (start, end int, ok bool) {
	i := 1
	for i < len(tag) && !isTagSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' {
		i++
	}

	for i < len(tag) {
		for i < len(tag) && (isTagSpace(tag[i]) || tag[i] == '/') {
			i++
		}
		if i >= len(tag) || tag[i] == '>' {
			return 0, 0, false
		}

		nameStart := i
		for i < len(tag) && !isTagSpace(tag[i]) && tag[i] != '=' && tag[i] != '/' && tag[i] != '>' {
			i++
		}
		isHref := strings.EqualFold(tag[nameStart:i], "href")

		j := i
		for j < len(tag) && isTagSpace(tag[j]) {
			j++
		}
		if j >= len(tag) || tag[j] != '=' {
			if isHref {
				return 0, 0, false
			}
			i = j
			continue
		}
		j++
		for j < len(tag) && isTagSpace(tag[j]) {
			j++
		}

		if j < len(tag) && (tag[j] == '"' || tag[j] == '\'') {
			quote := tag[j]
			k := strings.IndexByte(tag[j+1:], quote)
			if k < 0 {
				return 0, 0, false
			}
			if isHref {
				return j + 1, j + 1 + k, quote == '"'
			}
			i = j + 1 + k + 1
			continue
		}

		for j < len(tag) && !isTagSpace(tag[j]) && tag[j] != '>' {
			j++
		}
		if isHref {
			return 0, 0, false
		}
		i = j
	}
	return 0, 0, false
}

func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
