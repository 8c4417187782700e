package tools

import (
	"strings"

	"golang.org/x/net/html"
)

// stripMarkup drops residual HTML tags from an API text field. The search API
// is asked for plain text (no_html=1) but related-topic snippets occasionally
// carry anchor markup anyway.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	node, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var b strings.Builder
	extractText(node, &b, false)
	return compactWhitespace(b.String())
}

func extractText(n *html.Node, b *strings.Builder, inHidden bool) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript":
			inHidden = true
		}
	}
	if !inHidden && n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, b, inHidden)
	}
}

func compactWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
