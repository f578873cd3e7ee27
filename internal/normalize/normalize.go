package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// invisibleElements are HTML elements whose text content is never visible
// to a visitor and must not influence compliance scoring.
var invisibleElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// multiNewline matches runs of two or more consecutive newlines.
var multiNewline = regexp.MustCompile(`\n{2,}`)

// Text extracts the visible text of an HTML document as a single
// newline-joined string. Script, style and noscript subtrees are dropped,
// each text fragment is trimmed, and runs of blank lines are collapsed to
// a single newline.
//
// Text never fails: malformed or empty markup yields an empty string.
// Normalization is idempotent, so feeding already-normalized text back in
// returns it unchanged.
func Text(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// html.Parse recovers from almost anything; if it still fails,
		// treat the page as having no visible text.
		return ""
	}

	fragments := make([]string, 0, 64)
	collectText(doc, &fragments)

	return multiNewline.ReplaceAllString(strings.Join(fragments, "\n"), "\n")
}

// collectText walks the node tree depth-first, appending trimmed visible
// text fragments in document order.
func collectText(n *html.Node, fragments *[]string) {
	if n.Type == html.ElementNode && invisibleElements[n.Data] {
		return
	}

	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*fragments = append(*fragments, text)
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, fragments)
	}
}
