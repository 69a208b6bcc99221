// Package goquery provides HTML heuristics for news extraction: text
// cleaning, listing-page item discovery, and detail-page body extraction.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CleanText strips markup from an HTML fragment (or plain text) and
// normalizes whitespace: visible text nodes are joined by single spaces,
// whitespace runs collapse to one space, and the result is trimmed.
// The parse is tolerant of malformed markup and the function is
// idempotent.
func CleanText(htmlOrText string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlOrText))
	if err != nil {
		return collapseWhitespace(htmlOrText)
	}
	var parts []string
	for _, n := range doc.Nodes {
		collectText(n, &parts)
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

// cleanSelection returns the cleaned visible text of a selection.
func cleanSelection(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

// collectText appends the trimmed text nodes under n, skipping script and
// style subtrees.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
