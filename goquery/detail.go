package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nyhetsindex"
)

// Ensure DetailExtractor implements nyhetsindex.DetailExtractor.
var _ nyhetsindex.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor extracts the article body from a detail page.
// Preference order: the first <article> region, then the first <main>
// region, then the whole document. Within each region, paragraph text is
// concatenated; a region without paragraphs contributes its entire text.
type DetailExtractor struct{}

// NewDetailExtractor creates a new DetailExtractor.
func NewDetailExtractor() *DetailExtractor {
	return &DetailExtractor{}
}

// Extract returns the cleaned main body text of the page. Malformed HTML
// never errors; the degenerate case of no extractable text yields "".
func (e *DetailExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil
	}

	for _, selector := range []string{"article", "main"} {
		if region := doc.Find(selector).First(); region.Length() > 0 {
			return regionText(region), nil
		}
	}
	return regionText(doc.Selection), nil
}

// regionText joins the region's paragraph text with single spaces,
// falling back to the region's entire text when it has no paragraphs.
func regionText(region *goquery.Selection) string {
	var parts []string
	region.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := cleanSelection(p); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return cleanSelection(region)
	}
	return strings.Join(parts, " ")
}
