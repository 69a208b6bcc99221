package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nyhetsindex"
)

// Ensure ListingExtractor implements nyhetsindex.ListingExtractor.
var _ nyhetsindex.ListingExtractor = (*ListingExtractor)(nil)

// containerTags are the ancestor tags considered listing-item containers.
var containerTags = map[string]bool{
	"article": true,
	"li":      true,
	"div":     true,
}

// maxAncestorLevels bounds the walk from an anchor up to its container.
const maxAncestorLevels = 3

// ListingExtractor discovers news items on a listing page by matching
// anchors against the site's news path prefix.
//
// Known precision limitation: when an item container has no <time>
// element, the container's entire cleaned text is used as the raw date,
// which can capture unrelated surrounding text. The date normalizer
// later resolves or discards it.
type ListingExtractor struct {
	origin     string // site origin, e.g. https://www.linkoping.se
	pathPrefix string // root-relative news path, e.g. /nyheter/
}

// NewListingExtractor creates a ListingExtractor for the given site
// origin and root-relative news path prefix.
func NewListingExtractor(origin, pathPrefix string) *ListingExtractor {
	return &ListingExtractor{
		origin:     strings.TrimSuffix(origin, "/"),
		pathPrefix: pathPrefix,
	}
}

// Extract returns candidate news items in document order, deduplicated
// by exact URL (first occurrence wins), capped at maxItems. Items whose
// title cleans to "" are discarded.
func (e *ListingExtractor) Extract(html string, maxItems int) ([]nyhetsindex.ListingItem, error) {
	if maxItems <= 0 {
		return nil, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nyhetsindex.Errorf(nyhetsindex.EINVALID, "failed to parse listing HTML: %v", err)
	}

	selector := fmt.Sprintf(`a[href^="%s"], a[href^="%s"]`, e.pathPrefix, e.origin+e.pathPrefix)

	var items []nyhetsindex.ListingItem
	seen := make(map[string]bool)

	doc.Find(selector).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, exists := a.Attr("href")
		if !exists || href == "" {
			return true
		}
		url := e.absoluteURL(href)
		if seen[url] {
			return true
		}

		container := findContainer(a)

		var title string
		if heading := container.Find("h1, h2, h3").First(); heading.Length() > 0 {
			title = cleanSelection(heading)
		} else {
			title = cleanSelection(a)
		}
		if title == "" {
			return true
		}

		items = append(items, nyhetsindex.ListingItem{
			Title:   title,
			RawDate: rawDate(container),
			URL:     url,
		})
		seen[url] = true
		return len(items) < maxItems
	})

	return items, nil
}

// absoluteURL resolves a root-relative href against the site origin.
// Already-absolute URLs pass through unchanged.
func (e *ListingExtractor) absoluteURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return e.origin + href
}

// findContainer walks up from the anchor to the nearest ancestor whose
// tag is a listing-item container, at most maxAncestorLevels up. Falls
// back to the anchor itself when no such ancestor exists.
func findContainer(a *goquery.Selection) *goquery.Selection {
	container := a
	for range maxAncestorLevels {
		parent := container.Parent()
		if parent.Length() == 0 {
			break
		}
		container = parent
		if containerTags[goquery.NodeName(container)] {
			break
		}
	}
	return container
}

// rawDate derives the raw date text for an item: a <time> element's
// datetime attribute, then its text content, then the container's entire
// cleaned text as a noisy last resort.
func rawDate(container *goquery.Selection) string {
	timeEl := container.Find("time").First()
	if timeEl.Length() > 0 {
		if datetime, ok := timeEl.Attr("datetime"); ok && datetime != "" {
			return datetime
		}
		if text := cleanSelection(timeEl); text != "" {
			return text
		}
	}
	return cleanSelection(container)
}
