package nyhetsindex

// ListingExtractor discovers candidate news items on a listing page.
type ListingExtractor interface {
	// Extract returns candidate items in document order, deduplicated by
	// exact URL (first occurrence wins), at most maxItems long. Items
	// without a derivable title are discarded.
	Extract(html string, maxItems int) ([]ListingItem, error)
}

// DetailExtractor extracts the plain text body from an article page.
type DetailExtractor interface {
	// Extract returns the main body text of the page. It tolerates
	// malformed HTML and returns "" when no text can be extracted.
	Extract(html string) (string, error)
}
