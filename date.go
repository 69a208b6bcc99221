package nyhetsindex

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// swedishMonths maps lowercase Swedish month names to month numbers.
var swedishMonths = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"mars":      time.March,
	"april":     time.April,
	"maj":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"augusti":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var (
	isoDateRE     = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})(?:T\d{2}:\d{2})?`)
	swedishDateRE = regexp.MustCompile(`(\d{1,2})\s+([a-zåäö]+)\s+(\d{4})`)
)

// NormalizeDate converts heterogeneous date text into a canonical ISO
// calendar date (YYYY-MM-DD). Strategies are tried in order, first match
// wins: an embedded ISO date substring (optionally followed by a time of
// day), then a Swedish long-form date like "28 augusti 2024". Both use
// leftmost-match semantics. Invalid calendar dates (day 32, month 13)
// never fail hard; the next strategy is tried instead.
//
// The second return value is false when no strategy produced a valid
// date.
func NormalizeDate(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if iso, ok := parseISODate(text); ok {
		return iso, true
	}
	if iso, ok := parseSwedishDate(text); ok {
		return iso, true
	}
	return "", false
}

// parseISODate finds an embedded YYYY-MM-DD substring and validates it as
// a calendar date.
func parseISODate(text string) (string, bool) {
	m := isoDateRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	t, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// parseSwedishDate parses dates like "28 augusti 2024".
func parseSwedishDate(text string) (string, bool) {
	m := swedishDateRE.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return "", false
	}
	month, ok := swedishMonths[m[2]]
	if !ok {
		return "", false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return "", false
	}
	// time.Date normalizes out-of-range values (day 32 becomes the 1st of
	// the next month), so reject anything that did not round-trip.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
