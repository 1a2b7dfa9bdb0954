package ingest

import (
	"regexp"
	"strings"
)

// DefaultHeaderScan bounds how deep FindHeaderRow looks for a header row.
// Real workbooks carry a couple of title/blank rows above the header; data
// rows further down could coincidentally contain a label as a value.
const DefaultHeaderScan = 12

// HeaderNotFound is the sentinel returned when no row in the scan window
// matches the required labels.
const HeaderNotFound = -1

var espaciosRegex = regexp.MustCompile(`\s+`)

// NormalizeHeader canonicalizes a header cell for comparison: whitespace runs
// collapse to single spaces, the result is trimmed and uppercased. Matching
// is exact on the normalized form; there is no fuzzy or partial matching for
// headers.
func NormalizeHeader(s string) string {
	return strings.ToUpper(strings.TrimSpace(espaciosRegex.ReplaceAllString(s, " ")))
}

// FindHeaderRow returns the index of the first row, within the first maxScan
// rows, whose normalized cells are a superset of the normalized required
// labels, or HeaderNotFound. maxScan <= 0 uses DefaultHeaderScan.
func FindHeaderRow(rows [][]string, required []string, maxScan int) int {
	if maxScan <= 0 {
		maxScan = DefaultHeaderScan
	}
	limit := min(maxScan, len(rows))

	for i := 0; i < limit; i++ {
		present := make(map[string]bool, len(rows[i]))
		for _, cell := range rows[i] {
			present[NormalizeHeader(cell)] = true
		}

		ok := true
		for _, label := range required {
			if !present[NormalizeHeader(label)] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return HeaderNotFound
}
