package extract

import (
	"regexp"
	"strings"
)

// anchorRe matches a timestamp anchor at the start of a line:
// "[DD/MM/YY HH:MM:SS] ". Day and month may be one or two digits and the year
// two or four, matching what exporting clients actually emit. The timestamp
// itself is the first submatch.
var anchorRe = regexp.MustCompile(`(?m)^\[(\d{1,2}/\d{1,2}(?:/\d{2,4})?\s\d{2}:\d{2}:\d{2})\]\s`)

// RawEntry is one timestamp-anchored unit of transcript text. Transient:
// produced by Segment, consumed immediately by Classify, never stored.
type RawEntry struct {
	Timestamp string
	Body      string
}

// Segment splits normalized transcript text into ordered raw entries. Each
// entry owns everything from after its anchor up to the next line that itself
// begins with an anchor, so multi-line message bodies stay whole. Text before
// the first anchor is discarded. A simple line split cannot do this; the scan
// is anchor-delimited by design.
func Segment(content string) []RawEntry {
	locs := anchorRe.FindAllStringSubmatchIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}

	entries := make([]RawEntry, 0, len(locs))
	for i, loc := range locs {
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		body := content[loc[1]:end]
		body = strings.TrimSuffix(body, "\n")

		entries = append(entries, RawEntry{
			Timestamp: content[loc[2]:loc[3]],
			Body:      body,
		})
	}

	return entries
}
