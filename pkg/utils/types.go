package utils

import "regexp"

// Venue field labels recognized by the strict parser, in evaluation order.
// First matching pattern wins per line; first occurrence wins per field.
type venueField int

const (
	fieldAddress venueField = iota
	fieldPrice
	fieldHours
	fieldCuisine
	fieldDescription
)

// fieldPattern pairs a label matcher with the field it assigns
type fieldPattern struct {
	field venueField
	re    *regexp.Regexp
}

// Labeled-field patterns are matched case-insensitively and tolerate
// leading list markers and emphasis delimiters around the label, including
// the markdown habit of bolding the colon ("**Address:** ...").
var fieldPatterns = []fieldPattern{
	{fieldAddress, regexp.MustCompile(`(?i)^\s*[-*•]?\s*\*{0,2}(?:address|location)\*{0,2}\s*[:：\-–]\s*\*{0,2}\s*(.+)$`)},
	{fieldPrice, regexp.MustCompile(`(?i)^\s*[-*•]?\s*\*{0,2}(?:price(?:\s+range)?|cost)\*{0,2}\s*[:：\-–]\s*\*{0,2}\s*(.+)$`)},
	{fieldHours, regexp.MustCompile(`(?i)^\s*[-*•]?\s*\*{0,2}(?:hours|opening\s+hours|open)\*{0,2}\s*[:：\-–]\s*\*{0,2}\s*(.+)$`)},
	{fieldCuisine, regexp.MustCompile(`(?i)^\s*[-*•]?\s*\*{0,2}(?:cuisine|type)\*{0,2}\s*[:：\-–]\s*\*{0,2}\s*(.+)$`)},
	{fieldDescription, regexp.MustCompile(`(?i)^\s*[-*•]?\s*\*{0,2}(?:why(?:\s+recommended)?|description|about|highlights?)\*{0,2}\s*[:：\-–]\s*\*{0,2}\s*(.+)$`)},
}

// An unlabeled line this short is discarded as noise (bullet fragments,
// separators); longer ones become free-text description.
const minDescriptionLen = 20

// How many lines after a bold span the loose parser scans for an address
const looseLookahead = 4
