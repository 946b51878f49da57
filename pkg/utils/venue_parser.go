package utils

import (
	"regexp"
	"strings"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/pkg/logger"
)

// VenueParser extracts venue records from free-form, markdown-like text.
// The input has no fixed grammar; the parser is a line-oriented state
// machine keyed on bold-delimited venue names, optionally preceded by a
// list number. Parsing is pure: same input, same output.
type VenueParser struct {
	logger logger.Logger
}

// NewVenueParser creates a new strict venue parser
func NewVenueParser(logger logger.Logger) *VenueParser {
	return &VenueParser{
		logger: logger,
	}
}

// A name marker is a line whose emphasized span opens a new record, e.g.
// "1. **Le Comptoir** - 9 Carrefour de l'Odeon, Paris"
var nameMarkerRe = regexp.MustCompile(`^\s*(?:\d+\s*[.)]\s*)?(?:[-*•]\s+)?\*\*([^*]+)\*\*[:.]?\s*(.*)$`)

// ParseVenues runs the strict state machine over the text and returns one
// record per detected name marker. Every returned record has a non-empty
// name; all other fields are set only if a matching line was found.
func (p *VenueParser) ParseVenues(text string) []entity.VenueRecord {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")

	var venues []entity.VenueRecord
	var current *entity.VenueRecord

	flush := func() {
		if current != nil && current.Name != "" {
			venues = append(venues, *current)
		}
		current = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Labeled fields are tested before the name marker so that bolded
		// labels ("**Address:** ...") are not mistaken for venue names.
		if current != nil && p.applyFieldPattern(current, line) {
			continue
		}

		if match := nameMarkerRe.FindStringSubmatch(line); match != nil {
			name := strings.TrimSpace(match[1])
			if name != "" {
				flush()
				current = &entity.VenueRecord{Name: name}
				if trailing := strings.TrimSpace(match[2]); trailing != "" {
					p.applyInlineTrailing(current, trailing)
				}
				continue
			}
		}

		if current == nil {
			continue
		}

		// Unlabeled lines long enough to be substantial become free-text
		// description; shorter ones are noise.
		if len(line) > minDescriptionLen {
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description = current.Description + " " + line
			}
		}
	}

	flush()

	p.logger.Debug("Strict venue parse completed", "venueCount", len(venues))
	return venues
}

// applyFieldPattern tests a line against the labeled-field table in order.
// The first matching pattern assigns its field; first occurrence wins.
func (p *VenueParser) applyFieldPattern(venue *entity.VenueRecord, line string) bool {
	for _, fp := range fieldPatterns {
		match := fp.re.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		value := strings.TrimSpace(strings.TrimRight(match[1], "*"))
		if value == "" {
			return true
		}
		switch fp.field {
		case fieldAddress:
			if venue.Address == "" {
				venue.Address = value
			}
		case fieldPrice:
			if venue.Price == "" {
				venue.Price = value
			}
		case fieldHours:
			if venue.Hours == "" {
				venue.Hours = value
			}
		case fieldCuisine:
			if venue.Cuisine == "" {
				venue.Cuisine = value
			}
		case fieldDescription:
			if venue.Description == "" {
				venue.Description = value
			}
		}
		return true
	}
	return false
}

// applyInlineTrailing handles the inline variant where the name line
// itself carries text after a separator. The trailing text is split into
// an address prefix up to a recognizable city/postal token; without one
// the whole text becomes the description.
func (p *VenueParser) applyInlineTrailing(venue *entity.VenueRecord, trailing string) {
	trailing = strings.TrimSpace(strings.TrimLeft(trailing, "-–—:"))
	if trailing == "" {
		return
	}

	address, description := splitAddressPrefix(trailing)
	if address != "" {
		venue.Address = address
		if description != "" {
			venue.Description = description
		}
		return
	}
	venue.Description = trailing
}

var (
	streetTokenRe = regexp.MustCompile(`(?i)(?:^|\s)\d+\s|\b(?:street|st\.?|avenue|ave\.?|road|rd\.?|boulevard|blvd\.?|lane|ln\.?|drive|dr\.?|plaza|square|place|rue|via|calle|strasse)\b`)
	postalCodeRe  = regexp.MustCompile(`\b\d{4,6}(?:-\d{4})?\b`)
	stateAbbrevRe = regexp.MustCompile(`\b(?:AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|SD|TN|TX|UT|VT|VA|WA|WV|WI|WY)\b`)
)

// knownCities covers destinations the upstream generators mention most;
// lookups are whole-word and case-insensitive.
var knownCities = []string{
	"New York", "Los Angeles", "San Francisco", "Chicago", "Boston",
	"London", "Paris", "Rome", "Barcelona", "Madrid", "Amsterdam",
	"Berlin", "Vienna", "Lisbon", "Tokyo", "Kyoto", "Osaka", "Singapore",
	"Hong Kong", "Bangkok", "Sydney", "Dubai",
}

func containsKnownCity(s string) bool {
	lower := strings.ToLower(s)
	for _, city := range knownCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			return true
		}
	}
	return false
}

// looksLikeAddress reports whether a text fragment carries an address-like
// token: a street keyword or leading number, a postal code, a US state
// abbreviation, or a recognizable city name.
func looksLikeAddress(s string) bool {
	return streetTokenRe.MatchString(s) ||
		postalCodeRe.MatchString(s) ||
		stateAbbrevRe.MatchString(s) ||
		containsKnownCity(s)
}

// splitAddressPrefix walks comma-separated segments and keeps the leading
// run of address-like segments as the address; the remainder joins back as
// description. Returns an empty address when the first segment is not
// address-like.
func splitAddressPrefix(text string) (address, description string) {
	segments := strings.Split(text, ",")
	cut := 0
	for i, segment := range segments {
		if looksLikeAddress(segment) {
			cut = i + 1
			continue
		}
		break
	}
	if cut == 0 {
		return "", ""
	}

	address = strings.TrimSpace(strings.Join(segments[:cut], ","))
	description = strings.TrimSpace(strings.Join(segments[cut:], ","))
	return address, description
}
