package utils

import (
	"regexp"
	"strings"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/pkg/logger"
)

// LooseVenueParser is the fallback for text that does not follow the
// primary name-marker format. It treats any emphasized span as a venue
// name and scans the next few lines for an address or description.
type LooseVenueParser struct {
	logger logger.Logger
}

// NewLooseVenueParser creates a new loose venue parser
func NewLooseVenueParser(logger logger.Logger) *LooseVenueParser {
	return &LooseVenueParser{
		logger: logger,
	}
}

var boldSpanRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

var listMarkerRe = regexp.MustCompile(`^\s*(?:\d+\s*[.)]\s*|[-*•]\s+)`)

// ParseVenues treats every line with a bold span as opening a record, then
// looks ahead up to four lines: the first address-like line becomes the
// address, the first other non-empty line becomes the description.
func (p *LooseVenueParser) ParseVenues(text string) []entity.VenueRecord {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")

	var venues []entity.VenueRecord

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		match := boldSpanRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}

		venue := entity.VenueRecord{Name: name}

		for j := i + 1; j < len(lines) && j <= i+looseLookahead; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if boldSpanRe.MatchString(next) {
				break
			}
			next = listMarkerRe.ReplaceAllString(next, "")
			if venue.Address == "" && looksLikeAddress(next) {
				venue.Address = next
				continue
			}
			if venue.Description == "" {
				venue.Description = next
			}
		}

		venues = append(venues, venue)
	}

	p.logger.Debug("Loose venue parse completed", "venueCount", len(venues))
	return venues
}
