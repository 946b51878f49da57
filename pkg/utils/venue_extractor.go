package utils

import (
	"strings"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/pkg/logger"
)

// VenueExtractor chains the strict and loose parsers: strict first, loose
// only when strict finds nothing in non-empty input. It never fails; the
// worst outcome for unparseable text is an empty list.
type VenueExtractor struct {
	strict *VenueParser
	loose  *LooseVenueParser
	logger logger.Logger
}

// NewVenueExtractor creates the strict-then-loose parser chain
func NewVenueExtractor(logger logger.Logger) *VenueExtractor {
	return &VenueExtractor{
		strict: NewVenueParser(logger),
		loose:  NewLooseVenueParser(logger),
		logger: logger,
	}
}

// Parse returns the strict parse when it yields records, otherwise the
// loose parse, otherwise an empty list.
func (e *VenueExtractor) Parse(text string) []entity.VenueRecord {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	venues := e.strict.ParseVenues(text)
	if len(venues) > 0 {
		return venues
	}

	e.logger.Debug("Strict parser found no venues, trying loose parser")
	return e.loose.ParseVenues(text)
}
