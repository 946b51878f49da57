package usecase

import (
	"tripdiary-service/internal/domain/entity"
)

// ContentHandler parses one family of free-form content blocks (dining,
// sightseeing, events) into venue records
type ContentHandler interface {
	// CanHandle determines if this handler covers the given section label
	CanHandle(section string) bool

	// Kind returns the venue list this handler feeds on the itinerary
	Kind() string

	// Parse extracts venue records from a free-form text block
	Parse(text string) []entity.VenueRecord
}

// ContentRouter routes content blocks to the appropriate handler based on
// their section label
type ContentRouter interface {
	// Register registers a handler for specific section labels
	Register(handler ContentHandler)

	// GetHandler returns the appropriate handler for a given section
	GetHandler(section string) ContentHandler
}
