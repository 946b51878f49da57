package templates

import (
	"strings"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/pkg/logger"
	"tripdiary-service/pkg/utils"
)

// VenueContentHandler handles one family of venue content blocks. The
// section keywords decide routing; the shared extractor does the parsing.
type VenueContentHandler struct {
	kind      string
	keywords  []string
	extractor *utils.VenueExtractor
	logger    logger.Logger
}

// NewRestaurantContentHandler creates a handler for dining sections
func NewRestaurantContentHandler(extractor *utils.VenueExtractor, logger logger.Logger) *VenueContentHandler {
	return &VenueContentHandler{
		kind:      entity.VenueKindRestaurants,
		keywords:  []string{"restaurant", "dining", "food", "eat"},
		extractor: extractor,
		logger:    logger,
	}
}

// NewAttractionContentHandler creates a handler for sightseeing sections
func NewAttractionContentHandler(extractor *utils.VenueExtractor, logger logger.Logger) *VenueContentHandler {
	return &VenueContentHandler{
		kind:      entity.VenueKindAttractions,
		keywords:  []string{"attraction", "sight", "museum", "activity", "things to do"},
		extractor: extractor,
		logger:    logger,
	}
}

// NewEventContentHandler creates a handler for event sections
func NewEventContentHandler(extractor *utils.VenueExtractor, logger logger.Logger) *VenueContentHandler {
	return &VenueContentHandler{
		kind:      entity.VenueKindEvents,
		keywords:  []string{"event", "concert", "show", "festival"},
		extractor: extractor,
		logger:    logger,
	}
}

// CanHandle determines if this handler covers the given section label
func (h *VenueContentHandler) CanHandle(section string) bool {
	sectionLower := strings.ToLower(section)
	for _, keyword := range h.keywords {
		if strings.Contains(sectionLower, keyword) {
			return true
		}
	}
	return false
}

// Kind returns the venue list this handler feeds on the itinerary
func (h *VenueContentHandler) Kind() string {
	return h.kind
}

// Parse extracts venue records from a free-form text block
func (h *VenueContentHandler) Parse(text string) []entity.VenueRecord {
	venues := h.extractor.Parse(text)
	if len(venues) == 0 {
		h.logger.Debug("No venues extracted from content block", "kind", h.kind)
		return nil
	}

	h.logger.Info("Extracted venues from content block",
		"kind", h.kind,
		"count", len(venues))
	return venues
}
