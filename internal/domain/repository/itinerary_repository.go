package repository

import (
	"context"

	"tripdiary-service/internal/domain/entity"
)

// ItineraryRepository defines the interface for fused itinerary storage
type ItineraryRepository interface {
	FindByTripID(ctx context.Context, tripID string) (*entity.Itinerary, error)
	Upsert(ctx context.Context, itinerary *entity.Itinerary) error
}
