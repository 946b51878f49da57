package repository

import (
	"context"
	"time"

	"tripdiary-service/internal/domain/entity"
)

// DocumentRepository defines the interface for travel document storage
type DocumentRepository interface {
	Save(ctx context.Context, doc *entity.TravelDocument) error
	FindByDocumentID(ctx context.Context, documentID string) (*entity.TravelDocument, error)
	FindByTripID(ctx context.Context, tripID string) ([]*entity.TravelDocument, error)
	FindUnprocessed(ctx context.Context, limit int) ([]*entity.TravelDocument, error)
	UpdateStatusByDocumentID(ctx context.Context, documentID string, status string, startedAt time.Time) error
	UpdateProcessStepsByDocumentID(ctx context.Context, documentID string, steps entity.ProcessSteps) error
	MarkAsProcessedByDocumentID(ctx context.Context, documentID, status, errorDetail string, extractedData map[string]interface{}) error
	ResetProcessingDocuments(ctx context.Context) error
}
