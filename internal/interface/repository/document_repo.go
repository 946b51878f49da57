// internal/interface/repository/document_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocumentRepository implements the DocumentRepository interface
type MongoDocumentRepository struct {
	collection *mongo.Collection
}

// NewMongoDocumentRepository creates a new MongoDB travel document repository
func NewMongoDocumentRepository(db *mongo.Database) repository.DocumentRepository {
	collection := db.Collection("travel_documents")

	// Create indexes for better performance
	ctx := context.Background()

	documentIDIndex := mongo.IndexModel{
		Keys:    bson.M{"documentId": 1},
		Options: options.Index().SetUnique(true),
	}

	// Index on tripId for grouping documents per trip
	tripIDIndex := mongo.IndexModel{
		Keys: bson.M{"tripId": 1},
	}

	// Compound index for finding unprocessed documents efficiently
	unprocessedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "processStatus", Value: 1},
			{Key: "uploadedAt", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		documentIDIndex,
		tripIDIndex,
		unprocessedIndex,
	})

	return &MongoDocumentRepository{
		collection: collection,
	}
}

// Save saves a travel document to MongoDB
func (r *MongoDocumentRepository) Save(ctx context.Context, doc *entity.TravelDocument) error {
	if doc.ProcessStatus == "" {
		doc.ProcessStatus = entity.StatusPending
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// FindByDocumentID finds a travel document by document ID
func (r *MongoDocumentRepository) FindByDocumentID(ctx context.Context, documentID string) (*entity.TravelDocument, error) {
	var doc entity.TravelDocument
	err := r.collection.FindOne(ctx, bson.M{"documentId": documentID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// FindByTripID finds all documents belonging to a trip in upload order
func (r *MongoDocumentRepository) FindByTripID(ctx context.Context, tripID string) ([]*entity.TravelDocument, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"tripId": tripID}, &options.FindOptions{
		Sort: bson.D{{Key: "uploadedAt", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*entity.TravelDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// FindUnprocessed finds unprocessed documents (PENDING status or empty)
func (r *MongoDocumentRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entity.TravelDocument, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"processStatus": ""},
			{"processStatus": entity.StatusPending},
			{"processStatus": bson.M{"$exists": false}},
		},
	}

	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "uploadedAt", Value: 1}}, // Process oldest first
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*entity.TravelDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// UpdateStatusByDocumentID updates just the status and started time
func (r *MongoDocumentRepository) UpdateStatusByDocumentID(ctx context.Context, documentID string, status string, startedAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"processStatus": status,
		},
	}

	// Only set processStartedAt when moving to PROCESSING
	if status == entity.StatusProcessing && !startedAt.IsZero() {
		update["$set"].(bson.M)["processStartedAt"] = startedAt
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"documentId": documentID},
		update,
	)

	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no document found with documentId: %s", documentID)
	}

	return nil
}

// UpdateProcessStepsByDocumentID updates the processing steps
func (r *MongoDocumentRepository) UpdateProcessStepsByDocumentID(ctx context.Context, documentID string, steps entity.ProcessSteps) error {
	update := bson.M{
		"$set": bson.M{
			"processSteps": steps,
		},
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"documentId": documentID},
		update,
	)
	return err
}

// MarkAsProcessedByDocumentID marks a document as processed with full details
func (r *MongoDocumentRepository) MarkAsProcessedByDocumentID(ctx context.Context, documentID, status, errorDetail string, extractedData map[string]interface{}) error {
	update := bson.M{
		"$set": bson.M{
			"processedAt":   time.Now(),
			"processStatus": status,
		},
	}

	if len(extractedData) > 0 {
		update["$set"].(bson.M)["extractedData"] = extractedData
	}

	if errorDetail != "" {
		update["$set"].(bson.M)["errorDetail"] = errorDetail
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"documentId": documentID},
		update,
	)

	if err != nil {
		return fmt.Errorf("failed to mark as processed: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no document found with documentId: %s", documentID)
	}

	return nil
}

// ResetProcessingDocuments resets documents stuck in PROCESSING state back to PENDING
func (r *MongoDocumentRepository) ResetProcessingDocuments(ctx context.Context) error {
	// Anything processing for more than 10 minutes is considered stale
	staleTime := time.Now().Add(-10 * time.Minute)

	filter := bson.M{
		"processStatus": entity.StatusProcessing,
		"$or": []bson.M{
			{"processStartedAt": bson.M{"$lt": staleTime}},
			{"processStartedAt": bson.M{"$exists": false}},
		},
	}

	update := bson.M{
		"$set": bson.M{
			"processStatus": entity.StatusPending,
			"errorDetail":   "Reset from stale PROCESSING state",
		},
	}

	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}
