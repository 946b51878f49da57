package repository

import (
	"context"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItineraryRepository implements ItineraryRepository
type MongoItineraryRepository struct {
	collection *mongo.Collection
}

// NewMongoItineraryRepository creates a new itinerary repository
func NewMongoItineraryRepository(db *mongo.Database) repository.ItineraryRepository {
	collection := db.Collection("itineraries")

	// One itinerary per trip
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"tripId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoItineraryRepository{
		collection: collection,
	}
}

// FindByTripID finds an itinerary by trip ID
func (r *MongoItineraryRepository) FindByTripID(ctx context.Context, tripID string) (*entity.Itinerary, error) {
	var itinerary entity.Itinerary
	err := r.collection.FindOne(ctx, bson.M{"tripId": tripID}).Decode(&itinerary)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// Upsert creates or updates the itinerary for a trip
func (r *MongoItineraryRepository) Upsert(ctx context.Context, itinerary *entity.Itinerary) error {
	updateDoc := bson.M{
		"_id":           itinerary.ID,
		"tripId":        itinerary.TripID,
		"tripWindow":    itinerary.TripWindow,
		"flights":       itinerary.Flights,
		"hotels":        itinerary.Hotels,
		"passengers":    itinerary.Passengers,
		"dailySchedule": itinerary.DailySchedule,
		"restaurants":   itinerary.Restaurants,
		"attractions":   itinerary.Attractions,
		"events":        itinerary.Events,
		"createdAt":     itinerary.CreatedAt,
		"updatedAt":     itinerary.UpdatedAt,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"tripId": itinerary.TripID}

	_, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{"$set": updateDoc},
		opts,
	)

	return err
}
