package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/internal/domain/repository"
	"tripdiary-service/pkg/logger"
	"tripdiary-service/pkg/metrics"
	"tripdiary-service/pkg/utils"
)

// TripProcessor drives the document-to-itinerary pipeline: it fuses the
// extraction batches of a trip's documents, synthesizes the daily
// schedule, attaches parsed venues, dedups every record family and
// persists the aggregate.
type TripProcessor struct {
	documentRepo  repository.DocumentRepository
	itineraryRepo repository.ItineraryRepository
	airportRepo   repository.AirportRepository
	router        ContentRouter
	fuser         *TripFuser
	schedule      *ScheduleBuilder
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewTripProcessor creates a new trip processor
func NewTripProcessor(
	documentRepo repository.DocumentRepository,
	itineraryRepo repository.ItineraryRepository,
	airportRepo repository.AirportRepository,
	router ContentRouter,
	fuser *TripFuser,
	schedule *ScheduleBuilder,
	m *metrics.Metrics,
	logger logger.Logger,
) *TripProcessor {
	return &TripProcessor{
		documentRepo:  documentRepo,
		itineraryRepo: itineraryRepo,
		airportRepo:   airportRepo,
		router:        router,
		fuser:         fuser,
		schedule:      schedule,
		metrics:       m,
		logger:        logger,
	}
}

// ProcessPendingDocuments picks up unprocessed documents, groups them by
// trip in arrival order and processes each trip once
func (tp *TripProcessor) ProcessPendingDocuments(ctx context.Context) error {
	if err := tp.documentRepo.ResetProcessingDocuments(ctx); err != nil {
		tp.logger.Error("Failed to reset stale processing documents", "error", err)
	}

	docs, err := tp.documentRepo.FindUnprocessed(ctx, 100)
	if err != nil {
		tp.logger.Error("Failed to get unprocessed documents", "error", err)
		return err
	}

	if len(docs) == 0 {
		return nil
	}

	tp.logger.Info("Found unprocessed documents", "count", len(docs))

	// Group by trip preserving document order; iteration over the ordered
	// trip list keeps processing deterministic.
	tripOrder := make([]string, 0, len(docs))
	byTrip := make(map[string][]*entity.TravelDocument)
	for _, doc := range docs {
		if _, ok := byTrip[doc.TripID]; !ok {
			tripOrder = append(tripOrder, doc.TripID)
		}
		byTrip[doc.TripID] = append(byTrip[doc.TripID], doc)
	}

	for _, tripID := range tripOrder {
		if err := tp.ProcessTrip(ctx, tripID, byTrip[tripID]); err != nil {
			tp.logger.Error("Failed to process trip", "tripId", tripID, "error", err)
		}
	}

	return nil
}

// ProcessTrip fuses the documents of one trip into a single itinerary and
// marks every document with the outcome
func (tp *TripProcessor) ProcessTrip(ctx context.Context, tripID string, docs []*entity.TravelDocument) error {
	tp.logger.Info("Starting trip processing", "tripId", tripID, "documentCount", len(docs))
	started := time.Now()

	for _, doc := range docs {
		if err := tp.documentRepo.UpdateStatusByDocumentID(ctx, doc.DocumentID, entity.StatusProcessing, time.Now()); err != nil {
			tp.logger.Error("Failed to update status to PROCESSING", "documentId", doc.DocumentID, "error", err)
		}
	}

	batches := make([]entity.ExtractionBatch, 0, len(docs))
	for _, doc := range docs {
		batches = append(batches, doc.Batch)
	}

	itinerary := tp.fuser.Fuse(batches)
	steps := entity.ProcessSteps{BatchFused: true}
	tp.updateSteps(ctx, docs, steps)

	// Explicit dedup pass; fusion keeps everything on purpose
	itinerary.Flights = DedupFlights(itinerary.Flights)
	itinerary.Hotels = DedupHotels(itinerary.Hotels)
	itinerary.Passengers = DedupPassengers(itinerary.Passengers)
	steps.Deduplicated = true

	itinerary.DailySchedule = tp.schedule.BuildSchedule(
		itinerary.TripWindow.StartDate,
		itinerary.TripWindow.EndDate,
		itinerary.Flights,
	)
	steps.ScheduleBuilt = true
	tp.updateSteps(ctx, docs, steps)

	if itinerary.DailySchedule[0].ParseError != "" {
		tp.logger.Warn("Schedule degraded to parse-error entry",
			"tripId", tripID,
			"startDate", itinerary.TripWindow.StartDate,
			"endDate", itinerary.TripWindow.EndDate)
		tp.metrics.ScheduleParseFailures.Inc()
	}

	var contributed map[string]bool
	itinerary, contributed = tp.attachVenues(docs, itinerary, &steps)
	tp.updateSteps(ctx, docs, steps)

	tp.enrichDestination(ctx, &itinerary)

	itinerary.TripID = tripID
	now := time.Now()
	if existing, err := tp.itineraryRepo.FindByTripID(ctx, tripID); err == nil && existing != nil {
		itinerary.ID = existing.ID
		itinerary.CreatedAt = existing.CreatedAt
	} else {
		itinerary.ID = uuid.NewString()
		itinerary.CreatedAt = now
	}
	itinerary.UpdatedAt = now

	if err := tp.itineraryRepo.Upsert(ctx, &itinerary); err != nil {
		tp.logger.Error("Failed to save itinerary", "tripId", tripID, "error", err)
		tp.metrics.ErrorsCount.WithLabelValues("itinerary_upsert").Inc()
		tp.markDocuments(ctx, docs, entity.StatusFailed, err.Error(), nil)
		return err
	}

	extracted := map[string]interface{}{
		"destination":    itinerary.TripWindow.Destination,
		"startDate":      itinerary.TripWindow.StartDate,
		"endDate":        itinerary.TripWindow.EndDate,
		"flightCount":    len(itinerary.Flights),
		"hotelCount":     len(itinerary.Hotels),
		"passengerCount": len(itinerary.Passengers),
		"dayCount":       len(itinerary.DailySchedule),
		"summary":        utils.RenderItinerarySummary(itinerary),
	}

	// Documents that carried neither batch records nor parseable venue
	// content are skipped rather than completed
	for _, doc := range docs {
		status := entity.StatusCompleted
		if !contributed[doc.DocumentID] {
			status = entity.StatusSkipped
		}
		if err := tp.documentRepo.MarkAsProcessedByDocumentID(ctx, doc.DocumentID, status, "", extracted); err != nil {
			tp.logger.Error("Failed to mark document as processed",
				"documentId", doc.DocumentID,
				"status", status,
				"error", err)
		}
	}

	tp.metrics.DocumentsProcessed.Add(float64(len(docs)))
	tp.metrics.ItinerariesFused.Inc()
	tp.metrics.ProcessingTime.Observe(time.Since(started).Seconds())

	tp.logger.Info("Trip processing completed",
		"tripId", tripID,
		"destination", itinerary.TripWindow.Destination,
		"days", len(itinerary.DailySchedule),
		"elapsed", time.Since(started).String())

	return nil
}

// attachVenues routes every content block to its handler and attaches the
// deduplicated venue lists. It also reports which documents contributed
// anything, batch records or venues, to the itinerary.
func (tp *TripProcessor) attachVenues(docs []*entity.TravelDocument, itinerary entity.Itinerary, steps *entity.ProcessSteps) (entity.Itinerary, map[string]bool) {
	lists := map[string][]entity.VenueRecord{}
	kinds := []string{entity.VenueKindRestaurants, entity.VenueKindAttractions, entity.VenueKindEvents}
	contributed := make(map[string]bool, len(docs))

	for _, doc := range docs {
		if !emptyBatch(doc.Batch) {
			contributed[doc.DocumentID] = true
		}

		parsed := 0
		for _, block := range doc.ContentBlocks {
			handler := tp.router.GetHandler(block.Section)
			if handler == nil {
				tp.logger.Debug("No content handler for section",
					"section", block.Section,
					"documentId", doc.DocumentID)
				continue
			}
			venues := handler.Parse(block.Text)
			if len(venues) == 0 {
				continue
			}
			lists[handler.Kind()] = append(lists[handler.Kind()], venues...)
			parsed += len(venues)
		}
		if parsed > 0 {
			contributed[doc.DocumentID] = true
		}
		steps.VenuesParsed += parsed
	}

	for _, kind := range kinds {
		venues := DedupVenues(lists[kind])
		if len(venues) == 0 {
			continue
		}
		itinerary = itinerary.WithVenues(kind, venues)
		tp.metrics.VenuesParsed.Add(float64(len(venues)))
	}

	return itinerary, contributed
}

func emptyBatch(batch entity.ExtractionBatch) bool {
	return batch.Destination == "" &&
		batch.Dates == nil &&
		len(batch.Flights) == 0 &&
		len(batch.Hotels) == 0 &&
		len(batch.Passengers) == 0
}

// enrichDestination swaps the placeholder destination for the airport
// reference city when the database knows the first arrival airport
func (tp *TripProcessor) enrichDestination(ctx context.Context, itinerary *entity.Itinerary) {
	if itinerary.TripWindow.Destination != DefaultDestination {
		return
	}
	tp.metrics.DestinationFallbacks.Inc()

	if tp.airportRepo == nil || len(itinerary.Flights) == 0 {
		return
	}
	code := strings.ToUpper(strings.TrimSpace(itinerary.Flights[0].Arrival.Airport))
	if code == "" {
		return
	}

	airport, err := tp.airportRepo.GetByCode(ctx, code)
	if err != nil {
		tp.logger.Debug("Airport reference lookup failed", "code", code, "error", err)
		return
	}
	if airport.CityName != "" {
		tp.logger.Info("Destination enriched from airport reference",
			"code", code,
			"city", airport.CityName)
		itinerary.TripWindow.Destination = airport.CityName
	}
}

func (tp *TripProcessor) updateSteps(ctx context.Context, docs []*entity.TravelDocument, steps entity.ProcessSteps) {
	for _, doc := range docs {
		if err := tp.documentRepo.UpdateProcessStepsByDocumentID(ctx, doc.DocumentID, steps); err != nil {
			tp.logger.Error("Failed to update process steps", "documentId", doc.DocumentID, "error", err)
		}
	}
}

func (tp *TripProcessor) markDocuments(ctx context.Context, docs []*entity.TravelDocument, status, errorDetail string, extracted map[string]interface{}) {
	for _, doc := range docs {
		if err := tp.documentRepo.MarkAsProcessedByDocumentID(ctx, doc.DocumentID, status, errorDetail, extracted); err != nil {
			tp.logger.Error("Failed to mark document as processed",
				"documentId", doc.DocumentID,
				"status", status,
				"error", err)
		}
	}
}
