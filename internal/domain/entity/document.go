package entity

import (
	"time"
)

// Document process status
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusSkipped    = "SKIPPED"
)

// ContentBlock is one free-form text block produced by an upstream
// content-generation call, labeled with the section it was generated for.
type ContentBlock struct {
	Section string `bson:"section"`
	Text    string `bson:"text"`
}

// TravelDocument represents one uploaded travel document together with the
// extraction batch and content blocks an upstream analysis produced for it.
// The batch is immutable once stored; a timed-out analysis stores an empty
// batch so fusion stays deterministic.
type TravelDocument struct {
	DocumentID       string                 `bson:"documentId"`
	TripID           string                 `bson:"tripId"`
	Filename         string                 `bson:"filename"`
	UploadedAt       time.Time              `bson:"uploadedAt"`
	Batch            ExtractionBatch        `bson:"batch"`
	ContentBlocks    []ContentBlock         `bson:"contentBlocks,omitempty"`
	ProcessedAt      time.Time              `bson:"processedAt"`
	ProcessStatus    string                 `bson:"processStatus"`
	ProcessStartedAt time.Time              `bson:"processStartedAt"`
	ProcessSteps     ProcessSteps           `bson:"processSteps"`
	ErrorDetail      string                 `bson:"errorDetail"`
	ExtractedData    map[string]interface{} `bson:"extractedData"`
}

type ProcessSteps struct {
	BatchFused    bool `bson:"batchFused"`
	ScheduleBuilt bool `bson:"scheduleBuilt"`
	VenuesParsed  int  `bson:"venuesParsed"` // venue records attached from this document's content blocks
	Deduplicated  bool `bson:"deduplicated"`
}
