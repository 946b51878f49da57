package entity

// TripDates carries an explicit date range supplied by one extraction source.
type TripDates struct {
	StartDate string `json:"start_date,omitempty" bson:"startDate,omitempty"`
	EndDate   string `json:"end_date,omitempty" bson:"endDate,omitempty"`
}

// ExtractionBatch is one source's raw contribution of trip fields before
// fusion. A batch with nothing set is valid input and contributes nothing
// to the merge. Batches are never mutated by the engine.
type ExtractionBatch struct {
	Destination string            `json:"destination,omitempty" bson:"destination,omitempty"`
	Dates       *TripDates        `json:"dates,omitempty" bson:"dates,omitempty"`
	Flights     []FlightRecord    `json:"flights,omitempty" bson:"flights,omitempty"`
	Hotels      []HotelRecord     `json:"hotels,omitempty" bson:"hotels,omitempty"`
	Passengers  []PassengerRecord `json:"passengers,omitempty" bson:"passengers,omitempty"`
}
