package entity

import (
	"time"
)

// Flight event tags on a day schedule
const (
	EventDeparture = "departure"
	EventArrival   = "arrival"
)

// Venue list kinds attached to an itinerary
const (
	VenueKindRestaurants = "restaurants"
	VenueKindAttractions = "attractions"
	VenueKindEvents      = "events"
)

// FlightPoint is one endpoint of a flight segment. Dates are ISO
// YYYY-MM-DD in the final aggregate; raw extractor dates may arrive in
// other formats and are normalized during fusion.
type FlightPoint struct {
	Airport string `json:"airport,omitempty" bson:"airport,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	Date    string `json:"date,omitempty" bson:"date,omitempty"`
	Time    string `json:"time,omitempty" bson:"time,omitempty"`
}

// FlightRecord represents one extracted flight segment
type FlightRecord struct {
	FlightNumber     string      `json:"flight_number,omitempty" bson:"flightNumber,omitempty"`
	Airline          string      `json:"airline,omitempty" bson:"airline,omitempty"`
	Departure        FlightPoint `json:"departure,omitempty" bson:"departure,omitempty"`
	Arrival          FlightPoint `json:"arrival,omitempty" bson:"arrival,omitempty"`
	Seat             string      `json:"seat,omitempty" bson:"seat,omitempty"`
	Class            string      `json:"class,omitempty" bson:"class,omitempty"`
	BookingReference string      `json:"booking_reference,omitempty" bson:"bookingReference,omitempty"`
}

// HotelRecord represents one extracted hotel stay
type HotelRecord struct {
	Name               string `json:"name,omitempty" bson:"name,omitempty"`
	City               string `json:"city,omitempty" bson:"city,omitempty"`
	Address            string `json:"address,omitempty" bson:"address,omitempty"`
	CheckInDate        string `json:"check_in_date,omitempty" bson:"checkInDate,omitempty"`
	CheckOutDate       string `json:"check_out_date,omitempty" bson:"checkOutDate,omitempty"`
	ConfirmationNumber string `json:"confirmation_number,omitempty" bson:"confirmationNumber,omitempty"`
	RoomType           string `json:"room_type,omitempty" bson:"roomType,omitempty"`
}

// PassengerRecord represents one extracted traveler
type PassengerRecord struct {
	Title         string `json:"title,omitempty" bson:"title,omitempty"`
	FirstName     string `json:"first_name,omitempty" bson:"firstName,omitempty"`
	LastName      string `json:"last_name,omitempty" bson:"lastName,omitempty"`
	FrequentFlyer string `json:"frequent_flyer,omitempty" bson:"frequentFlyer,omitempty"`
}

// TripWindow is the resolved destination plus start/end dates for a trip.
// All three fields are always populated in a fused itinerary; ambiguity
// resolves to deterministic fallbacks, never to empty strings.
type TripWindow struct {
	Destination string `json:"destination" bson:"destination"`
	StartDate   string `json:"start_date" bson:"startDate"`
	EndDate     string `json:"end_date" bson:"endDate"`
}

// FlightEvent is a flight attached to a specific day, tagged with whether
// that day is its departure or arrival side. The same flight can appear on
// two different days, or twice on the same day for a turnaround.
type FlightEvent struct {
	Type   string       `json:"type" bson:"type"`
	Flight FlightRecord `json:"flight" bson:"flight"`
}

// DaySchedule is one calendar day's slot in the itinerary. ParseError is
// set only on the single degenerate entry produced when neither accepted
// date format parses the trip range.
type DaySchedule struct {
	DayNumber   int           `json:"day_number" bson:"dayNumber"`
	Date        string        `json:"date,omitempty" bson:"date,omitempty"`
	IsArrival   bool          `json:"is_arrival" bson:"isArrival"`
	IsDeparture bool          `json:"is_departure" bson:"isDeparture"`
	Flights     []FlightEvent `json:"flights,omitempty" bson:"flights,omitempty"`
	ParseError  string        `json:"parse_error,omitempty" bson:"parseError,omitempty"`
}

// Itinerary is the aggregate produced by one fusion call. It is treated as
// immutable; enrichment returns a new value via WithVenues.
type Itinerary struct {
	ID            string            `json:"id,omitempty" bson:"_id,omitempty"`
	TripID        string            `json:"trip_id,omitempty" bson:"tripId,omitempty"`
	TripWindow    TripWindow        `json:"trip_window" bson:"tripWindow"`
	Flights       []FlightRecord    `json:"flights,omitempty" bson:"flights,omitempty"`
	Hotels        []HotelRecord     `json:"hotels,omitempty" bson:"hotels,omitempty"`
	Passengers    []PassengerRecord `json:"passengers,omitempty" bson:"passengers,omitempty"`
	DailySchedule []DaySchedule     `json:"daily_schedule,omitempty" bson:"dailySchedule,omitempty"`
	Restaurants   []VenueRecord     `json:"restaurants,omitempty" bson:"restaurants,omitempty"`
	Attractions   []VenueRecord     `json:"attractions,omitempty" bson:"attractions,omitempty"`
	Events        []VenueRecord     `json:"events,omitempty" bson:"events,omitempty"`
	CreatedAt     time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// WithVenues returns a copy of the itinerary with the named venue list
// replaced. Unknown kinds return the itinerary unchanged.
func (i Itinerary) WithVenues(kind string, venues []VenueRecord) Itinerary {
	switch kind {
	case VenueKindRestaurants:
		i.Restaurants = venues
	case VenueKindAttractions:
		i.Attractions = venues
	case VenueKindEvents:
		i.Events = venues
	}
	return i
}
