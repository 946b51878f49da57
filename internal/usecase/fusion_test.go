package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/pkg/logger"
)

func fixedClock(value string) func() time.Time {
	t, err := time.Parse(ISODateLayout, value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestFuser() *TripFuser {
	return NewTripFuserWithClock(logger.NewNopLogger(), fixedClock("2025-03-10"))
}

func flightTo(number, airport, city, depDate, arrDate string) entity.FlightRecord {
	return entity.FlightRecord{
		FlightNumber: number,
		Departure:    entity.FlightPoint{Date: depDate},
		Arrival:      entity.FlightPoint{Airport: airport, City: city, Date: arrDate},
	}
}

func TestFuse_ExplicitDestinationBeatsHotelCity(t *testing.T) {
	// Explicit destination wins even when it arrives in a later batch
	batches := []entity.ExtractionBatch{
		{},
		{Hotels: []entity.HotelRecord{{Name: "Hotel Lutetia", City: "Paris"}}},
		{Destination: "London"},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "London", itinerary.TripWindow.Destination)
}

func TestFuse_HotelCityBeatsArrivalCity(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{
			Flights: []entity.FlightRecord{flightTo("BA41", "NRT", "Tokyo", "2025-04-01", "2025-04-02")},
			Hotels:  []entity.HotelRecord{{Name: "Hotel Okura", City: "Osaka"}},
		},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "Osaka", itinerary.TripWindow.Destination)
}

func TestFuse_ArrivalCityFallback(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{
			Flights: []entity.FlightRecord{flightTo("BA41", "NRT", "Tokyo", "2025-04-01", "2025-04-02")},
			Hotels:  []entity.HotelRecord{{Name: "Somewhere Inn"}}, // no city
		},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "Tokyo", itinerary.TripWindow.Destination)
}

func TestFuse_AirportCodeFallback(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{Flights: []entity.FlightRecord{flightTo("AA100", "jfk", "", "2025-04-01", "")}},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "New York", itinerary.TripWindow.Destination)
}

func TestFuse_DestinationPlaceholder(t *testing.T) {
	itinerary := newTestFuser().Fuse([]entity.ExtractionBatch{{}})
	assert.Equal(t, DefaultDestination, itinerary.TripWindow.Destination)
}

func TestFuse_ExplicitDatesWin(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{
			Dates:   &entity.TripDates{StartDate: "2025-08-01", EndDate: "2025-08-05"},
			Flights: []entity.FlightRecord{flightTo("AA100", "JFK", "", "2025-08-09", "2025-08-09")},
		},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "2025-08-01", itinerary.TripWindow.StartDate)
	assert.Equal(t, "2025-08-05", itinerary.TripWindow.EndDate)
}

func TestFuse_StartDateFromFirstFlightDeparture(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{Flights: []entity.FlightRecord{
			flightTo("AA100", "JFK", "", "2025-08-09", "2025-08-09"),
			flightTo("AA101", "LHR", "", "2025-08-14", "2025-08-15"),
		}},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "2025-08-09", itinerary.TripWindow.StartDate)
	// End date comes from the last flight's departure
	assert.Equal(t, "2025-08-14", itinerary.TripWindow.EndDate)
}

func TestFuse_DatesNormalizedToISO(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{Dates: &entity.TripDates{StartDate: "08/09/2025", EndDate: "08/14/2025"}},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "2025-08-09", itinerary.TripWindow.StartDate)
	assert.Equal(t, "2025-08-14", itinerary.TripWindow.EndDate)
}

func TestFuse_HotelDatesFallback(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{Hotels: []entity.HotelRecord{{
			Name:         "Hotel Arts",
			City:         "Barcelona",
			CheckInDate:  "2025-06-02",
			CheckOutDate: "2025-06-06",
		}}},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "2025-06-02", itinerary.TripWindow.StartDate)
	assert.Equal(t, "2025-06-06", itinerary.TripWindow.EndDate)
}

func TestFuse_SynthesizedDates(t *testing.T) {
	// Clock pinned to 2025-03-10: start is now+1d, end start+7d
	itinerary := newTestFuser().Fuse([]entity.ExtractionBatch{{}})

	assert.Equal(t, "2025-03-11", itinerary.TripWindow.StartDate)
	assert.Equal(t, "2025-03-18", itinerary.TripWindow.EndDate)
}

func TestFuse_ConcatenatesWithoutDropping(t *testing.T) {
	first := []entity.FlightRecord{
		flightTo("AA100", "JFK", "", "2025-08-09", "2025-08-09"),
		flightTo("AA200", "JFK", "", "2025-08-14", "2025-08-14"),
	}
	second := []entity.FlightRecord{
		flightTo("AA100", "JFK", "", "2025-08-09", "2025-08-09"), // duplicate kept
	}

	batches := []entity.ExtractionBatch{
		{Flights: first, Passengers: []entity.PassengerRecord{{FirstName: "John", LastName: "Smith"}}},
		{Flights: second, Passengers: []entity.PassengerRecord{{FirstName: "JOHN", LastName: "SMITH"}}},
	}

	itinerary := newTestFuser().Fuse(batches)

	// Fusion never dedups; order follows batch order
	require.Len(t, itinerary.Flights, 3)
	assert.Equal(t, "AA100", itinerary.Flights[0].FlightNumber)
	assert.Equal(t, "AA200", itinerary.Flights[1].FlightNumber)
	assert.Equal(t, "AA100", itinerary.Flights[2].FlightNumber)
	assert.Len(t, itinerary.Passengers, 2)
}

func TestFuse_Deterministic(t *testing.T) {
	batches := []entity.ExtractionBatch{
		{
			Destination: "Rome",
			Flights:     []entity.FlightRecord{flightTo("AZ601", "FCO", "Rome", "2025-09-01", "2025-09-01")},
		},
	}

	fuser := newTestFuser()
	first := fuser.Fuse(batches)
	second := fuser.Fuse(batches)
	assert.Equal(t, first, second)
}

func TestFuse_LoneOutboundFlightDoesNotEndTrip(t *testing.T) {
	// One outbound flight plus a hotel stay: the stay bounds the trip
	batches := []entity.ExtractionBatch{
		{Flights: []entity.FlightRecord{flightTo("BA115", "", "New York", "2025-08-09", "")}},
		{Hotels: []entity.HotelRecord{{
			Name:         "Hotel X",
			City:         "New York",
			CheckInDate:  "2025-08-09",
			CheckOutDate: "2025-08-14",
		}}},
	}

	itinerary := newTestFuser().Fuse(batches)
	assert.Equal(t, "New York", itinerary.TripWindow.Destination)
	assert.Equal(t, "2025-08-09", itinerary.TripWindow.StartDate)
	assert.Equal(t, "2025-08-14", itinerary.TripWindow.EndDate)

	schedule := newTestScheduleBuilder().BuildSchedule(
		itinerary.TripWindow.StartDate,
		itinerary.TripWindow.EndDate,
		itinerary.Flights,
	)
	assert.Len(t, schedule, 6)
}

func TestFuse_MultiBatchEndToEnd(t *testing.T) {
	// Flight confirmation analyzed first, hotel booking second
	batches := []entity.ExtractionBatch{
		{
			Flights: []entity.FlightRecord{
				flightTo("AA100", "JFK", "", "2025-08-09", "2025-08-09"),
				flightTo("AA101", "LHR", "", "2025-08-14", "2025-08-14"),
			},
			Passengers: []entity.PassengerRecord{{FirstName: "John", LastName: "Smith"}},
		},
		{
			Hotels: []entity.HotelRecord{{
				Name:         "The Standard",
				CheckInDate:  "2025-08-09",
				CheckOutDate: "2025-08-14",
			}},
		},
	}

	itinerary := newTestFuser().Fuse(batches)

	assert.Equal(t, "New York", itinerary.TripWindow.Destination)
	assert.Equal(t, "2025-08-09", itinerary.TripWindow.StartDate)
	assert.Equal(t, "2025-08-14", itinerary.TripWindow.EndDate)
	assert.Len(t, itinerary.Flights, 2)
	assert.Len(t, itinerary.Hotels, 1)
	assert.Len(t, itinerary.Passengers, 1)
}
