package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdiary-service/internal/domain/entity"
)

func TestDedupPassengers_CaseFoldedNames(t *testing.T) {
	passengers := []entity.PassengerRecord{
		{Title: "Mr", FirstName: "John", LastName: "Smith"},
		{FirstName: "JOHN", LastName: "SMITH"},
		{FirstName: "Jane", LastName: "Doe"},
	}

	result := DedupPassengers(passengers)
	require.Len(t, result, 2)

	// First occurrence wins, original casing preserved
	assert.Equal(t, "John", result[0].FirstName)
	assert.Equal(t, "Mr", result[0].Title)
	assert.Equal(t, "Jane", result[1].FirstName)
}

func TestDedupPassengers_WhitespaceCollapsed(t *testing.T) {
	passengers := []entity.PassengerRecord{
		{FirstName: "Mary  Anne", LastName: "Lee"},
		{FirstName: " mary anne ", LastName: "lee"},
	}

	assert.Len(t, DedupPassengers(passengers), 1)
}

func TestDedupVenues_AddressPrefixKey(t *testing.T) {
	venues := []entity.VenueRecord{
		{Name: "Cafe Central", Address: "Herrengasse 14, 1010 Vienna"},
		{Name: "CAFE CENTRAL", Address: "Herrengasse 14"},
		{Name: "Cafe Central", Address: "Somewhere else entirely 99"},
	}

	result := DedupVenues(venues)
	require.Len(t, result, 2)

	assert.Equal(t, "Herrengasse 14, 1010 Vienna", result[0].Address)
	assert.Equal(t, "Somewhere else entirely 99", result[1].Address)
}

func TestDedupHotels_NameAndCheckIn(t *testing.T) {
	hotels := []entity.HotelRecord{
		{Name: "The Standard", CheckInDate: "2025-08-09"},
		{Name: "the standard", CheckInDate: "2025-08-09"},
		{Name: "The Standard", CheckInDate: "2025-09-01"}, // return visit kept
	}

	assert.Len(t, DedupHotels(hotels), 2)
}

func TestDedupFlights_NumberAndDepartureDate(t *testing.T) {
	flights := []entity.FlightRecord{
		{FlightNumber: "AA100", Departure: entity.FlightPoint{Date: "2025-08-09"}},
		{FlightNumber: "aa100", Departure: entity.FlightPoint{Date: "2025-08-09"}},
		{FlightNumber: "AA100", Departure: entity.FlightPoint{Date: "2025-08-16"}},
	}

	result := DedupFlights(flights)
	require.Len(t, result, 2)
	assert.Equal(t, "2025-08-09", result[0].Departure.Date)
	assert.Equal(t, "2025-08-16", result[1].Departure.Date)
}

func TestDedup_EmptyInput(t *testing.T) {
	assert.Empty(t, DedupPassengers(nil))
	assert.Empty(t, DedupVenues(nil))
	assert.Empty(t, DedupHotels(nil))
	assert.Empty(t, DedupFlights(nil))
}
