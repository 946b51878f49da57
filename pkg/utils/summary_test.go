package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripdiary-service/internal/domain/entity"
)

func testItinerary() entity.Itinerary {
	return entity.Itinerary{
		TripWindow: entity.TripWindow{
			Destination: "Paris",
			StartDate:   "2025-05-01",
			EndDate:     "2025-05-03",
		},
		Flights: []entity.FlightRecord{
			{FlightNumber: "AF1180"},
		},
		Passengers: []entity.PassengerRecord{
			{FirstName: "Jane", LastName: "Doe"},
		},
		DailySchedule: []entity.DaySchedule{
			{DayNumber: 1, Date: "2025-05-01", IsArrival: true, Flights: []entity.FlightEvent{
				{Type: entity.EventArrival, Flight: entity.FlightRecord{FlightNumber: "AF1180"}},
			}},
			{DayNumber: 2, Date: "2025-05-02"},
			{DayNumber: 3, Date: "2025-05-03", IsDeparture: true},
		},
	}
}

func TestRenderItinerarySummary(t *testing.T) {
	summary := RenderItinerarySummary(testItinerary())

	assert.True(t, strings.HasPrefix(summary, "Trip to Paris"))
	assert.Contains(t, summary, "Flights: 1  Hotels: 0  Passengers: 1")
	assert.Contains(t, summary, "Day 1 (2025-05-01) [arrival] AF1180 arrival")
	assert.Contains(t, summary, "Day 2 (2025-05-02)")
	assert.Contains(t, summary, "Day 3 (2025-05-03) [departure]")
}

func TestRenderItinerarySummary_ParseErrorDay(t *testing.T) {
	itinerary := testItinerary()
	itinerary.DailySchedule = []entity.DaySchedule{
		{DayNumber: 1, IsArrival: true, ParseError: "date parse failed"},
	}

	summary := RenderItinerarySummary(itinerary)
	assert.Contains(t, summary, "Day 1: date parse failed")
}
