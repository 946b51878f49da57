package utils

import (
	"fmt"
	"strings"

	"tripdiary-service/internal/domain/entity"
)

const summaryHeader = `Trip to %s
%s to %s
Flights: %d  Hotels: %d  Passengers: %d
`

// RenderItinerarySummary formats a fused itinerary as a short plain-text
// digest, one line per scheduled day
func RenderItinerarySummary(itinerary entity.Itinerary) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf(summaryHeader,
		itinerary.TripWindow.Destination,
		itinerary.TripWindow.StartDate,
		itinerary.TripWindow.EndDate,
		len(itinerary.Flights),
		len(itinerary.Hotels),
		len(itinerary.Passengers),
	))

	for _, day := range itinerary.DailySchedule {
		if day.ParseError != "" {
			builder.WriteString(fmt.Sprintf("Day %d: %s\n", day.DayNumber, day.ParseError))
			continue
		}

		line := fmt.Sprintf("Day %d (%s)", day.DayNumber, day.Date)
		var tags []string
		if day.IsArrival {
			tags = append(tags, "arrival")
		}
		if day.IsDeparture {
			tags = append(tags, "departure")
		}
		if len(tags) > 0 {
			line += " [" + strings.Join(tags, ", ") + "]"
		}
		for _, event := range day.Flights {
			line += fmt.Sprintf(" %s %s", event.Flight.FlightNumber, event.Type)
		}
		builder.WriteString(line + "\n")
	}

	return builder.String()
}
