package usecase

import (
	"time"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/pkg/logger"
)

// DateParseFailed marks the single degenerate schedule entry produced
// when neither accepted format parses the trip range
const DateParseFailed = "date parse failed"

// ScheduleBuilder expands a resolved date range into a day-indexed
// schedule and attaches flight events to the matching days. It never
// fails: an unparseable range degrades to one marked entry.
type ScheduleBuilder struct {
	logger logger.Logger
}

// NewScheduleBuilder creates a new schedule builder
func NewScheduleBuilder(logger logger.Logger) *ScheduleBuilder {
	return &ScheduleBuilder{
		logger: logger,
	}
}

// BuildSchedule produces one entry per calendar day from start to end
// inclusive. Day numbers start at 1; only day 1 is the arrival day and
// only the day matching the end date is the departure day. A flight is
// attached to every day equal to its departure or arrival date, so one
// flight can appear on two days, or twice on a same-day turnaround.
func (b *ScheduleBuilder) BuildSchedule(startDate, endDate string, flights []entity.FlightRecord) []entity.DaySchedule {
	start, end, ok := parseRange(startDate, endDate)
	if !ok {
		b.logger.Warn("No accepted format parses both trip dates",
			"startDate", startDate,
			"endDate", endDate)
		return []entity.DaySchedule{
			{
				DayNumber:  1,
				IsArrival:  true,
				ParseError: DateParseFailed,
			},
		}
	}

	// An inverted range still has to yield at least one day
	if end.Before(start) {
		end = start
	}

	var schedule []entity.DaySchedule
	dayNumber := 1
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		entry := entity.DaySchedule{
			DayNumber:   dayNumber,
			Date:        day.Format(ISODateLayout),
			IsArrival:   dayNumber == 1,
			IsDeparture: day.Equal(end),
		}

		for _, flight := range flights {
			if sameDay(flight.Departure.Date, day) {
				entry.Flights = append(entry.Flights, entity.FlightEvent{
					Type:   entity.EventDeparture,
					Flight: flight,
				})
			}
			if sameDay(flight.Arrival.Date, day) {
				entry.Flights = append(entry.Flights, entity.FlightEvent{
					Type:   entity.EventArrival,
					Flight: flight,
				})
			}
		}

		schedule = append(schedule, entry)
		dayNumber++
	}

	b.logger.Debug("Built daily schedule",
		"days", len(schedule),
		"startDate", start.Format(ISODateLayout),
		"endDate", end.Format(ISODateLayout))

	return schedule
}

// parseRange finds the first accepted layout under which both endpoints
// parse; formats are never mixed within one range.
func parseRange(startDate, endDate string) (time.Time, time.Time, bool) {
	for _, layout := range acceptedDateLayouts {
		start, startErr := time.Parse(layout, startDate)
		end, endErr := time.Parse(layout, endDate)
		if startErr == nil && endErr == nil {
			return start, end, true
		}
	}
	return time.Time{}, time.Time{}, false
}
