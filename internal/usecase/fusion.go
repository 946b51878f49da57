package usecase

import (
	"strings"
	"time"

	"tripdiary-service/internal/domain/entity"
	"tripdiary-service/pkg/logger"
)

// DefaultDestination is the literal placeholder used when no rule in the
// destination priority chain matches
const DefaultDestination = "Unknown Destination"

// How far past "now" the synthesized trip window starts and how long it
// runs when no source resolves a date range.
const (
	synthesizedStartOffsetDays = 1
	synthesizedTripDays        = 7
)

// airportCities maps arrival airport codes to destination cities for the
// lowest-priority destination rule. Fixed and in-process so fusion stays
// pure; richer reference data lives behind AirportRepository.
var airportCities = map[string]string{
	"JFK": "New York", "EWR": "New York", "LGA": "New York",
	"LAX": "Los Angeles", "SFO": "San Francisco", "ORD": "Chicago",
	"BOS": "Boston", "MIA": "Miami", "SEA": "Seattle",
	"LHR": "London", "LGW": "London", "STN": "London",
	"CDG": "Paris", "ORY": "Paris",
	"FCO": "Rome", "BCN": "Barcelona", "MAD": "Madrid",
	"AMS": "Amsterdam", "BER": "Berlin", "VIE": "Vienna", "LIS": "Lisbon",
	"NRT": "Tokyo", "HND": "Tokyo", "KIX": "Osaka",
	"SIN": "Singapore", "HKG": "Hong Kong", "BKK": "Bangkok",
	"SYD": "Sydney", "DXB": "Dubai",
}

// TripFuser merges extraction batches into a single itinerary and resolves
// the trip window through ordered priority chains. Fusion concatenates the
// record lists in batch order and never drops anything; deduplication is a
// separate, explicit step. Given the same batch sequence the result is
// always identical.
type TripFuser struct {
	logger logger.Logger
	now    func() time.Time
}

// NewTripFuser creates a fuser on the wall clock
func NewTripFuser(logger logger.Logger) *TripFuser {
	return NewTripFuserWithClock(logger, time.Now)
}

// NewTripFuserWithClock creates a fuser with an injected clock so the
// synthesized-date fallbacks stay deterministic under test
func NewTripFuserWithClock(logger logger.Logger, now func() time.Time) *TripFuser {
	return &TripFuser{
		logger: logger,
		now:    now,
	}
}

// Fuse merges the batches into an itinerary without a daily schedule.
// Every field of the trip window is populated; unresolvable values fall
// back to deterministic placeholders rather than staying empty.
func (f *TripFuser) Fuse(batches []entity.ExtractionBatch) entity.Itinerary {
	var flights []entity.FlightRecord
	var hotels []entity.HotelRecord
	var passengers []entity.PassengerRecord

	for _, batch := range batches {
		flights = append(flights, batch.Flights...)
		hotels = append(hotels, batch.Hotels...)
		passengers = append(passengers, batch.Passengers...)
	}

	destination := f.resolveDestination(batches, flights, hotels)
	startDate := f.resolveStartDate(batches, flights, hotels)
	endDate := f.resolveEndDate(batches, flights, hotels, startDate)

	f.logger.Info("Fused extraction batches",
		"batchCount", len(batches),
		"flightCount", len(flights),
		"hotelCount", len(hotels),
		"passengerCount", len(passengers),
		"destination", destination,
		"startDate", startDate,
		"endDate", endDate)

	return entity.Itinerary{
		TripWindow: entity.TripWindow{
			Destination: destination,
			StartDate:   startDate,
			EndDate:     endDate,
		},
		Flights:    flights,
		Hotels:     hotels,
		Passengers: passengers,
	}
}

// resolveDestination evaluates the destination priority chain over the
// whole batch sequence: explicit destination, first hotel city, first
// flight arrival city, airport-code lookup, literal placeholder.
func (f *TripFuser) resolveDestination(batches []entity.ExtractionBatch, flights []entity.FlightRecord, hotels []entity.HotelRecord) string {
	for _, batch := range batches {
		if destination := strings.TrimSpace(batch.Destination); destination != "" {
			f.logger.Debug("Destination resolved from explicit batch field", "destination", destination)
			return destination
		}
	}

	for _, hotel := range hotels {
		if city := strings.TrimSpace(hotel.City); city != "" {
			f.logger.Debug("Destination resolved from hotel city", "destination", city, "hotel", hotel.Name)
			return city
		}
	}

	for _, flight := range flights {
		if city := strings.TrimSpace(flight.Arrival.City); city != "" {
			f.logger.Debug("Destination resolved from flight arrival city", "destination", city, "flight", flight.FlightNumber)
			return city
		}
	}

	if len(flights) > 0 {
		code := strings.ToUpper(strings.TrimSpace(flights[0].Arrival.Airport))
		if city, ok := airportCities[code]; ok {
			f.logger.Debug("Destination resolved from airport code", "destination", city, "airport", code)
			return city
		}
	}

	f.logger.Warn("Destination unresolved, using placeholder", "placeholder", DefaultDestination)
	return DefaultDestination
}

// resolveStartDate: explicit batch start, first flight departure, first
// flight arrival, first hotel check-in, earliest flight date, now+1d.
func (f *TripFuser) resolveStartDate(batches []entity.ExtractionBatch, flights []entity.FlightRecord, hotels []entity.HotelRecord) string {
	for _, batch := range batches {
		if batch.Dates == nil {
			continue
		}
		if start := strings.TrimSpace(batch.Dates.StartDate); start != "" {
			return normalizeDate(start)
		}
	}

	if len(flights) > 0 {
		if date := strings.TrimSpace(flights[0].Departure.Date); date != "" {
			return normalizeDate(date)
		}
		if date := strings.TrimSpace(flights[0].Arrival.Date); date != "" {
			return normalizeDate(date)
		}
	}

	for _, hotel := range hotels {
		if date := strings.TrimSpace(hotel.CheckInDate); date != "" {
			return normalizeDate(date)
		}
	}

	if earliest, ok := earliestFlightDate(flights); ok {
		return earliest.Format(ISODateLayout)
	}

	synthesized := f.now().AddDate(0, 0, synthesizedStartOffsetDays).Format(ISODateLayout)
	f.logger.Warn("Start date unresolved, synthesizing", "startDate", synthesized)
	return synthesized
}

// resolveEndDate: explicit batch end, return-leg departure, first hotel
// check-out, latest flight date, start+7d.
func (f *TripFuser) resolveEndDate(batches []entity.ExtractionBatch, flights []entity.FlightRecord, hotels []entity.HotelRecord, startDate string) string {
	for _, batch := range batches {
		if batch.Dates == nil {
			continue
		}
		if end := strings.TrimSpace(batch.Dates.EndDate); end != "" {
			return normalizeDate(end)
		}
	}

	// The last flight's departure marks the trip end only when a return leg
	// exists; a lone outbound flight says nothing about when the trip ends.
	if len(flights) > 1 {
		for i := len(flights) - 1; i > 0; i-- {
			if date := strings.TrimSpace(flights[i].Departure.Date); date != "" {
				return normalizeDate(date)
			}
		}
	}

	for _, hotel := range hotels {
		if date := strings.TrimSpace(hotel.CheckOutDate); date != "" {
			return normalizeDate(date)
		}
	}

	if latest, ok := latestFlightDate(flights); ok {
		return latest.Format(ISODateLayout)
	}

	if start, ok := parseFlexibleDate(startDate); ok {
		return start.AddDate(0, 0, synthesizedTripDays).Format(ISODateLayout)
	}

	synthesized := f.now().AddDate(0, 0, synthesizedStartOffsetDays+synthesizedTripDays).Format(ISODateLayout)
	f.logger.Warn("End date unresolved, synthesizing", "endDate", synthesized)
	return synthesized
}

func earliestFlightDate(flights []entity.FlightRecord) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, flight := range flights {
		for _, raw := range []string{flight.Departure.Date, flight.Arrival.Date} {
			if t, ok := parseFlexibleDate(raw); ok {
				if !found || t.Before(earliest) {
					earliest = t
					found = true
				}
			}
		}
	}
	return earliest, found
}

func latestFlightDate(flights []entity.FlightRecord) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, flight := range flights {
		for _, raw := range []string{flight.Departure.Date, flight.Arrival.Date} {
			if t, ok := parseFlexibleDate(raw); ok {
				if !found || t.After(latest) {
					latest = t
					found = true
				}
			}
		}
	}
	return latest, found
}
