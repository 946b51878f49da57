package usecase

import (
	"strings"

	"tripdiary-service/internal/domain/entity"
)

// Record deduplication keys are name-based and case-folded; fusion keeps
// every record on purpose, so these are the only places where records are
// ever dropped. All functions preserve first-seen order.

// How much of the normalized address participates in the venue key
const venueAddressKeyLen = 12

// normalizeKey casefolds, trims and collapses inner whitespace
func normalizeKey(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

// DedupPassengers keeps the first occurrence per first+last name
func DedupPassengers(passengers []entity.PassengerRecord) []entity.PassengerRecord {
	seen := make(map[string]struct{}, len(passengers))
	result := make([]entity.PassengerRecord, 0, len(passengers))
	for _, passenger := range passengers {
		key := normalizeKey(passenger.FirstName) + "|" + normalizeKey(passenger.LastName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, passenger)
	}
	return result
}

// DedupVenues keys on normalized name plus a fixed-length address prefix,
// so the same venue listed with slightly different address tails collapses
func DedupVenues(venues []entity.VenueRecord) []entity.VenueRecord {
	seen := make(map[string]struct{}, len(venues))
	result := make([]entity.VenueRecord, 0, len(venues))
	for _, venue := range venues {
		address := normalizeKey(venue.Address)
		if len(address) > venueAddressKeyLen {
			address = address[:venueAddressKeyLen]
		}
		key := normalizeKey(venue.Name) + "|" + address
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, venue)
	}
	return result
}

// DedupHotels keys on normalized name plus check-in date
func DedupHotels(hotels []entity.HotelRecord) []entity.HotelRecord {
	seen := make(map[string]struct{}, len(hotels))
	result := make([]entity.HotelRecord, 0, len(hotels))
	for _, hotel := range hotels {
		key := normalizeKey(hotel.Name) + "|" + strings.TrimSpace(hotel.CheckInDate)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, hotel)
	}
	return result
}

// DedupFlights keys on flight number plus departure date. Meant for
// merging repeated analyses of the same source document; fusion itself
// never calls it.
func DedupFlights(flights []entity.FlightRecord) []entity.FlightRecord {
	seen := make(map[string]struct{}, len(flights))
	result := make([]entity.FlightRecord, 0, len(flights))
	for _, flight := range flights {
		key := normalizeKey(flight.FlightNumber) + "|" + strings.TrimSpace(flight.Departure.Date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, flight)
	}
	return result
}
