package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport represents airport reference data used to enrich fused
// itineraries with display names for destination cities
type Airport struct {
	ID          uint
	Code        string
	AirportName string
	CityName    string
	CountryName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
