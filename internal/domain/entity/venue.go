package entity

// VenueRecord is a structured restaurant/attraction/event entry produced
// by parsing free-form text. Name is always non-empty; every other field
// is either present with content or omitted, never an empty placeholder.
type VenueRecord struct {
	Name        string `json:"name" bson:"name"`
	Address     string `json:"address,omitempty" bson:"address,omitempty"`
	Price       string `json:"price,omitempty" bson:"price,omitempty"`
	Cuisine     string `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	Hours       string `json:"hours,omitempty" bson:"hours,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}
