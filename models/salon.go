package models

// Service is a bookable offering belonging to exactly one salon.
// Duration is a display string ("45m", "2h"), price is currency-agnostic.
type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}

// Salon is immutable once loaded. It comes either from the bundled catalog
// or from the discovery provider after enrichment.
type Salon struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	Distance    string    `json:"distance,omitempty"` // display string
	IsOpen      bool      `json:"isOpen"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Hours       string    `json:"hours"`
	Services    []Service `json:"services"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}
