package models

import "strings"

// Location is the forecast point. Coordinates stay as decimal strings so
// they round-trip through settings and query parameters unchanged.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Name      string `json:"name"`
}

// Valid reports whether both coordinates are present.
func (l Location) Valid() bool {
	return strings.TrimSpace(l.Latitude) != "" && strings.TrimSpace(l.Longitude) != ""
}

// DefaultLocation is central London.
func DefaultLocation() Location {
	return Location{Latitude: "51.5074", Longitude: "-0.1278", Name: "London"}
}

// GeoResult is one geocoding candidate.
type GeoResult struct {
	Name        string  `json:"name"`
	Admin1      string  `json:"admin1,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Label is "name, admin1", or just the name when admin1 is missing.
func (g GeoResult) Label() string {
	if g.Admin1 == "" {
		return g.Name
	}
	return g.Name + ", " + g.Admin1
}
