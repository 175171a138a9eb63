package models

// Coordinate is a point on the globe in decimal degrees
type Coordinate struct {
	Latitude  float64 // -90 to 90
	Longitude float64 // -180 to 180
}

// Valid reports whether the coordinate lies within the legal lat/lon ranges
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// DefaultCoordinate is used when the caller's position cannot be determined (Los Angeles)
var DefaultCoordinate = Coordinate{Latitude: 34.0522, Longitude: -118.2437}

// LocationCandidate is a single geocoding match for a user query
type LocationCandidate struct {
	Name        string // City or place name
	Region      string // State/province, empty when the source has none
	CountryCode string // ISO 3166-1 alpha-2, e.g. "US", "KR"
	Coordinate  Coordinate
	DistanceKm  float64 // Distance from the user, attached during ranking
}

// HasRegion reports whether the candidate carries a state/region name
func (c LocationCandidate) HasRegion() bool {
	return c.Region != ""
}
