package services

import (
	"sort"
	"strings"

	"travel-booking-service/domain"
)

// Built-in location table used when the provider keyword lookup fails
// or returns nothing. Relevance scores roughly track passenger volume.
var staticLocations = []domain.LocationSuggestion{
	{ID: "ATL", Type: "airport", Name: "Hartsfield-Jackson Atlanta International Airport", Code: "ATL", City: "Atlanta", Country: "United States", Coordinates: domain.Coordinates{Latitude: 33.6407, Longitude: -84.4277}, Relevance: 95},
	{ID: "JFK", Type: "airport", Name: "John F. Kennedy International Airport", Code: "JFK", City: "New York", Country: "United States", Coordinates: domain.Coordinates{Latitude: 40.6413, Longitude: -73.7781}, Relevance: 93},
	{ID: "LAX", Type: "airport", Name: "Los Angeles International Airport", Code: "LAX", City: "Los Angeles", Country: "United States", Coordinates: domain.Coordinates{Latitude: 33.9416, Longitude: -118.4085}, Relevance: 92},
	{ID: "LHR", Type: "airport", Name: "London Heathrow Airport", Code: "LHR", City: "London", Country: "United Kingdom", Coordinates: domain.Coordinates{Latitude: 51.4700, Longitude: -0.4543}, Relevance: 91},
	{ID: "DXB", Type: "airport", Name: "Dubai International Airport", Code: "DXB", City: "Dubai", Country: "United Arab Emirates", Coordinates: domain.Coordinates{Latitude: 25.2532, Longitude: 55.3657}, Relevance: 90},
	{ID: "CDG", Type: "airport", Name: "Paris Charles de Gaulle Airport", Code: "CDG", City: "Paris", Country: "France", Coordinates: domain.Coordinates{Latitude: 49.0097, Longitude: 2.5479}, Relevance: 88},
	{ID: "ORD", Type: "airport", Name: "O'Hare International Airport", Code: "ORD", City: "Chicago", Country: "United States", Coordinates: domain.Coordinates{Latitude: 41.9742, Longitude: -87.9073}, Relevance: 87},
	{ID: "SIN", Type: "airport", Name: "Singapore Changi Airport", Code: "SIN", City: "Singapore", Country: "Singapore", Coordinates: domain.Coordinates{Latitude: 1.3644, Longitude: 103.9915}, Relevance: 86},
	{ID: "HND", Type: "airport", Name: "Tokyo Haneda Airport", Code: "HND", City: "Tokyo", Country: "Japan", Coordinates: domain.Coordinates{Latitude: 35.5494, Longitude: 139.7798}, Relevance: 85},
	{ID: "FRA", Type: "airport", Name: "Frankfurt Airport", Code: "FRA", City: "Frankfurt", Country: "Germany", Coordinates: domain.Coordinates{Latitude: 50.0379, Longitude: 8.5622}, Relevance: 84},
	{ID: "AMS", Type: "airport", Name: "Amsterdam Airport Schiphol", Code: "AMS", City: "Amsterdam", Country: "Netherlands", Coordinates: domain.Coordinates{Latitude: 52.3105, Longitude: 4.7683}, Relevance: 83},
	{ID: "IST", Type: "airport", Name: "Istanbul Airport", Code: "IST", City: "Istanbul", Country: "Turkey", Coordinates: domain.Coordinates{Latitude: 41.2753, Longitude: 28.7519}, Relevance: 82},
	{ID: "MIA", Type: "airport", Name: "Miami International Airport", Code: "MIA", City: "Miami", Country: "United States", Coordinates: domain.Coordinates{Latitude: 25.7959, Longitude: -80.2870}, Relevance: 80},
	{ID: "SFO", Type: "airport", Name: "San Francisco International Airport", Code: "SFO", City: "San Francisco", Country: "United States", Coordinates: domain.Coordinates{Latitude: 37.6213, Longitude: -122.3790}, Relevance: 79},
	{ID: "NYC", Type: "city", Name: "New York", Code: "NYC", City: "New York", Country: "United States", Coordinates: domain.Coordinates{Latitude: 40.7128, Longitude: -74.0060}, Relevance: 94},
	{ID: "LON", Type: "city", Name: "London", Code: "LON", City: "London", Country: "United Kingdom", Coordinates: domain.Coordinates{Latitude: 51.5074, Longitude: -0.1278}, Relevance: 89},
	{ID: "PAR", Type: "city", Name: "Paris", Code: "PAR", City: "Paris", Country: "France", Coordinates: domain.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, Relevance: 81},
	{ID: "TYO", Type: "city", Name: "Tokyo", Code: "TYO", City: "Tokyo", Country: "Japan", Coordinates: domain.Coordinates{Latitude: 35.6762, Longitude: 139.6503}, Relevance: 78},
}

// searchStaticLocations filters the built-in table by case-insensitive
// substring match on code, name, city or country, ordered by
// descending relevance and tagged as synthetic.
func searchStaticLocations(keyword string) []domain.LocationSuggestion {
	needle := strings.ToLower(strings.TrimSpace(keyword))

	matches := make([]domain.LocationSuggestion, 0, 4)
	for _, loc := range staticLocations {
		if strings.Contains(strings.ToLower(loc.Code), needle) ||
			strings.Contains(strings.ToLower(loc.Name), needle) ||
			strings.Contains(strings.ToLower(loc.City), needle) ||
			strings.Contains(strings.ToLower(loc.Country), needle) {
			loc.Source = domain.SourceSynthetic
			matches = append(matches, loc)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Relevance > matches[j].Relevance
	})
	return matches
}
