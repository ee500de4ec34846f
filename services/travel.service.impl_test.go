package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"travel-booking-service/amadeus"
	"travel-booking-service/config"
	"travel-booking-service/domain"
)

// newOfflineTravelService wires a service around a client with no API
// credentials, so every search degrades to synthetic data without any
// network traffic.
func newOfflineTravelService() TravelService {
	logger := logrus.New()
	client := amadeus.NewClient(config.Config{}, logger)
	return NewTravelServiceImpl(client, NewNoOpCache(), otel.Tracer("test"), logger)
}

func TestSearchFlightsFallsBackToMock(t *testing.T) {
	svc := newOfflineTravelService()

	offers := svc.SearchFlights(context.Background(), domain.FlightSearchRequest{
		TripType:    domain.TripTypeOneWay,
		Origin:      "JFK",
		Destination: "LAX",
		FromDate:    "2026-10-01",
		Adults:      1,
	})

	require.Len(t, offers, 2)
	for _, offer := range offers {
		assert.Equal(t, domain.SourceSynthetic, offer.Source)
		assert.Equal(t, "JFK", offer.Departure.Airport)
		assert.Equal(t, "LAX", offer.Arrival.Airport)
	}
}

func TestSearchHotelsFallsBackToMock(t *testing.T) {
	svc := newOfflineTravelService()

	offers := svc.SearchHotels(context.Background(), domain.HotelSearchRequest{
		Destination:  "Paris",
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-04",
		Rooms:        1,
		Adults:       2,
	})

	require.Len(t, offers, 2)
	for _, offer := range offers {
		assert.Equal(t, domain.SourceSynthetic, offer.Source)
	}
}

func TestSearchCarsAlwaysSynthetic(t *testing.T) {
	svc := newOfflineTravelService()

	offers := svc.SearchCars(context.Background(), domain.CarSearchRequest{
		PickupLocation: "JFK Airport",
		DropLocation:   "LAX Airport",
		FromDateTime:   "2026-10-01",
		ToDateTime:     "2026-10-03",
		Age:            30,
	})

	require.Len(t, offers, 2)
	assert.Equal(t, domain.SourceSynthetic, offers[0].Source)
}

func TestSearchCruisesAlwaysSynthetic(t *testing.T) {
	svc := newOfflineTravelService()

	offers := svc.SearchCruises(context.Background(), domain.CruiseSearchRequest{
		Destination: "Caribbean",
		Nights:      7,
	})

	require.Len(t, offers, 2)
	assert.Equal(t, domain.SourceSynthetic, offers[0].Source)
}

func TestSearchLocationsStaticFallback(t *testing.T) {
	svc := newOfflineTravelService()

	suggestions := svc.SearchLocations(context.Background(), "lon")

	require.NotEmpty(t, suggestions)
	for i, s := range suggestions {
		assert.Equal(t, domain.SourceSynthetic, s.Source)
		if i > 0 {
			assert.GreaterOrEqual(t, suggestions[i-1].Relevance, s.Relevance)
		}
	}
}

func TestSearchStaticLocationsMatchesCityAndCode(t *testing.T) {
	byCity := searchStaticLocations("new york")
	codes := make(map[string]bool)
	for _, s := range byCity {
		codes[s.Code] = true
	}
	assert.True(t, codes["JFK"])
	assert.True(t, codes["NYC"])

	byCode := searchStaticLocations("lhr")
	require.Len(t, byCode, 1)
	assert.Equal(t, "LHR", byCode[0].Code)

	assert.Empty(t, searchStaticLocations("zzzz"))
}
