package services

import (
	"context"

	"travel-booking-service/domain"
)

// TravelService runs category searches. Search methods never fail:
// provider trouble of any kind degrades to synthetic results.
type TravelService interface {
	SearchFlights(ctx context.Context, req domain.FlightSearchRequest) []domain.FlightOffer
	SearchHotels(ctx context.Context, req domain.HotelSearchRequest) []domain.HotelOffer
	SearchCars(ctx context.Context, req domain.CarSearchRequest) []domain.CarOffer
	SearchCruises(ctx context.Context, req domain.CruiseSearchRequest) []domain.CruiseOffer
	SearchLocations(ctx context.Context, keyword string) []domain.LocationSuggestion
}
