package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"travel-booking-service/amadeus"
	"travel-booking-service/domain"
)

type TravelServiceImpl struct {
	client *amadeus.Client
	cache  Cache
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewTravelServiceImpl(client *amadeus.Client, cache Cache, tracer trace.Tracer, logger *logrus.Logger) TravelService {
	return &TravelServiceImpl{client: client, cache: cache, tracer: tracer, logger: logger}
}

func (s *TravelServiceImpl) SearchFlights(ctx context.Context, req domain.FlightSearchRequest) []domain.FlightOffer {
	spanCtx, span := s.tracer.Start(ctx, "TravelService.SearchFlights")
	defer span.End()

	var cached []domain.FlightOffer
	if s.cache.Get(spanCtx, "flight", req, &cached) && len(cached) > 0 {
		return cached
	}

	if !s.client.IsAvailable(spanCtx) {
		s.logger.WithField("category", "flight").Info("Provider unavailable, using mock data")
		return MockFlightOffers(req)
	}

	resp, err := s.client.SearchFlightOffers(spanCtx, req)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"category": "flight", "error": err.Error()}).
			Warn("Provider search failed, falling back to mock data")
		return MockFlightOffers(req)
	}

	offers := amadeus.FormatFlightOffers(resp)
	if len(offers) == 0 {
		s.logger.WithField("category", "flight").Info("Provider returned no offers, using mock data")
		return MockFlightOffers(req)
	}

	s.cache.Set(spanCtx, "flight", req, offers)
	return offers
}

func (s *TravelServiceImpl) SearchHotels(ctx context.Context, req domain.HotelSearchRequest) []domain.HotelOffer {
	spanCtx, span := s.tracer.Start(ctx, "TravelService.SearchHotels")
	defer span.End()

	var cached []domain.HotelOffer
	if s.cache.Get(spanCtx, "hotel", req, &cached) && len(cached) > 0 {
		return cached
	}

	if !s.client.IsAvailable(spanCtx) {
		s.logger.WithField("category", "hotel").Info("Provider unavailable, using mock data")
		return MockHotelOffers(req)
	}

	resp, err := s.client.SearchHotelOffers(spanCtx, req)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"category": "hotel", "error": err.Error()}).
			Warn("Provider search failed, falling back to mock data")
		return MockHotelOffers(req)
	}

	offers := amadeus.FormatHotelOffers(resp)
	if len(offers) == 0 {
		s.logger.WithField("category", "hotel").Info("Provider returned no offers, using mock data")
		return MockHotelOffers(req)
	}

	s.cache.Set(spanCtx, "hotel", req, offers)
	return offers
}

// No live car rental source is wired up, so car search is always synthetic.
func (s *TravelServiceImpl) SearchCars(ctx context.Context, req domain.CarSearchRequest) []domain.CarOffer {
	_, span := s.tracer.Start(ctx, "TravelService.SearchCars")
	defer span.End()

	return MockCarOffers(req)
}

// No live cruise source is wired up, so cruise search is always synthetic.
func (s *TravelServiceImpl) SearchCruises(ctx context.Context, req domain.CruiseSearchRequest) []domain.CruiseOffer {
	_, span := s.tracer.Start(ctx, "TravelService.SearchCruises")
	defer span.End()

	return MockCruiseOffers(req)
}

func (s *TravelServiceImpl) SearchLocations(ctx context.Context, keyword string) []domain.LocationSuggestion {
	spanCtx, span := s.tracer.Start(ctx, "TravelService.SearchLocations")
	defer span.End()

	if s.client.Configured() {
		resp, err := s.client.SearchLocations(spanCtx, keyword)
		if err == nil {
			if suggestions := amadeus.FormatLocations(resp); len(suggestions) > 0 {
				return suggestions
			}
		} else {
			s.logger.WithFields(logrus.Fields{"keyword": keyword, "error": err.Error()}).
				Warn("Provider location lookup failed, using built-in table")
		}
	}

	return searchStaticLocations(keyword)
}
