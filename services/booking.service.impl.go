package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"travel-booking-service/domain"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingServiceImpl struct {
	collection *mongo.Collection
	promo      PromoPolicy
	tracer     trace.Tracer
}

func NewBookingServiceImpl(collection *mongo.Collection, promo PromoPolicy, tracer trace.Tracer) BookingService {
	return &BookingServiceImpl{collection: collection, promo: promo, tracer: tracer}
}

// CreateBooking recomputes the pricing breakdown server-side, persists
// the booking and returns the stored record. The discount comes from
// the promo policy when a code is attached, otherwise it is zero
// regardless of what the client submitted.
func (s *BookingServiceImpl) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	spanCtx, span := s.tracer.Start(ctx, "BookingService.CreateBooking")
	defer span.End()

	var discount float64
	if booking.PromoCode != "" {
		if d, ok := s.promo.Discount(booking.PromoCode, booking.Pricing.BasePrice); ok {
			discount = d
		}
	}

	booking.ID = primitive.NewObjectID()
	booking.Pricing.Discount = discount
	booking.Pricing.FinalPrice = booking.Pricing.BasePrice - discount
	if booking.Pricing.Currency == "" {
		booking.Pricing.Currency = "USD"
	}
	booking.Status = domain.BookingStatusPending
	booking.CreatedAt = time.Now().UTC()

	if _, err := s.collection.InsertOne(spanCtx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	spanCtx, span := s.tracer.Start(ctx, "BookingService.GetBooking")
	defer span.End()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	var booking domain.Booking
	err = s.collection.FindOne(spanCtx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *BookingServiceImpl) ValidatePromo(code string, amount float64) domain.PromoResult {
	discount, valid := s.promo.Discount(code, amount)
	return domain.PromoResult{
		Valid:      valid,
		Code:       code,
		Discount:   discount,
		FinalPrice: amount - discount,
	}
}
