package services

import (
	"context"

	"travel-booking-service/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ValidatePromo(code string, amount float64) domain.PromoResult
}
