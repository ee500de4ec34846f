package services

import (
	"context"

	"travel-booking-service/domain"
)

// PaymentService drives the simulated payment lifecycle: an order is
// created pending against an existing booking, processing marks it
// completed (terminal), verification and status report on the record.
type PaymentService interface {
	CreateOrder(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	VerifyPayment(ctx context.Context, bookingID string) (*domain.Payment, error)
	PaymentStatus(ctx context.Context, bookingID string) (*domain.Payment, error)
}
