package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"

	"travel-booking-service/domain"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentServiceImpl struct {
	payments *mongo.Collection
	bookings *mongo.Collection
	tracer   trace.Tracer
}

func NewPaymentServiceImpl(payments, bookings *mongo.Collection, tracer trace.Tracer) PaymentService {
	return &PaymentServiceImpl{payments: payments, bookings: bookings, tracer: tracer}
}

func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	spanCtx, span := s.tracer.Start(ctx, "PaymentService.CreateOrder")
	defer span.End()

	if err := s.ensureBookingExists(spanCtx, req.BookingID); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:        uuid.NewString(),
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    domain.PaymentStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.payments.InsertOne(spanCtx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ProcessPayment completes the pending payment for a booking, creating
// one on the spot when the order step was skipped, and marks the
// booking paid.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	spanCtx, span := s.tracer.Start(ctx, "PaymentService.ProcessPayment")
	defer span.End()

	if err := s.ensureBookingExists(spanCtx, req.BookingID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var payment domain.Payment
	err := s.payments.FindOne(spanCtx, bson.M{
		"bookingId": req.BookingID,
		"status":    domain.PaymentStatusPending,
	}).Decode(&payment)

	switch {
	case err == nil:
		payment.Status = domain.PaymentStatusCompleted
		payment.CompletedAt = &now
		_, err = s.payments.UpdateOne(spanCtx,
			bson.M{"_id": payment.ID},
			bson.M{"$set": bson.M{"status": payment.Status, "completedAt": now}})
		if err != nil {
			return nil, err
		}
	case errors.Is(err, mongo.ErrNoDocuments):
		payment = domain.Payment{
			ID:          uuid.NewString(),
			BookingID:   req.BookingID,
			Amount:      req.Amount,
			Currency:    req.Currency,
			Status:      domain.PaymentStatusCompleted,
			CreatedAt:   now,
			CompletedAt: &now,
		}
		if _, err := s.payments.InsertOne(spanCtx, payment); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.markBookingPaid(spanCtx, req.BookingID); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentServiceImpl) VerifyPayment(ctx context.Context, bookingID string) (*domain.Payment, error) {
	spanCtx, span := s.tracer.Start(ctx, "PaymentService.VerifyPayment")
	defer span.End()

	var payment domain.Payment
	err := s.payments.FindOne(spanCtx, bson.M{
		"bookingId": bookingID,
		"status":    domain.PaymentStatusCompleted,
	}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentServiceImpl) PaymentStatus(ctx context.Context, bookingID string) (*domain.Payment, error) {
	spanCtx, span := s.tracer.Start(ctx, "PaymentService.PaymentStatus")
	defer span.End()

	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})

	var payment domain.Payment
	err := s.payments.FindOne(spanCtx, bson.M{"bookingId": bookingID}, opts).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentServiceImpl) ensureBookingExists(ctx context.Context, bookingID string) error {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	err = s.bookings.FindOne(ctx, bson.M{"_id": objectID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrBookingNotFound
	}
	return err
}

func (s *PaymentServiceImpl) markBookingPaid(ctx context.Context, bookingID string) error {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	_, err = s.bookings.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": domain.BookingStatusPaid}})
	return err
}
