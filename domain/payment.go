package domain

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type PaymentRequest struct {
	BookingID string  `json:"bookingId" validate:"required"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	Currency  string  `json:"currency"`
}

type Payment struct {
	ID          string     `json:"id" bson:"_id"`
	BookingID   string     `json:"bookingId" bson:"bookingId"`
	Amount      float64    `json:"amount" bson:"amount"`
	Currency    string     `json:"currency" bson:"currency"`
	Status      string     `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}
