package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending = "pending"
	BookingStatusPaid    = "paid"
)

type Passenger struct {
	FirstName      string `json:"firstName" bson:"firstName" validate:"required"`
	LastName       string `json:"lastName" bson:"lastName" validate:"required"`
	DateOfBirth    string `json:"dateOfBirth" bson:"dateOfBirth" validate:"required"`
	Gender         string `json:"gender" bson:"gender" validate:"required,oneof=male female other"`
	PassportNumber string `json:"passportNumber,omitempty" bson:"passportNumber,omitempty"`
	Nationality    string `json:"nationality,omitempty" bson:"nationality,omitempty"`
}

type Address struct {
	Street  string `json:"street" bson:"street" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	State   string `json:"state" bson:"state" validate:"required"`
	ZipCode string `json:"zipCode" bson:"zipCode" validate:"required"`
	Country string `json:"country" bson:"country" validate:"required"`
}

type ContactInfo struct {
	Email   string  `json:"email" bson:"email" validate:"required,email"`
	Phone   string  `json:"phone" bson:"phone" validate:"required,min=10,max=15"`
	Address Address `json:"address" bson:"address" validate:"required"`
}

type Pricing struct {
	BasePrice  float64 `json:"basePrice" bson:"basePrice" validate:"gte=0"`
	Discount   float64 `json:"discount" bson:"discount" validate:"gte=0"`
	FinalPrice float64 `json:"finalPrice" bson:"finalPrice"`
	Currency   string  `json:"currency" bson:"currency"`
}

type Booking struct {
	ID          primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Type        string                 `json:"type" bson:"type" validate:"required,oneof=flight hotel car cruise"`
	Details     map[string]interface{} `json:"details" bson:"details" validate:"required"`
	Passengers  []Passenger            `json:"passengers" bson:"passengers" validate:"required,min=1,dive"`
	ContactInfo ContactInfo            `json:"contactInfo" bson:"contactInfo" validate:"required"`
	PromoCode   string                 `json:"promoCode,omitempty" bson:"promoCode,omitempty"`
	Pricing     Pricing                `json:"pricing" bson:"pricing"`
	Status      string                 `json:"status,omitempty" bson:"status"`
	CreatedAt   time.Time              `json:"createdAt,omitempty" bson:"createdAt"`
}

type PromoRequest struct {
	Code   string  `json:"code" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type PromoResult struct {
	Valid      bool    `json:"valid"`
	Code       string  `json:"code"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"finalPrice"`
}
