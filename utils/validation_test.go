package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-booking-service/domain"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func validFlightParams() map[string]interface{} {
	return map[string]interface{}{
		"tripType":    "oneWay",
		"origin":      "JFK",
		"destination": "LAX",
		"fromDate":    futureDate(30),
		"adults":      float64(1),
	}
}

func TestValidateFlightSearchOneWayDropsReturnDate(t *testing.T) {
	params := validFlightParams()
	params["toDate"] = futureDate(40)

	req, errs := ValidateFlightSearch(params)

	require.Empty(t, errs)
	assert.Equal(t, "", req.ToDate)
}

func TestValidateFlightSearchRoundTripRequiresReturnDate(t *testing.T) {
	params := validFlightParams()
	params["tripType"] = "roundTrip"

	_, errs := ValidateFlightSearch(params)

	require.NotEmpty(t, errs)
	assert.Equal(t, "toDate", errs[0].Field)
}

func TestValidateFlightSearchRoundTripDateOrdering(t *testing.T) {
	params := validFlightParams()
	params["tripType"] = "roundTrip"
	params["toDate"] = params["fromDate"]

	_, errs := ValidateFlightSearch(params)
	require.NotEmpty(t, errs)
	assert.Equal(t, "toDate", errs[0].Field)

	params["toDate"] = futureDate(35)
	req, errs := ValidateFlightSearch(params)
	require.Empty(t, errs)
	assert.Equal(t, futureDate(35), req.ToDate)
}

func TestValidateFlightSearchDefaults(t *testing.T) {
	req, errs := ValidateFlightSearch(map[string]interface{}{
		"tripType":    "oneWay",
		"origin":      "jfk",
		"destination": "LAX",
		"fromDate":    futureDate(10),
	})

	require.Empty(t, errs)
	assert.Equal(t, "JFK", req.Origin)
	assert.Equal(t, 1, req.Adults)
	assert.Equal(t, 0, req.Children)
	assert.Equal(t, "ECONOMY", req.TravelClass)
}

func TestValidateFlightSearchCollectsAllErrors(t *testing.T) {
	_, errs := ValidateFlightSearch(map[string]interface{}{})

	require.NotEmpty(t, errs)
	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, field := range []string{"tripType", "origin", "destination", "fromDate"} {
		assert.True(t, fields[field], "expected an error for %s", field)
	}
}

func TestValidateFlightSearchRejectsBadInput(t *testing.T) {
	params := validFlightParams()
	params["origin"] = "NEWYORK"
	params["adults"] = float64(12)
	params["travelClass"] = "LUXURY"
	params["fromDate"] = "2020-01-01"

	_, errs := ValidateFlightSearch(params)

	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["origin"])
	assert.True(t, fields["adults"])
	assert.True(t, fields["travelClass"])
	assert.True(t, fields["fromDate"])
}

func TestValidateHotelSearchDateOrdering(t *testing.T) {
	params := map[string]interface{}{
		"destination":  "Paris",
		"checkInDate":  futureDate(20),
		"checkOutDate": futureDate(20),
	}

	_, errs := ValidateHotelSearch(params)
	require.NotEmpty(t, errs)
	assert.Equal(t, "checkOutDate", errs[0].Field)

	params["checkOutDate"] = futureDate(23)
	req, errs := ValidateHotelSearch(params)
	require.Empty(t, errs)
	assert.Equal(t, 1, req.Rooms)
	assert.Equal(t, 1, req.Adults)
}

func TestValidateCarSearch(t *testing.T) {
	params := map[string]interface{}{
		"pickupLocation": "JFK Airport",
		"fromDateTime":   futureDate(5),
		"toDateTime":     futureDate(8),
		"age":            float64(18),
	}

	_, errs := ValidateCarSearch(params)

	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["dropLocation"])
	assert.True(t, fields["age"])

	params["dropLocation"] = "LAX Airport"
	params["age"] = float64(30)
	req, errs := ValidateCarSearch(params)
	require.Empty(t, errs)
	assert.Equal(t, 30, req.Age)
}

func TestValidateCarSearchEndBeforeStart(t *testing.T) {
	_, errs := ValidateCarSearch(map[string]interface{}{
		"pickupLocation": "JFK Airport",
		"dropLocation":   "LAX Airport",
		"fromDateTime":   futureDate(8),
		"toDateTime":     futureDate(5),
		"age":            float64(30),
	})

	require.NotEmpty(t, errs)
	assert.Equal(t, "toDateTime", errs[0].Field)
}

func TestValidateCruiseSearch(t *testing.T) {
	params := map[string]interface{}{
		"destination": "Caribbean",
		"nights":      float64(7),
		"name":        "Jane Doe",
		"email":       "not-an-email",
		"mobile":      "12345",
	}

	_, errs := ValidateCruiseSearch(params)

	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["mobile"])

	params["email"] = "jane@example.com"
	params["mobile"] = "15550001234"
	req, errs := ValidateCruiseSearch(params)
	require.Empty(t, errs)
	assert.Equal(t, 7, req.Nights)
}

func validBooking() domain.Booking {
	return domain.Booking{
		Type:    "flight",
		Details: map[string]interface{}{"flightNumber": "AA123"},
		Passengers: []domain.Passenger{
			{FirstName: "Jane", LastName: "Doe", DateOfBirth: "1990-04-01", Gender: "female"},
		},
		ContactInfo: domain.ContactInfo{
			Email: "jane@example.com",
			Phone: "15550001234",
			Address: domain.Address{
				Street:  "123 Main Street",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Country: "US",
			},
		},
		Pricing: domain.Pricing{BasePrice: 500, Currency: "USD"},
	}
}

func TestValidateBookingPasses(t *testing.T) {
	booking := validBooking()
	assert.Empty(t, ValidateBooking(&booking))
}

func TestValidateBookingMissingAddressCity(t *testing.T) {
	booking := validBooking()
	booking.ContactInfo.Address.City = ""

	errs := ValidateBooking(&booking)

	require.NotEmpty(t, errs)
	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["contactInfo.address.city"])
}

func TestValidateBookingPassengerRules(t *testing.T) {
	booking := validBooking()
	booking.Passengers = nil
	errs := ValidateBooking(&booking)
	require.NotEmpty(t, errs)

	booking = validBooking()
	booking.Passengers[0].Gender = "unknown"
	errs = ValidateBooking(&booking)
	require.NotEmpty(t, errs)
	assert.Equal(t, "passengers[0].gender", errs[0].Field)
}

func TestValidatePaymentDefaultsCurrency(t *testing.T) {
	payment := domain.PaymentRequest{BookingID: "abc123", Amount: 100}

	errs := ValidatePayment(&payment)

	require.Empty(t, errs)
	assert.Equal(t, "USD", payment.Currency)
}

func TestValidatePaymentRejectsNegativeAmount(t *testing.T) {
	payment := domain.PaymentRequest{BookingID: "abc123", Amount: -5}

	errs := ValidatePayment(&payment)

	require.NotEmpty(t, errs)
	assert.Equal(t, "amount", errs[0].Field)
}
