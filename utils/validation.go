package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"travel-booking-service/domain"
)

// FieldError is one validation failure, tagged with the path of the
// offending field ("contactInfo.address.city").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

const (
	dateLayout = "2006-01-02"
)

var travelClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// ValidateFlightSearch checks a raw flight search payload against the
// flight rules, applies defaults and returns the normalized request.
// All rule failures are collected in one pass; a one-way request never
// carries a return date through normalization.
func ValidateFlightSearch(params map[string]interface{}) (domain.FlightSearchRequest, []FieldError) {
	var errs []FieldError
	var req domain.FlightSearchRequest

	req.TripType = stringParam(params, "tripType")
	if req.TripType == "" {
		errs = append(errs, FieldError{"tripType", "tripType is required"})
	} else if req.TripType != domain.TripTypeRoundTrip && req.TripType != domain.TripTypeOneWay {
		errs = append(errs, FieldError{"tripType", "tripType must be one of roundTrip, oneWay"})
	}

	req.Origin = strings.ToUpper(stringParam(params, "origin"))
	if !isLocationCode(req.Origin) {
		errs = append(errs, FieldError{"origin", "origin must be a 3-letter location code"})
	}
	req.Destination = strings.ToUpper(stringParam(params, "destination"))
	if !isLocationCode(req.Destination) {
		errs = append(errs, FieldError{"destination", "destination must be a 3-letter location code"})
	}

	req.FromDate = stringParam(params, "fromDate")
	fromDate, ok := parseDate(req.FromDate)
	if !ok {
		errs = append(errs, FieldError{"fromDate", "fromDate must be a valid ISO date"})
	} else if isPastDate(fromDate) {
		errs = append(errs, FieldError{"fromDate", "fromDate must not be in the past"})
	}

	if req.TripType == domain.TripTypeRoundTrip {
		req.ToDate = stringParam(params, "toDate")
		toDate, ok2 := parseDate(req.ToDate)
		if req.ToDate == "" {
			errs = append(errs, FieldError{"toDate", "toDate is required for round trips"})
		} else if !ok2 {
			errs = append(errs, FieldError{"toDate", "toDate must be a valid ISO date"})
		} else if ok && !toDate.After(fromDate) {
			errs = append(errs, FieldError{"toDate", "toDate must be after fromDate"})
		}
	} else {
		// One-way requests drop any return date instead of failing on it.
		req.ToDate = ""
	}

	req.Adults = intParam(params, "adults", 1)
	if req.Adults < 1 || req.Adults > 9 {
		errs = append(errs, FieldError{"adults", "adults must be between 1 and 9"})
	}
	req.Children = intParam(params, "children", 0)
	if req.Children < 0 || req.Children > 8 {
		errs = append(errs, FieldError{"children", "children must be between 0 and 8"})
	}

	req.TravelClass = stringParam(params, "travelClass")
	if req.TravelClass == "" {
		req.TravelClass = "ECONOMY"
	} else if !travelClasses[req.TravelClass] {
		errs = append(errs, FieldError{"travelClass", "travelClass must be one of ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST"})
	}

	if len(errs) > 0 {
		return domain.FlightSearchRequest{}, errs
	}
	return req, nil
}

// ValidateHotelSearch checks a raw hotel search payload, applies
// defaults and returns the normalized request.
func ValidateHotelSearch(params map[string]interface{}) (domain.HotelSearchRequest, []FieldError) {
	var errs []FieldError
	var req domain.HotelSearchRequest

	req.Destination = stringParam(params, "destination")
	if req.Destination == "" {
		errs = append(errs, FieldError{"destination", "destination is required"})
	}

	req.CheckInDate = stringParam(params, "checkInDate")
	checkIn, inOK := parseDate(req.CheckInDate)
	if !inOK {
		errs = append(errs, FieldError{"checkInDate", "checkInDate must be a valid ISO date"})
	} else if isPastDate(checkIn) {
		errs = append(errs, FieldError{"checkInDate", "checkInDate must not be in the past"})
	}

	req.CheckOutDate = stringParam(params, "checkOutDate")
	checkOut, outOK := parseDate(req.CheckOutDate)
	if !outOK {
		errs = append(errs, FieldError{"checkOutDate", "checkOutDate must be a valid ISO date"})
	} else if inOK && !checkOut.After(checkIn) {
		errs = append(errs, FieldError{"checkOutDate", "checkOutDate must be after checkInDate"})
	}

	req.Rooms = intParam(params, "rooms", 1)
	if req.Rooms < 1 || req.Rooms > 10 {
		errs = append(errs, FieldError{"rooms", "rooms must be between 1 and 10"})
	}
	req.Adults = intParam(params, "adults", 1)
	if req.Adults < 1 || req.Adults > 20 {
		errs = append(errs, FieldError{"adults", "adults must be between 1 and 20"})
	}
	req.Children = intParam(params, "children", 0)
	if req.Children < 0 || req.Children > 10 {
		errs = append(errs, FieldError{"children", "children must be between 0 and 10"})
	}

	if len(errs) > 0 {
		return domain.HotelSearchRequest{}, errs
	}
	return req, nil
}

// ValidateCarSearch checks a raw car rental search payload.
func ValidateCarSearch(params map[string]interface{}) (domain.CarSearchRequest, []FieldError) {
	var errs []FieldError
	var req domain.CarSearchRequest

	req.PickupLocation = stringParam(params, "pickupLocation")
	if req.PickupLocation == "" {
		errs = append(errs, FieldError{"pickupLocation", "pickupLocation is required"})
	}
	req.DropLocation = stringParam(params, "dropLocation")
	if req.DropLocation == "" {
		errs = append(errs, FieldError{"dropLocation", "dropLocation is required"})
	}

	req.FromDateTime = stringParam(params, "fromDateTime")
	from, fromOK := parseDate(req.FromDateTime)
	if !fromOK {
		errs = append(errs, FieldError{"fromDateTime", "fromDateTime must be a valid ISO date"})
	} else if isPastDate(from) {
		errs = append(errs, FieldError{"fromDateTime", "fromDateTime must not be in the past"})
	}

	req.ToDateTime = stringParam(params, "toDateTime")
	to, toOK := parseDate(req.ToDateTime)
	if !toOK {
		errs = append(errs, FieldError{"toDateTime", "toDateTime must be a valid ISO date"})
	} else if fromOK && !to.After(from) {
		errs = append(errs, FieldError{"toDateTime", "toDateTime must be after fromDateTime"})
	}

	age, ok := numberParam(params, "age")
	if !ok {
		errs = append(errs, FieldError{"age", "age is required"})
	} else {
		req.Age = int(age)
		if req.Age < 21 || req.Age > 100 {
			errs = append(errs, FieldError{"age", "driver age must be between 21 and 100"})
		}
	}

	if len(errs) > 0 {
		return domain.CarSearchRequest{}, errs
	}
	return req, nil
}

// ValidateCruiseSearch checks a raw cruise search payload.
func ValidateCruiseSearch(params map[string]interface{}) (domain.CruiseSearchRequest, []FieldError) {
	var errs []FieldError
	var req domain.CruiseSearchRequest

	req.Destination = stringParam(params, "destination")
	if req.Destination == "" {
		errs = append(errs, FieldError{"destination", "destination is required"})
	}
	req.CruiseLine = stringParam(params, "cruiseLine")
	req.ShipName = stringParam(params, "shipName")

	nights, ok := numberParam(params, "nights")
	if !ok {
		errs = append(errs, FieldError{"nights", "nights is required"})
	} else {
		req.Nights = int(nights)
		if req.Nights < 1 || req.Nights > 30 {
			errs = append(errs, FieldError{"nights", "nights must be between 1 and 30"})
		}
	}

	req.Name = stringParam(params, "name")
	if req.Name == "" {
		errs = append(errs, FieldError{"name", "name is required"})
	}

	req.Email = stringParam(params, "email")
	if req.Email == "" {
		errs = append(errs, FieldError{"email", "email is required"})
	} else if validate.Var(req.Email, "email") != nil {
		errs = append(errs, FieldError{"email", "email must be a valid email address"})
	}

	req.Mobile = stringParam(params, "mobile")
	if len(req.Mobile) < 10 || len(req.Mobile) > 15 {
		errs = append(errs, FieldError{"mobile", "mobile must be between 10 and 15 characters"})
	}

	if len(errs) > 0 {
		return domain.CruiseSearchRequest{}, errs
	}
	return req, nil
}

// ValidateBooking checks a booking submission against the booking schema.
func ValidateBooking(booking *domain.Booking) []FieldError {
	return translate(validate.Struct(booking))
}

// ValidatePayment checks a payment submission and defaults the currency.
func ValidatePayment(payment *domain.PaymentRequest) []FieldError {
	if payment.Currency == "" {
		payment.Currency = "USD"
	}
	return translate(validate.Struct(payment))
}

// ValidatePromoRequest checks a promo code lookup payload.
func ValidatePromoRequest(promo *domain.PromoRequest) []FieldError {
	return translate(validate.Struct(promo))
}

func translate(err error) []FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace,
// leaving the json path ("Booking.contactInfo.address.city" ->
// "contactInfo.address.city").
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		return fmt.Sprintf("%s must have at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// numberParam reads a numeric field, tolerating JSON numbers and
// numeric strings the way the browser forms submit them.
func numberParam(params map[string]interface{}, key string) (float64, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func intParam(params map[string]interface{}, key string, fallback int) int {
	if n, ok := numberParam(params, key); ok {
		return int(n)
	}
	return fallback
}

func isLocationCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isPastDate reports whether a requested date falls before today.
// Date-only values are compared at day granularity so a booking for
// later today still passes.
func isPastDate(t time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.Before(today)
}
