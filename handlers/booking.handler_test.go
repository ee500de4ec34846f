package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"

	"travel-booking-service/config"
	"travel-booking-service/domain"
	"travel-booking-service/services"
	"travel-booking-service/utils"
)

type fakeBookingService struct {
	created *domain.Booking
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.Status = domain.BookingStatusPending
	f.created = booking
	return booking, nil
}

func (f *fakeBookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if f.created != nil && f.created.ID.Hex() == id {
		return f.created, nil
	}
	return nil, services.ErrBookingNotFound
}

func (f *fakeBookingService) ValidatePromo(code string, amount float64) domain.PromoResult {
	discount, ok := services.NewDefaultPromoPolicy().Discount(code, amount)
	if !ok {
		return domain.PromoResult{Code: code}
	}
	return domain.PromoResult{Valid: true, Code: code, Discount: discount, FinalPrice: amount - discount}
}

func newBookingRouter(svc services.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	h := NewBookingHandler(svc, utils.NewMailer(config.Config{}), otel.Tracer("test"), logger)

	router := gin.New()
	group := router.Group("/api/booking")
	group.POST("", h.CreateBooking)
	group.GET("/:id", h.GetBooking)
	group.POST("/validate-promo", h.ValidatePromo)
	return router
}

const validBookingBody = `{
	"type": "flight",
	"details": {"flightNumber": "AA123"},
	"passengers": [
		{"firstName": "Jane", "lastName": "Doe", "dateOfBirth": "1990-04-01", "gender": "female"}
	],
	"contactInfo": {
		"email": "jane@example.com",
		"phone": "15550001234",
		"address": {
			"street": "123 Main Street",
			"city": "New York",
			"state": "NY",
			"zipCode": "10001",
			"country": "US"
		}
	},
	"pricing": {"basePrice": 500, "currency": "USD"}
}`

func TestCreateBookingSuccess(t *testing.T) {
	fake := &fakeBookingService{}
	router := newBookingRouter(fake)

	rec := postJSON(router, "/api/booking", validBookingBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Booking created successfully", env.Message)
	require.NotNil(t, fake.created)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, domain.BookingStatusPending, created["status"])
}

func TestCreateBookingValidationFailure(t *testing.T) {
	fake := &fakeBookingService{}
	router := newBookingRouter(fake)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validBookingBody), &payload))
	payload["contactInfo"].(map[string]interface{})["address"].(map[string]interface{})["city"] = ""
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := postJSON(router, "/api/booking", string(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, errorFields(env)["contactInfo.address.city"])
	assert.Nil(t, fake.created)
}

func TestGetBookingNotFound(t *testing.T) {
	router := newBookingRouter(&fakeBookingService{})

	req, _ := http.NewRequest(http.MethodGet, "/api/booking/"+primitive.NewObjectID().Hex(), nil)
	rec := performRequest(router, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Booking not found", env.Message)
}

func TestValidatePromoKnownCode(t *testing.T) {
	router := newBookingRouter(&fakeBookingService{})

	rec := postJSON(router, "/api/booking/validate-promo", `{"code":"WELCOME10","amount":500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var result domain.PromoResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Valid)
	assert.Equal(t, 50.0, result.Discount)
	assert.Equal(t, 450.0, result.FinalPrice)
}

func TestValidatePromoUnknownCode(t *testing.T) {
	router := newBookingRouter(&fakeBookingService{})

	rec := postJSON(router, "/api/booking/validate-promo", `{"code":"NOPE","amount":500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid promo code", env.Message)
}

func TestValidatePromoMissingCode(t *testing.T) {
	router := newBookingRouter(&fakeBookingService{})

	rec := postJSON(router, "/api/booking/validate-promo", `{"amount":500}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, errorFields(env)["code"])
}
