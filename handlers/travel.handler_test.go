package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"travel-booking-service/amadeus"
	"travel-booking-service/config"
	"travel-booking-service/services"
	"travel-booking-service/utils"
)

type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Errors  []utils.FieldError `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func errorFields(env envelope) map[string]bool {
	fields := make(map[string]bool)
	for _, fe := range env.Errors {
		fields[fe.Field] = true
	}
	return fields
}

func newTravelRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	client := amadeus.NewClient(config.Config{}, logger)
	svc := services.NewTravelServiceImpl(client, services.NewNoOpCache(), otel.Tracer("test"), logger)
	h := NewTravelHandler(svc, otel.Tracer("test"), logger)

	router := gin.New()
	group := router.Group("/api/travel")
	group.POST("/flights", h.SearchFlights)
	group.POST("/hotels", h.SearchHotels)
	group.POST("/cars", h.SearchCars)
	group.POST("/cruises", h.SearchCruises)
	group.GET("/airports", h.SearchAirports)
	return router
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return performRequest(router, req)
}

func TestSearchFlightsInvalidBody(t *testing.T) {
	router := newTravelRouter()

	rec := postJSON(router, "/api/travel/flights", "not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestSearchFlightsValidationFailure(t *testing.T) {
	router := newTravelRouter()

	rec := postJSON(router, "/api/travel/flights", `{"tripType":"roundTrip","origin":"JFK","destination":"LAX"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	fields := errorFields(env)
	assert.True(t, fields["fromDate"])
	assert.True(t, fields["toDate"])
}

func TestSearchFlightsReturnsOffers(t *testing.T) {
	router := newTravelRouter()
	fromDate := time.Now().AddDate(0, 0, 30).Format("2006-01-02")

	rec := postJSON(router, "/api/travel/flights",
		`{"tripType":"oneWay","origin":"JFK","destination":"LAX","fromDate":"`+fromDate+`","adults":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Flights fetched successfully", env.Message)

	var offers []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &offers))
	require.Len(t, offers, 2)
	for _, offer := range offers {
		assert.Equal(t, "mock", offer["source"])
	}
}

func TestSearchCarsRejectsUnderageDriver(t *testing.T) {
	router := newTravelRouter()
	from := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	to := time.Now().AddDate(0, 0, 8).Format("2006-01-02")

	rec := postJSON(router, "/api/travel/cars",
		`{"pickupLocation":"JFK Airport","dropLocation":"LAX Airport","fromDateTime":"`+from+`","toDateTime":"`+to+`","age":18}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, errorFields(env)["age"])
}

func TestSearchCruisesReturnsOffers(t *testing.T) {
	router := newTravelRouter()

	rec := postJSON(router, "/api/travel/cruises",
		`{"destination":"Caribbean","nights":7,"name":"Jane Doe","email":"jane@example.com","mobile":"15550001234"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var offers []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &offers))
	assert.Len(t, offers, 2)
}

func TestSearchAirportsShortKeyword(t *testing.T) {
	router := newTravelRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/travel/airports?q=a", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Keyword must be at least 2 characters", env.Message)
}

func TestSearchAirportsStaticSuggestions(t *testing.T) {
	router := newTravelRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/travel/airports?q=paris", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var suggestions []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &suggestions))
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.Equal(t, "mock", s["source"])
	}
}
