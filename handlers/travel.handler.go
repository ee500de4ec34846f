package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	error2 "travel-booking-service/error"
	"travel-booking-service/services"
	"travel-booking-service/utils"
)

type TravelHandler struct {
	travelService services.TravelService
	tracer        trace.Tracer
	logger        *logrus.Logger
}

func NewTravelHandler(travelService services.TravelService, tracer trace.Tracer, logger *logrus.Logger) TravelHandler {
	return TravelHandler{travelService: travelService, tracer: tracer, logger: logger}
}

func (h *TravelHandler) SearchFlights(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "TravelHandler.SearchFlights")
	defer span.End()

	var params map[string]interface{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, fieldErrors := utils.ValidateFlightSearch(params)
	if len(fieldErrors) > 0 {
		error2.ReturnValidationErrors(ctx, http.StatusBadRequest, fieldErrors)
		return
	}

	offers := h.travelService.SearchFlights(spanCtx, req)
	error2.ReturnJSONSuccess(ctx, http.StatusOK, offers, "Flights fetched successfully")
}

func (h *TravelHandler) SearchHotels(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "TravelHandler.SearchHotels")
	defer span.End()

	var params map[string]interface{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, fieldErrors := utils.ValidateHotelSearch(params)
	if len(fieldErrors) > 0 {
		error2.ReturnValidationErrors(ctx, http.StatusBadRequest, fieldErrors)
		return
	}

	offers := h.travelService.SearchHotels(spanCtx, req)
	error2.ReturnJSONSuccess(ctx, http.StatusOK, offers, "Hotels fetched successfully")
}

func (h *TravelHandler) SearchCars(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "TravelHandler.SearchCars")
	defer span.End()

	var params map[string]interface{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, fieldErrors := utils.ValidateCarSearch(params)
	if len(fieldErrors) > 0 {
		error2.ReturnValidationErrors(ctx, http.StatusBadRequest, fieldErrors)
		return
	}

	offers := h.travelService.SearchCars(spanCtx, req)
	error2.ReturnJSONSuccess(ctx, http.StatusOK, offers, "Cars fetched successfully")
}

func (h *TravelHandler) SearchCruises(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "TravelHandler.SearchCruises")
	defer span.End()

	var params map[string]interface{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, fieldErrors := utils.ValidateCruiseSearch(params)
	if len(fieldErrors) > 0 {
		error2.ReturnValidationErrors(ctx, http.StatusBadRequest, fieldErrors)
		return
	}

	offers := h.travelService.SearchCruises(spanCtx, req)
	error2.ReturnJSONSuccess(ctx, http.StatusOK, offers, "Cruises fetched successfully")
}

func (h *TravelHandler) SearchAirports(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "TravelHandler.SearchAirports")
	defer span.End()

	keyword := ctx.Query("q")
	if len(keyword) < 2 {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Keyword must be at least 2 characters")
		return
	}

	suggestions := h.travelService.SearchLocations(spanCtx, keyword)
	error2.ReturnJSONSuccess(ctx, http.StatusOK, suggestions, "Locations fetched successfully")
}
