package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"travel-booking-service/domain"
	error2 "travel-booking-service/error"
	"travel-booking-service/services"
	"travel-booking-service/utils"
)

type BookingHandler struct {
	bookingService services.BookingService
	mailer         *utils.Mailer
	tracer         trace.Tracer
	logger         *logrus.Logger
}

func NewBookingHandler(bookingService services.BookingService, mailer *utils.Mailer, tracer trace.Tracer, logger *logrus.Logger) BookingHandler {
	return BookingHandler{bookingService: bookingService, mailer: mailer, tracer: tracer, logger: logger}
}

func (h *BookingHandler) CreateBooking(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "BookingHandler.CreateBooking")
	defer span.End()

	var booking domain.Booking
	if err := ctx.ShouldBindJSON(&booking); err != nil {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := utils.ValidateBooking(&booking); len(fieldErrors) > 0 {
		error2.ReturnValidationErrors(ctx, http.StatusBadRequest, fieldErrors)
		return
	}

	created, err := h.bookingService.CreateBooking(spanCtx, &booking)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to persist booking")
		error2.ReturnJSONError(ctx, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if h.mailer.Enabled() {
		go func(b domain.Booking) {
			if err := h.mailer.SendBookingConfirmation(&b); err != nil {
				h.logger.WithFields(logrus.Fields{"bookingId": b.ID.Hex(), "error": err.Error()}).
					Warn("Failed to send booking confirmation email")
			}
		}(*created)
	}

	error2.ReturnJSONSuccess(ctx, http.StatusCreated, created, "Booking created successfully")
}

func (h *BookingHandler) GetBooking(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "BookingHandler.GetBooking")
	defer span.End()

	booking, err := h.bookingService.GetBooking(spanCtx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			error2.ReturnJSONError(ctx, http.StatusNotFound, "Booking not found")
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to load booking")
		error2.ReturnJSONError(ctx, http.StatusInternalServerError, "Failed to load booking")
		return
	}

	error2.ReturnJSONSuccess(ctx, http.StatusOK, booking, "Booking fetched successfully")
}

func (h *BookingHandler) ValidatePromo(ctx *gin.Context) {
	_, span := h.tracer.Start(ctx.Request.Context(), "BookingHandler.ValidatePromo")
	defer span.End()

	var promo domain.PromoRequest
	if err := ctx.ShouldBindJSON(&promo); err != nil {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := utils.ValidatePromoRequest(&promo); len(fieldErrors) > 0 {
		error2.ReturnValidationErrors(ctx, http.StatusBadRequest, fieldErrors)
		return
	}

	result := h.bookingService.ValidatePromo(promo.Code, promo.Amount)
	if !result.Valid {
		ctx.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid promo code"})
		return
	}

	error2.ReturnJSONSuccess(ctx, http.StatusOK, result, "Promo code applied")
}
