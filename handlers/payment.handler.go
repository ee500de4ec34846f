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

type PaymentHandler struct {
	paymentService services.PaymentService
	tracer         trace.Tracer
	logger         *logrus.Logger
}

func NewPaymentHandler(paymentService services.PaymentService, tracer trace.Tracer, logger *logrus.Logger) PaymentHandler {
	return PaymentHandler{paymentService: paymentService, tracer: tracer, logger: logger}
}

func (h *PaymentHandler) CreateOrder(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "PaymentHandler.CreateOrder")
	defer span.End()

	req, ok := h.bindPaymentRequest(ctx)
	if !ok {
		return
	}

	payment, err := h.paymentService.CreateOrder(spanCtx, req)
	if err != nil {
		h.respondPaymentError(ctx, err, "Failed to create payment order")
		return
	}

	error2.ReturnJSONSuccess(ctx, http.StatusCreated, payment, "Payment order created successfully")
}

func (h *PaymentHandler) ProcessPayment(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "PaymentHandler.ProcessPayment")
	defer span.End()

	req, ok := h.bindPaymentRequest(ctx)
	if !ok {
		return
	}

	payment, err := h.paymentService.ProcessPayment(spanCtx, req)
	if err != nil {
		h.respondPaymentError(ctx, err, "Failed to process payment")
		return
	}

	error2.ReturnJSONSuccess(ctx, http.StatusOK, payment, "Payment processed successfully")
}

func (h *PaymentHandler) VerifyPayment(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "PaymentHandler.VerifyPayment")
	defer span.End()

	var body struct {
		BookingID string `json:"bookingId"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || body.BookingID == "" {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "bookingId is required")
		return
	}

	payment, err := h.paymentService.VerifyPayment(spanCtx, body.BookingID)
	if err != nil {
		h.respondPaymentError(ctx, err, "Failed to verify payment")
		return
	}

	error2.ReturnJSONSuccess(ctx, http.StatusOK, payment, "Payment verified")
}

func (h *PaymentHandler) PaymentStatus(ctx *gin.Context) {
	spanCtx, span := h.tracer.Start(ctx.Request.Context(), "PaymentHandler.PaymentStatus")
	defer span.End()

	payment, err := h.paymentService.PaymentStatus(spanCtx, ctx.Param("bookingId"))
	if err != nil {
		h.respondPaymentError(ctx, err, "Failed to load payment status")
		return
	}

	error2.ReturnJSONSuccess(ctx, http.StatusOK, payment, "Payment status fetched successfully")
}

func (h *PaymentHandler) bindPaymentRequest(ctx *gin.Context) (domain.PaymentRequest, bool) {
	var req domain.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		error2.ReturnJSONError(ctx, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	if fieldErrors := utils.ValidatePayment(&req); len(fieldErrors) > 0 {
		error2.ReturnValidationErrors(ctx, http.StatusBadRequest, fieldErrors)
		return req, false
	}
	return req, true
}

func (h *PaymentHandler) respondPaymentError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		error2.ReturnJSONError(ctx, http.StatusNotFound, "Booking not found")
	case errors.Is(err, services.ErrPaymentNotFound):
		error2.ReturnJSONError(ctx, http.StatusNotFound, "Payment not found")
	default:
		h.logger.WithField("error", err.Error()).Error(fallback)
		error2.ReturnJSONError(ctx, http.StatusInternalServerError, fallback)
	}
}
