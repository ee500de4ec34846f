package routes

import (
	"github.com/gin-gonic/gin"

	"travel-booking-service/handlers"
)

type PaymentRouteHandler struct {
	paymentHandler handlers.PaymentHandler
}

func NewPaymentRouteHandler(paymentHandler handlers.PaymentHandler) PaymentRouteHandler {
	return PaymentRouteHandler{paymentHandler}
}

func (r PaymentRouteHandler) PaymentRoute(rg *gin.RouterGroup) {
	router := rg.Group("/payment")

	router.POST("/create-order", r.paymentHandler.CreateOrder)
	router.POST("/process", r.paymentHandler.ProcessPayment)
	router.POST("/verify", r.paymentHandler.VerifyPayment)
	router.GET("/status/:bookingId", r.paymentHandler.PaymentStatus)
}
