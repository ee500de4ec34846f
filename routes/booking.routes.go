package routes

import (
	"github.com/gin-gonic/gin"

	"travel-booking-service/handlers"
)

type BookingRouteHandler struct {
	bookingHandler handlers.BookingHandler
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler}
}

func (r BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	router := rg.Group("/booking")

	router.POST("", r.bookingHandler.CreateBooking)
	router.GET("/:id", r.bookingHandler.GetBooking)
	router.POST("/validate-promo", r.bookingHandler.ValidatePromo)
}
