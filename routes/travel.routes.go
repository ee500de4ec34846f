package routes

import (
	"github.com/gin-gonic/gin"

	"travel-booking-service/handlers"
)

type TravelRouteHandler struct {
	travelHandler handlers.TravelHandler
}

func NewTravelRouteHandler(travelHandler handlers.TravelHandler) TravelRouteHandler {
	return TravelRouteHandler{travelHandler}
}

func (r TravelRouteHandler) TravelRoute(rg *gin.RouterGroup) {
	router := rg.Group("/travel")

	router.POST("/flights", r.travelHandler.SearchFlights)
	router.POST("/hotels", r.travelHandler.SearchHotels)
	router.POST("/cars", r.travelHandler.SearchCars)
	router.POST("/cruises", r.travelHandler.SearchCruises)
	router.GET("/airports", r.travelHandler.SearchAirports)
}
