package services

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"travel-booking-service/domain"
)

// Synthetic offer generation for provider outages. Each generator
// returns exactly two offers with every display field filled in from
// the request, tagged with the synthetic source marker. Price envelopes
// mirror the ones the booking UI was built against.

func MockFlightOffers(req domain.FlightSearchRequest) []domain.FlightOffer {
	basePrice := float64(300 + rand.Intn(400))
	roundTrip := req.TripType == domain.TripTypeRoundTrip

	var returnPrice float64
	if roundTrip {
		returnPrice = basePrice + 100
	}

	travelClass := req.TravelClass
	if travelClass == "" {
		travelClass = "ECONOMY"
	}

	first := domain.FlightOffer{
		ID:           "mock-1",
		Airline:      "AA",
		FlightNumber: "AA123",
		Departure: domain.FlightEndpoint{
			Airport:  req.Origin,
			Time:     req.FromDate + "T08:00:00",
			Terminal: "1",
		},
		Arrival: domain.FlightEndpoint{
			Airport:  req.Destination,
			Time:     req.FromDate + "T11:30:00",
			Terminal: "2",
		},
		Duration: "PT3H30M",
		Stops:    0,
		Price:    mockPrice(basePrice),
		Class:    travelClass,
		Source:   domain.SourceSynthetic,
	}
	if roundTrip {
		first.Return = &domain.FlightLeg{
			Departure: domain.FlightEndpoint{
				Airport:  req.Destination,
				Time:     req.ToDate + "T14:00:00",
				Terminal: "2",
			},
			Arrival: domain.FlightEndpoint{
				Airport:  req.Origin,
				Time:     req.ToDate + "T17:30:00",
				Terminal: "1",
			},
			Duration: "PT3H30M",
			Stops:    0,
			Price:    mockPrice(returnPrice),
		}
	}

	second := domain.FlightOffer{
		ID:           "mock-2",
		Airline:      "DL",
		FlightNumber: "DL456",
		Departure: domain.FlightEndpoint{
			Airport:  req.Origin,
			Time:     req.FromDate + "T14:00:00",
			Terminal: "3",
		},
		Arrival: domain.FlightEndpoint{
			Airport:  req.Destination,
			Time:     req.FromDate + "T18:45:00",
			Terminal: "1",
		},
		Duration: "PT4H45M",
		Stops:    1,
		Price:    mockPrice(basePrice - 40),
		Class:    travelClass,
		Source:   domain.SourceSynthetic,
	}
	if roundTrip {
		second.Return = &domain.FlightLeg{
			Departure: domain.FlightEndpoint{
				Airport:  req.Destination,
				Time:     req.ToDate + "T09:00:00",
				Terminal: "1",
			},
			Arrival: domain.FlightEndpoint{
				Airport:  req.Origin,
				Time:     req.ToDate + "T12:15:00",
				Terminal: "3",
			},
			Duration: "PT3H15M",
			Stops:    0,
			Price:    mockPrice(returnPrice - 40),
		}
	}

	return []domain.FlightOffer{first, second}
}

func MockHotelOffers(req domain.HotelSearchRequest) []domain.HotelOffer {
	nights := daysBetween(req.CheckInDate, req.CheckOutDate)
	nightlyRate := float64(100 + rand.Intn(200))

	return []domain.HotelOffer{
		{
			ID:     "mock-1",
			Name:   "Luxury Hotel",
			Rating: 4.5,
			Address: domain.HotelAddress{
				Line1:   "123 Main Street",
				City:    req.Destination,
				Country: "US",
			},
			Coordinates: domain.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
			Price: domain.Price{
				Total:    formatAmount(nightlyRate * float64(nights)),
				Currency: "USD",
				Base:     formatAmount(nightlyRate * float64(nights)),
			},
			CheckIn:     req.CheckInDate,
			CheckOut:    req.CheckOutDate,
			RoomType:    "Deluxe King",
			Description: "Spacious room with king bed and city view",
			Amenities:   []string{"Free WiFi", "Swimming Pool", "Fitness Center", "Restaurant"},
			Source:      domain.SourceSynthetic,
		},
		{
			ID:     "mock-2",
			Name:   "Budget Inn",
			Rating: 3.2,
			Address: domain.HotelAddress{
				Line1:   "456 Side Street",
				City:    req.Destination,
				Country: "US",
			},
			Coordinates: domain.Coordinates{Latitude: 40.7138, Longitude: -74.0070},
			Price: domain.Price{
				Total:    formatAmount(nightlyRate * 0.6 * float64(nights)),
				Currency: "USD",
				Base:     formatAmount(nightlyRate * 0.6 * float64(nights)),
			},
			CheckIn:     req.CheckInDate,
			CheckOut:    req.CheckOutDate,
			RoomType:    "Standard Queen",
			Description: "Comfortable room with queen bed",
			Amenities:   []string{"Free WiFi", "Parking", "Breakfast Included"},
			Source:      domain.SourceSynthetic,
		},
	}
}

func MockCarOffers(req domain.CarSearchRequest) []domain.CarOffer {
	days := daysBetween(req.FromDateTime, req.ToDateTime)
	dailyRate := float64(30 + rand.Intn(70))
	duration := strconv.Itoa(days) + " days"

	dropLocation := req.DropLocation
	if dropLocation == "" {
		dropLocation = req.PickupLocation
	}

	return []domain.CarOffer{
		{
			ID:             "mock-1",
			Provider:       "Hertz",
			CarType:        "Economy",
			Model:          "Toyota Corolla",
			Price:          formatAmount(dailyRate * float64(days)),
			Duration:       duration,
			Image:          "/images/car-1.jpg",
			Features:       []string{"5 Seats", "Automatic", "Air Conditioning"},
			PickupLocation: req.PickupLocation,
			DropLocation:   dropLocation,
			FromDateTime:   req.FromDateTime,
			ToDateTime:     req.ToDateTime,
			Source:         domain.SourceSynthetic,
		},
		{
			ID:             "mock-2",
			Provider:       "Avis",
			CarType:        "SUV",
			Model:          "Honda CR-V",
			Price:          formatAmount(dailyRate * 1.5 * float64(days)),
			Duration:       duration,
			Image:          "/images/car-2.jpg",
			Features:       []string{"5 Seats", "Automatic", "Air Conditioning", "GPS"},
			PickupLocation: req.PickupLocation,
			DropLocation:   dropLocation,
			FromDateTime:   req.FromDateTime,
			ToDateTime:     req.ToDateTime,
			Source:         domain.SourceSynthetic,
		},
	}
}

func MockCruiseOffers(req domain.CruiseSearchRequest) []domain.CruiseOffer {
	voyageRate := float64(500 + rand.Intn(1000))

	nights := req.Nights
	if nights < 1 {
		nights = 7
	}
	destination := req.Destination
	if destination == "" {
		destination = "Caribbean"
	}

	return []domain.CruiseOffer{
		{
			ID:            "mock-1",
			CruiseLine:    "Royal Caribbean",
			ShipName:      "Symphony of the Seas",
			Destination:   destination,
			Nights:        nights,
			Price:         formatAmount(voyageRate * float64(nights)),
			DepartureDate: upcomingDeparture(14),
			Image:         "/images/cruise-1.jpg",
			Itinerary:     []string{"Miami", "Nassau", "St. Thomas", "St. Maarten"},
			Amenities:     []string{"All Meals Included", "Swimming Pools", "Entertainment", "Fitness Center"},
			Source:        domain.SourceSynthetic,
		},
		{
			ID:            "mock-2",
			CruiseLine:    "Norwegian",
			ShipName:      "Norwegian Escape",
			Destination:   destination,
			Nights:        nights,
			Price:         formatAmount(voyageRate * 0.8 * float64(nights)),
			DepartureDate: upcomingDeparture(21),
			Image:         "/images/cruise-2.jpg",
			Itinerary:     []string{"Orlando", "Great Stirrup Cay", "Nassau"},
			Amenities:     []string{"All Meals Included", "Casino", "Spa", "Multiple Restaurants"},
			Source:        domain.SourceSynthetic,
		},
	}
}

func mockPrice(amount float64) domain.Price {
	return domain.Price{Total: formatAmount(amount), Currency: "USD"}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// daysBetween counts calendar days between two ISO date strings,
// rounding partial days up and never returning less than one.
func daysBetween(from, to string) int {
	start, err1 := parseAnyDate(from)
	end, err2 := parseAnyDate(to)
	if err1 != nil || err2 != nil || !end.After(start) {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

func parseAnyDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func upcomingDeparture(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
}
