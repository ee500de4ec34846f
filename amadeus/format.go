package amadeus

import (
	"sort"
	"strconv"

	"travel-booking-service/domain"
)

// Provider response shapes. Every nested field is optional on the wire;
// the Format functions are total over whatever subset arrives.

type FlightOffersResponse struct {
	Data []FlightOfferEntry `json:"data"`
}

type FlightOfferEntry struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       OfferPrice  `json:"price"`
	TravelerPricings []struct {
		FareDetailsBySegment []struct {
			Cabin string `json:"cabin"`
		} `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   SegmentPoint `json:"departure"`
	Arrival     SegmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
}

type SegmentPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

type OfferPrice struct {
	Total    string `json:"total"`
	Base     string `json:"base"`
	Currency string `json:"currency"`
}

type hotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
	} `json:"data"`
}

type HotelOffersResponse struct {
	Data []HotelOfferEntry `json:"data"`
}

type HotelOfferEntry struct {
	Hotel  HotelInfo    `json:"hotel"`
	Offers []HotelOffer `json:"offers"`
}

type HotelInfo struct {
	HotelID string `json:"hotelId"`
	Name    string `json:"name"`
	Rating  string `json:"rating"`
	Address struct {
		Lines       []string `json:"lines"`
		CityName    string   `json:"cityName"`
		CountryCode string   `json:"countryCode"`
	} `json:"address"`
	GeoCode struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geoCode"`
}

type HotelOffer struct {
	CheckInDate  string     `json:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate"`
	Price        OfferPrice `json:"price"`
	Room         struct {
		TypeEstimated struct {
			Category string `json:"category"`
		} `json:"typeEstimated"`
		Description struct {
			Text string `json:"text"`
		} `json:"description"`
	} `json:"room"`
}

type LocationsResponse struct {
	Data []LocationEntry `json:"data"`
}

type LocationEntry struct {
	ID       string `json:"id"`
	SubType  string `json:"subType"`
	Name     string `json:"name"`
	IataCode string `json:"iataCode"`
	Address  struct {
		CityName    string `json:"cityName"`
		CountryName string `json:"countryName"`
	} `json:"address"`
	GeoCode struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geoCode"`
	Analytics *struct {
		Travelers struct {
			Score float64 `json:"score"`
		} `json:"travelers"`
	} `json:"analytics"`
}

const defaultRelevance = 50

// FormatFlightOffers maps provider flight offers into the internal
// shape: airline and flight number come from the first segment of the
// first itinerary, arrival details from its last segment, and the stop
// count is one less than the segment count.
func FormatFlightOffers(resp *FlightOffersResponse) []domain.FlightOffer {
	if resp == nil {
		return []domain.FlightOffer{}
	}

	offers := make([]domain.FlightOffer, 0, len(resp.Data))
	for _, entry := range resp.Data {
		offer := domain.FlightOffer{
			ID:     entry.ID,
			Price:  formatPrice(entry.Price),
			Class:  "ECONOMY",
			Source: domain.SourceLive,
		}

		if len(entry.TravelerPricings) > 0 && len(entry.TravelerPricings[0].FareDetailsBySegment) > 0 {
			if cabin := entry.TravelerPricings[0].FareDetailsBySegment[0].Cabin; cabin != "" {
				offer.Class = cabin
			}
		}

		if len(entry.Itineraries) > 0 {
			outbound := entry.Itineraries[0]
			offer.Duration = outbound.Duration
			if len(outbound.Segments) > 0 {
				first := outbound.Segments[0]
				last := outbound.Segments[len(outbound.Segments)-1]
				offer.Airline = first.CarrierCode
				offer.FlightNumber = first.CarrierCode + first.Number
				offer.Departure = domain.FlightEndpoint{
					Airport:  first.Departure.IataCode,
					Time:     first.Departure.At,
					Terminal: first.Departure.Terminal,
				}
				offer.Arrival = domain.FlightEndpoint{
					Airport:  last.Arrival.IataCode,
					Time:     last.Arrival.At,
					Terminal: last.Arrival.Terminal,
				}
				offer.Stops = len(outbound.Segments) - 1
			}
		}
		if offer.Airline == "" {
			offer.Airline = "Unknown"
		}

		offers = append(offers, offer)
	}
	return offers
}

// FormatHotelOffers maps provider hotel entries into the internal
// shape, taking the first offer of each property.
func FormatHotelOffers(resp *HotelOffersResponse) []domain.HotelOffer {
	if resp == nil {
		return []domain.HotelOffer{}
	}

	offers := make([]domain.HotelOffer, 0, len(resp.Data))
	for _, entry := range resp.Data {
		var first HotelOffer
		if len(entry.Offers) > 0 {
			first = entry.Offers[0]
		}

		var line1 string
		if len(entry.Hotel.Address.Lines) > 0 {
			line1 = entry.Hotel.Address.Lines[0]
		}

		roomType := first.Room.TypeEstimated.Category
		if roomType == "" {
			roomType = "Standard"
		}

		offers = append(offers, domain.HotelOffer{
			ID:     entry.Hotel.HotelID,
			Name:   entry.Hotel.Name,
			Rating: parseRating(entry.Hotel.Rating),
			Address: domain.HotelAddress{
				Line1:   line1,
				City:    entry.Hotel.Address.CityName,
				Country: entry.Hotel.Address.CountryCode,
			},
			Coordinates: domain.Coordinates{
				Latitude:  entry.Hotel.GeoCode.Latitude,
				Longitude: entry.Hotel.GeoCode.Longitude,
			},
			Price:       formatPrice(first.Price),
			CheckIn:     first.CheckInDate,
			CheckOut:    first.CheckOutDate,
			RoomType:    roomType,
			Description: first.Room.Description.Text,
			Source:      domain.SourceLive,
		})
	}
	return offers
}

// FormatLocations maps provider location entries into suggestions.
// Entries missing both a code and a name are dropped; the remainder is
// ordered by descending relevance.
func FormatLocations(resp *LocationsResponse) []domain.LocationSuggestion {
	if resp == nil {
		return []domain.LocationSuggestion{}
	}

	suggestions := make([]domain.LocationSuggestion, 0, len(resp.Data))
	for _, entry := range resp.Data {
		if entry.IataCode == "" && entry.Name == "" {
			continue
		}

		locType := "airport"
		if entry.SubType == "CITY" {
			locType = "city"
		}

		relevance := float64(defaultRelevance)
		if entry.Analytics != nil && entry.Analytics.Travelers.Score > 0 {
			relevance = entry.Analytics.Travelers.Score
		}

		suggestions = append(suggestions, domain.LocationSuggestion{
			ID:      entry.ID,
			Type:    locType,
			Name:    entry.Name,
			Code:    entry.IataCode,
			City:    entry.Address.CityName,
			Country: entry.Address.CountryName,
			Coordinates: domain.Coordinates{
				Latitude:  entry.GeoCode.Latitude,
				Longitude: entry.GeoCode.Longitude,
			},
			Relevance: relevance,
			Source:    domain.SourceLive,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Relevance > suggestions[j].Relevance
	})
	return suggestions
}

// parseRating tolerates the provider's string-typed star rating;
// anything unparseable maps to 0.
func parseRating(s string) float64 {
	if s == "" {
		return 0
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r < 0 {
		return 0
	}
	if r > 5 {
		r = 5
	}
	return r
}

func formatPrice(p OfferPrice) domain.Price {
	price := domain.Price{Total: p.Total, Currency: p.Currency, Base: p.Base}
	if price.Total == "" {
		price.Total = "0"
	}
	if price.Currency == "" {
		price.Currency = "USD"
	}
	return price
}
