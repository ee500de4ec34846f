package domain

const (
	SourceLive      = "amadeus"
	SourceSynthetic = "mock"
)

const (
	TripTypeRoundTrip = "roundTrip"
	TripTypeOneWay    = "oneWay"
)

// Search requests carry dates as ISO strings ("2006-01-02" or RFC 3339)
// exactly as the browser submits them; validation parses and checks them
// without changing the representation handed to the provider.

type FlightSearchRequest struct {
	TripType    string `json:"tripType"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate,omitempty"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	TravelClass string `json:"travelClass"`
}

type HotelSearchRequest struct {
	Destination  string `json:"destination"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Rooms        int    `json:"rooms"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
}

type CarSearchRequest struct {
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	FromDateTime   string `json:"fromDateTime"`
	ToDateTime     string `json:"toDateTime"`
	Age            int    `json:"age"`
}

type CruiseSearchRequest struct {
	Destination string `json:"destination"`
	CruiseLine  string `json:"cruiseLine,omitempty"`
	ShipName    string `json:"shipName,omitempty"`
	Nights      int    `json:"nights"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
	Base     string `json:"base,omitempty"`
}

type FlightEndpoint struct {
	Airport  string `json:"airport"`
	Time     string `json:"time"`
	Terminal string `json:"terminal,omitempty"`
}

type FlightLeg struct {
	Departure FlightEndpoint `json:"departure"`
	Arrival   FlightEndpoint `json:"arrival"`
	Duration  string         `json:"duration"`
	Stops     int            `json:"stops"`
	Price     Price          `json:"price"`
}

type FlightOffer struct {
	ID           string         `json:"id"`
	Airline      string         `json:"airline"`
	FlightNumber string         `json:"flightNumber"`
	Departure    FlightEndpoint `json:"departure"`
	Arrival      FlightEndpoint `json:"arrival"`
	Duration     string         `json:"duration"`
	Stops        int            `json:"stops"`
	Price        Price          `json:"price"`
	Class        string         `json:"class"`
	Source       string         `json:"source"`
	Return       *FlightLeg     `json:"return,omitempty"`
}

type HotelAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HotelOffer struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Rating      float64      `json:"rating"`
	Address     HotelAddress `json:"address"`
	Coordinates Coordinates  `json:"coordinates"`
	Price       Price        `json:"price"`
	CheckIn     string       `json:"checkIn"`
	CheckOut    string       `json:"checkOut"`
	RoomType    string       `json:"roomType"`
	Description string       `json:"description,omitempty"`
	Amenities   []string     `json:"amenities,omitempty"`
	Source      string       `json:"source"`
}

type CarOffer struct {
	ID             string   `json:"id"`
	Provider       string   `json:"provider"`
	CarType        string   `json:"carType"`
	Model          string   `json:"model"`
	Price          string   `json:"price"`
	Duration       string   `json:"duration"`
	Image          string   `json:"image"`
	Features       []string `json:"features"`
	PickupLocation string   `json:"pickupLocation"`
	DropLocation   string   `json:"dropLocation"`
	FromDateTime   string   `json:"fromDateTime"`
	ToDateTime     string   `json:"toDateTime"`
	Source         string   `json:"source"`
}

type CruiseOffer struct {
	ID            string   `json:"id"`
	CruiseLine    string   `json:"cruiseLine"`
	ShipName      string   `json:"shipName"`
	Destination   string   `json:"destination"`
	Nights        int      `json:"nights"`
	Price         string   `json:"price"`
	DepartureDate string   `json:"departureDate"`
	Image         string   `json:"image"`
	Itinerary     []string `json:"itinerary"`
	Amenities     []string `json:"amenities,omitempty"`
	Source        string   `json:"source"`
}

type LocationSuggestion struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	Relevance   float64     `json:"relevance"`
	Source      string      `json:"source"`
}
