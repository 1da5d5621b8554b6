package services

import (
	"fmt"
	"strings"
	"time"

	"rushed/models"
)

// Fallback data used when no RapidAPI key is configured. The shapes match
// live results so the rest of the system cannot tell the difference.

// GenerateAirportsFallback filters a small built-in airport set by query.
func GenerateAirportsFallback(query string) []models.Airport {
	known := []models.Airport{
		{SkyID: "LHR", EntityID: "95565050", Name: "London Heathrow", IATA: "LHR", City: "London", Country: "GB"},
		{SkyID: "LGW", EntityID: "95565051", Name: "London Gatwick", IATA: "LGW", City: "London", Country: "GB"},
		{SkyID: "JFK", EntityID: "95565058", Name: "New York John F. Kennedy", IATA: "JFK", City: "New York", Country: "US"},
		{SkyID: "EWR", EntityID: "95565059", Name: "New York Newark", IATA: "EWR", City: "New York", Country: "US"},
		{SkyID: "CDG", EntityID: "95565041", Name: "Paris Charles de Gaulle", IATA: "CDG", City: "Paris", Country: "FR"},
		{SkyID: "FRA", EntityID: "95673383", Name: "Frankfurt am Main", IATA: "FRA", City: "Frankfurt", Country: "DE"},
		{SkyID: "DXB", EntityID: "95673506", Name: "Dubai International", IATA: "DXB", City: "Dubai", Country: "AE"},
		{SkyID: "IST", EntityID: "95673403", Name: "Istanbul Airport", IATA: "IST", City: "Istanbul", Country: "TR"},
		{SkyID: "SIN", EntityID: "95673823", Name: "Singapore Changi", IATA: "SIN", City: "Singapore", Country: "SG"},
		{SkyID: "HND", EntityID: "95673827", Name: "Tokyo Haneda", IATA: "HND", City: "Tokyo", Country: "JP"},
	}

	q := strings.ToLower(query)
	matches := make([]models.Airport, 0, len(known))
	for _, a := range known {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.City), q) ||
			strings.EqualFold(a.IATA, query) {
			matches = append(matches, a)
		}
	}
	return matches
}

// GenerateFlightsFallback produces plausible itineraries for the route.
func GenerateFlightsFallback(q FlightQuery) []models.FlightItinerary {
	type routeInfo struct {
		basePrice float64
		duration  int // minutes
	}

	routes := map[string]routeInfo{
		"LHR-JFK": {450, 480}, "JFK-LHR": {450, 480},
		"LHR-CDG": {80, 75}, "CDG-LHR": {80, 75},
		"LHR-DXB": {380, 410}, "DXB-LHR": {380, 410},
		"FRA-IST": {150, 165}, "IST-FRA": {150, 165},
		"JFK-CDG": {420, 440}, "CDG-JFK": {420, 440},
		"SIN-HND": {300, 430}, "HND-SIN": {300, 430},
	}

	info, ok := routes[q.Origin+"-"+q.Destination]
	if !ok {
		info = routeInfo{350, 240}
	}

	type airlineOption struct {
		name     string
		priceMod float64
		stops    int
		badge    models.Badge
	}
	options := []airlineOption{
		{"British Airways", 1.00, 0, models.BadgeBest},
		{"Lufthansa", 1.15, 0, models.BadgeFastest},
		{"Emirates", 1.30, 0, ""},
		{"Wizz Air", 0.65, 1, models.BadgeCheapest},
		{"FlyDubai", 0.80, 1, ""},
	}

	depDate, _ := time.Parse("2006-01-02", q.DepartureDate)
	retDate, _ := time.Parse("2006-01-02", q.ReturnDate)

	flights := make([]models.FlightItinerary, 0, len(options))
	for i, opt := range options {
		if q.DirectOnly && opt.stops > 0 {
			continue
		}

		price := info.basePrice * float64(q.Adults) * opt.priceMod
		price = float64(int(price/5) * 5)

		dur := info.duration
		if opt.stops > 0 {
			dur += 90
		}

		depTime := time.Date(depDate.Year(), depDate.Month(), depDate.Day(), 6+i*3, 0, 0, 0, time.UTC)
		outbound := []models.FlightLeg{{
			Origin:          q.Origin,
			Destination:     q.Destination,
			Departure:       depTime.Format(time.RFC3339),
			Arrival:         depTime.Add(time.Duration(dur) * time.Minute).Format(time.RFC3339),
			DurationMinutes: dur,
			Airline:         opt.name,
			FlightNumber:    fmt.Sprintf("%s%d", initials(opt.name), 100+i),
			Stops:           opt.stops,
		}}

		f := models.FlightItinerary{
			ID:                   fmt.Sprintf("fallback-flight-%d", i),
			Price:                models.NewPrice(price, "USD"),
			Outbound:             outbound,
			TotalDurationMinutes: dur,
			Airlines:             []string{opt.name},
			DeepLink:             "https://www.skyscanner.com",
			Badge:                opt.badge,
		}

		if q.ReturnDate != "" {
			retTime := time.Date(retDate.Year(), retDate.Month(), retDate.Day(), 8+i*2, 0, 0, 0, time.UTC)
			f.Inbound = []models.FlightLeg{{
				Origin:          q.Destination,
				Destination:     q.Origin,
				Departure:       retTime.Format(time.RFC3339),
				Arrival:         retTime.Add(time.Duration(dur) * time.Minute).Format(time.RFC3339),
				DurationMinutes: dur,
				Airline:         opt.name,
				FlightNumber:    fmt.Sprintf("%s%d", initials(opt.name), 200+i),
				Stops:           opt.stops,
			}}
			f.TotalDurationMinutes += dur
		}

		flights = append(flights, f)
	}
	return flights
}

// GenerateHotelsFallback produces plausible stay options for the destination.
func GenerateHotelsFallback(destination string) []models.Hotel {
	type hotelSeed struct {
		name     string
		price    float64
		rating   float64
		stars    int
		area     string
		distance string
	}

	seeds := []hotelSeed{
		{"Grand City Hotel", 150, 4.5, 4, "City Center", "0.4 km from center"},
		{"Business Inn", 95, 4.2, 3, "Business District", "1.2 km from center"},
		{"Boutique Residence", 120, 4.4, 4, "Arts District", "0.8 km from center"},
		{"Economy Suites", 65, 3.9, 2, "Near Airport", "9.5 km from center"},
		{"Luxury Collection", 240, 4.7, 5, "Historic Center", "0.2 km from center"},
	}

	hotels := make([]models.Hotel, 0, len(seeds))
	for i, s := range seeds {
		hotels = append(hotels, models.Hotel{
			ID:        fmt.Sprintf("fallback-hotel-%d", i),
			Name:      s.name,
			Rating:    s.rating,
			Stars:     s.stars,
			Price:     models.NewPrice(s.price, "USD"),
			Address:   s.area + ", " + destination,
			Amenities: []string{"WiFi", "Breakfast"},
			Distance:  s.distance,
			DeepLink:  "https://www.skyscanner.com",
		})
	}
	return hotels
}

// GenerateCarsFallback produces plausible rental options at the pickup point.
func GenerateCarsFallback(pickup string) []models.CarRental {
	type carSeed struct {
		company      string
		model        string
		category     string
		price        float64
		passengers   int
		doors        int
		transmission models.Transmission
	}

	seeds := []carSeed{
		{"Hertz", "Toyota Corolla", "Economy", 120, 5, 4, models.TransmissionAutomatic},
		{"Avis", "VW Golf", "Compact", 135, 5, 4, models.TransmissionManual},
		{"Sixt", "BMW 3 Series", "Premium", 260, 5, 4, models.TransmissionAutomatic},
		{"Europcar", "Ford Fiesta", "Mini", 95, 4, 3, models.TransmissionManual},
		{"Enterprise", "Nissan Qashqai", "SUV", 180, 5, 5, models.TransmissionAutomatic},
	}

	_ = pickup // fallback data is location-independent
	cars := make([]models.CarRental, 0, len(seeds))
	for i, s := range seeds {
		cars = append(cars, models.CarRental{
			ID:           fmt.Sprintf("fallback-car-%d", i),
			Company:      s.company,
			CarType:      s.model,
			Category:     s.category,
			Price:        models.NewPrice(s.price, "USD"),
			Passengers:   s.passengers,
			Doors:        s.doors,
			Transmission: s.transmission,
			FuelPolicy:   "Full to Full",
			DeepLink:     "https://www.skyscanner.com",
		})
	}
	return cars
}

func initials(name string) string {
	parts := strings.Fields(name)
	out := ""
	for _, p := range parts {
		out += strings.ToUpper(p[:1])
	}
	return out
}
