package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"rushed/config"
	"rushed/models"
)

// Result list caps, matching what the upstream returns per category.
const (
	maxFlights = 20
	maxHotels  = 15
	maxCars    = 10
)

// minAutocompleteQuery is the shortest location query worth sending upstream.
const minAutocompleteQuery = 2

// ─── Query types ──────────────────────────────────────────────────────────────

type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string // empty for one-way
	Adults        int
	CabinClass    models.CabinClass
	DirectOnly    bool
}

type HotelQuery struct {
	DestinationID string // upstream entity id, not the IATA code
	CheckIn       string
	CheckOut      string
	Adults        int
}

type CarQuery struct {
	PickupLocation string
	PickupDate     string
	DropoffDate    string
}

// ─── Skyscanner client ────────────────────────────────────────────────────────

// SkyscannerClient talks to the Skyscanner search API through RapidAPI.
// When no API key is configured every search falls back to generated data.
type SkyscannerClient struct {
	apiKey     string
	host       string
	baseURL    string
	httpClient *http.Client
}

func NewSkyscannerClient(cfg *config.Config) *SkyscannerClient {
	return &SkyscannerClient{
		apiKey:  cfg.RapidAPIKey,
		host:    cfg.RapidAPIHost,
		baseURL: "https://" + cfg.RapidAPIHost,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *SkyscannerClient) configured() bool {
	return c.apiKey != ""
}

func (c *SkyscannerClient) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("skyscanner error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// ─── Location autocomplete ────────────────────────────────────────────────────

// SearchAirports resolves a free-text query to airport candidates.
// Queries under two characters are rejected before any request is made.
func (c *SkyscannerClient) SearchAirports(ctx context.Context, query string) ([]models.Airport, error) {
	if len(query) < minAutocompleteQuery {
		return nil, fmt.Errorf("query must be at least %d characters", minAutocompleteQuery)
	}
	if !c.configured() {
		return GenerateAirportsFallback(query), nil
	}

	params := url.Values{}
	params.Set("query", query)

	body, err := c.doRequest(ctx, "/autocomplete", params)
	if err != nil {
		return nil, fmt.Errorf("airport search failed: %w", err)
	}
	return parseAirports(body)
}

type autocompleteResponse struct {
	Data []struct {
		SkyID        string `json:"skyId"`
		EntityID     string `json:"entityId"`
		IATA         string `json:"iata"`
		Presentation struct {
			Title    string `json:"title"`
			Subtitle string `json:"subtitle"`
		} `json:"presentation"`
		Navigation struct {
			RelevantFlightParams struct {
				Market string `json:"market"`
			} `json:"relevantFlightParams"`
		} `json:"navigation"`
	} `json:"data"`
}

func parseAirports(data []byte) ([]models.Airport, error) {
	var resp autocompleteResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse autocomplete response: %w", err)
	}

	airports := make([]models.Airport, 0, len(resp.Data))
	for _, item := range resp.Data {
		airports = append(airports, models.Airport{
			SkyID:    item.SkyID,
			EntityID: item.EntityID,
			Name:     item.Presentation.Title,
			IATA:     item.IATA,
			City:     firstCommaField(item.Presentation.Subtitle),
			Country:  item.Navigation.RelevantFlightParams.Market,
		})
	}
	return airports, nil
}

// ─── Flight search ────────────────────────────────────────────────────────────

// SearchFlights returns the top itineraries for the route. The quality badge
// comes from the upstream tags verbatim; it is never derived here.
func (c *SkyscannerClient) SearchFlights(ctx context.Context, q FlightQuery) ([]models.FlightItinerary, error) {
	if !c.configured() {
		return GenerateFlightsFallback(q), nil
	}

	params := url.Values{}
	params.Set("origin", q.Origin)
	params.Set("destination", q.Destination)
	params.Set("date", q.DepartureDate)
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("cabinClass", string(q.CabinClass))
	if q.DirectOnly {
		params.Set("stops", "direct")
	}
	params.Set("currency", "USD")
	params.Set("market", "US")
	params.Set("locale", "en-US")

	body, err := c.doRequest(ctx, "/search", params)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	return parseFlightItineraries(body)
}

type flightSearchResponse struct {
	Data struct {
		Itineraries []struct {
			ID    string `json:"id"`
			Price struct {
				Raw      float64 `json:"raw"`
				Currency string  `json:"currency"`
			} `json:"price"`
			Legs     []flightLegResponse `json:"legs"`
			DeepLink string              `json:"deepLink"`
			Tags     []string            `json:"tags"`
		} `json:"itineraries"`
	} `json:"data"`
}

type flightLegResponse struct {
	DurationInMinutes int `json:"durationInMinutes"`
	StopCount         int `json:"stopCount"`
	Segments          []struct {
		Origin struct {
			DisplayCode string `json:"displayCode"`
		} `json:"origin"`
		Destination struct {
			DisplayCode string `json:"displayCode"`
		} `json:"destination"`
		Departure         string `json:"departure"`
		Arrival           string `json:"arrival"`
		DurationInMinutes int    `json:"durationInMinutes"`
		FlightNumber      string `json:"flightNumber"`
		MarketingCarrier  struct {
			Name string `json:"name"`
		} `json:"marketingCarrier"`
	} `json:"segments"`
}

func parseFlightItineraries(data []byte) ([]models.FlightItinerary, error) {
	var resp flightSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight search response: %w", err)
	}

	items := resp.Data.Itineraries
	if len(items) > maxFlights {
		items = items[:maxFlights]
	}

	flights := make([]models.FlightItinerary, 0, len(items))
	for i, item := range items {
		if len(item.Legs) == 0 {
			continue
		}

		f := models.FlightItinerary{
			ID:       item.ID,
			Price:    models.NewPrice(item.Price.Raw, item.Price.Currency),
			Outbound: parseFlightLegs(item.Legs[0]),
			DeepLink: item.DeepLink,
			Badge:    badgeFromTags(item.Tags),
		}
		if f.ID == "" {
			f.ID = fmt.Sprintf("flight-%d", i)
		}
		if len(item.Legs) > 1 {
			f.Inbound = parseFlightLegs(item.Legs[1])
		}

		seen := map[string]bool{}
		for _, leg := range item.Legs {
			f.TotalDurationMinutes += leg.DurationInMinutes
			for _, seg := range leg.Segments {
				if name := seg.MarketingCarrier.Name; name != "" && !seen[name] {
					seen[name] = true
					f.Airlines = append(f.Airlines, name)
				}
			}
		}

		flights = append(flights, f)
	}
	return flights, nil
}

func parseFlightLegs(leg flightLegResponse) []models.FlightLeg {
	legs := make([]models.FlightLeg, 0, len(leg.Segments))
	for _, seg := range leg.Segments {
		legs = append(legs, models.FlightLeg{
			Origin:          seg.Origin.DisplayCode,
			Destination:     seg.Destination.DisplayCode,
			Departure:       seg.Departure,
			Arrival:         seg.Arrival,
			DurationMinutes: seg.DurationInMinutes,
			Airline:         seg.MarketingCarrier.Name,
			FlightNumber:    seg.FlightNumber,
			Stops:           leg.StopCount,
		})
	}
	return legs
}

// badgeFromTags picks the first recognized upstream tag. At most one badge
// per itinerary.
func badgeFromTags(tags []string) models.Badge {
	for _, tag := range tags {
		switch models.Badge(tag) {
		case models.BadgeFastest, models.BadgeCheapest, models.BadgeBest:
			return models.Badge(tag)
		}
	}
	return ""
}

// ─── Hotel search ─────────────────────────────────────────────────────────────

// SearchHotels returns stay options for the destination and date range.
func (c *SkyscannerClient) SearchHotels(ctx context.Context, q HotelQuery) ([]models.Hotel, error) {
	if !c.configured() {
		return GenerateHotelsFallback(q.DestinationID), nil
	}

	params := url.Values{}
	params.Set("entityId", q.DestinationID)
	params.Set("checkin", q.CheckIn)
	params.Set("checkout", q.CheckOut)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("rooms", "1")
	params.Set("currency", "USD")
	params.Set("market", "US")
	params.Set("locale", "en-US")

	body, err := c.doRequest(ctx, "/hotels/search", params)
	if err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}
	return parseHotels(body)
}

type hotelSearchResponse struct {
	Hotels []struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Rating float64 `json:"rating"`
		Stars  int     `json:"stars"`
		Price  struct {
			Amount   float64 `json:"amount"`
			Currency string  `json:"currency"`
		} `json:"price"`
		Image     string   `json:"image"`
		Address   string   `json:"address"`
		Amenities []string `json:"amenities"`
		Distance  string   `json:"distance"`
		DeepLink  string   `json:"deepLink"`
	} `json:"hotels"`
}

func parseHotels(data []byte) ([]models.Hotel, error) {
	var resp hotelSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel search response: %w", err)
	}

	items := resp.Hotels
	if len(items) > maxHotels {
		items = items[:maxHotels]
	}

	hotels := make([]models.Hotel, 0, len(items))
	for i, item := range items {
		h := models.Hotel{
			ID:        item.ID,
			Name:      item.Name,
			Rating:    item.Rating,
			Stars:     clampStars(item.Stars),
			Price:     models.NewPrice(item.Price.Amount, item.Price.Currency),
			Image:     item.Image,
			Address:   item.Address,
			Amenities: item.Amenities,
			Distance:  item.Distance,
			DeepLink:  item.DeepLink,
		}
		if h.ID == "" {
			h.ID = fmt.Sprintf("hotel-%d", i)
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

// ─── Car search ───────────────────────────────────────────────────────────────

// SearchCars returns rental options for pickup at the destination.
func (c *SkyscannerClient) SearchCars(ctx context.Context, q CarQuery) ([]models.CarRental, error) {
	if !c.configured() {
		return GenerateCarsFallback(q.PickupLocation), nil
	}

	params := url.Values{}
	params.Set("pickup", q.PickupLocation)
	params.Set("dropoff", q.PickupLocation)
	params.Set("pickupDate", q.PickupDate)
	params.Set("dropoffDate", q.DropoffDate)
	params.Set("pickupTime", "10:00")
	params.Set("dropoffTime", "10:00")
	params.Set("currency", "USD")

	body, err := c.doRequest(ctx, "/cars/search", params)
	if err != nil {
		return nil, fmt.Errorf("car search failed: %w", err)
	}
	return parseCars(body)
}

type carSearchResponse struct {
	Cars []struct {
		ID          string `json:"id"`
		Company     string `json:"company"`
		VehicleInfo struct {
			Model        string `json:"model"`
			Category     string `json:"category"`
			Passengers   int    `json:"passengers"`
			Doors        int    `json:"doors"`
			Transmission string `json:"transmission"`
		} `json:"vehicleInfo"`
		Price struct {
			Amount   float64 `json:"amount"`
			Currency string  `json:"currency"`
		} `json:"price"`
		FuelPolicy string `json:"fuelPolicy"`
		DeepLink   string `json:"deepLink"`
	} `json:"cars"`
}

func parseCars(data []byte) ([]models.CarRental, error) {
	var resp carSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse car search response: %w", err)
	}

	items := resp.Cars
	if len(items) > maxCars {
		items = items[:maxCars]
	}

	cars := make([]models.CarRental, 0, len(items))
	for i, item := range items {
		transmission := models.TransmissionAutomatic
		if item.VehicleInfo.Transmission == string(models.TransmissionManual) {
			transmission = models.TransmissionManual
		}

		car := models.CarRental{
			ID:           item.ID,
			Company:      item.Company,
			CarType:      item.VehicleInfo.Model,
			Category:     item.VehicleInfo.Category,
			Price:        models.NewPrice(item.Price.Amount, item.Price.Currency),
			Passengers:   item.VehicleInfo.Passengers,
			Doors:        item.VehicleInfo.Doors,
			Transmission: transmission,
			FuelPolicy:   item.FuelPolicy,
			DeepLink:     item.DeepLink,
		}
		if car.ID == "" {
			car.ID = fmt.Sprintf("car-%d", i)
		}
		cars = append(cars, car)
	}
	return cars, nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func firstCommaField(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			return s[:i]
		}
	}
	return s
}

func clampStars(stars int) int {
	if stars < 1 {
		return 1
	}
	if stars > 5 {
		return 5
	}
	return stars
}
