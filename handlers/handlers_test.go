package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"rushed/models"
	"rushed/services"
	"rushed/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway serves canned results so handler tests never touch the network.
type fakeGateway struct {
	airports []models.Airport
	flights  []models.FlightItinerary
	hotels   []models.Hotel
	cars     []models.CarRental

	airportErr error
	hotelErr   error
}

func (g *fakeGateway) SearchAirports(_ context.Context, _ string) ([]models.Airport, error) {
	return g.airports, g.airportErr
}

func (g *fakeGateway) SearchFlights(_ context.Context, _ services.FlightQuery) ([]models.FlightItinerary, error) {
	return g.flights, nil
}

func (g *fakeGateway) SearchHotels(_ context.Context, _ services.HotelQuery) ([]models.Hotel, error) {
	return g.hotels, g.hotelErr
}

func (g *fakeGateway) SearchCars(_ context.Context, _ services.CarQuery) ([]models.CarRental, error) {
	return g.cars, nil
}

type fakePrefsRepo struct {
	saved   map[string]models.SavedPreferences
	pingErr error
}

func newFakePrefsRepo() *fakePrefsRepo {
	return &fakePrefsRepo{saved: make(map[string]models.SavedPreferences)}
}

func (r *fakePrefsRepo) GetPreferences(clientID string) (models.SavedPreferences, error) {
	return r.saved[clientID], nil
}

func (r *fakePrefsRepo) SavePreferences(clientID string, prefs models.SavedPreferences) error {
	r.saved[clientID] = prefs
	return nil
}

func (r *fakePrefsRepo) Ping() error { return r.pingErr }

func defaultGateway() *fakeGateway {
	return &fakeGateway{
		airports: []models.Airport{
			{SkyID: "LHR", EntityID: "95565050", Name: "London Heathrow", IATA: "LHR", City: "London", Country: "GB"},
		},
		flights: []models.FlightItinerary{
			{ID: "f1", Price: models.NewPrice(412, "USD"), DeepLink: "https://example.com/f1"},
			{ID: "f2", Price: models.NewPrice(530, "USD"), DeepLink: "https://example.com/f2"},
		},
		hotels: []models.Hotel{
			{ID: "h1", Name: "Grand City Hotel", Price: models.NewPrice(180, "USD"), DeepLink: "https://example.com/h1"},
		},
		cars: []models.CarRental{
			{ID: "c1", Company: "Hertz", Price: models.NewPrice(120, "USD"), DeepLink: "https://example.com/c1"},
		},
	}
}

func newTestRouter(gw *fakeGateway, prefs PreferencesRepo) *gin.Engine {
	sessions := store.NewStore()
	agg := &services.Aggregator{Gateway: gw}
	h := New(sessions, gw, agg, prefs)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/locations", h.Locations)
		api.GET("/dates/suggestions", h.DateSuggestions)

		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.PATCH("/sessions/:id/criteria", h.UpdateCriteria)
		api.POST("/sessions/:id/search", h.RunSearch)
		api.PUT("/sessions/:id/selections/:category", h.UpdateSelection)
		api.POST("/sessions/:id/bookings", h.DispatchBooking)
		api.GET("/sessions/:id/summary", h.GetSummary)
		api.GET("/sessions/:id/summary.pdf", h.SummaryPDF)

		api.GET("/preferences/:clientID", h.GetPreferences)
		api.PUT("/preferences/:clientID", h.PutPreferences)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{"client_id": "client-1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Session store.Snapshot `json:"session"`
	}
	decode(t, w, &resp)
	if resp.Session.ID == "" {
		t.Fatal("no session id in response")
	}
	return resp.Session.ID
}

func readyCriteria() gin.H {
	return gin.H{
		"origin":         gin.H{"sky_id": "LHR", "entity_id": "95565050", "iata": "LHR"},
		"destination":    gin.H{"sky_id": "JFK", "entity_id": "95565058", "iata": "JFK"},
		"departure_date": "2024-06-10",
		"return_date":    "2024-06-17",
		"adults":         2,
	}
}

func TestFullBookingFlow(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	id := createSession(t, r)

	// Fill in criteria.
	w := doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", readyCriteria())
	if w.Code != http.StatusOK {
		t.Fatalf("patch criteria: status %d: %s", w.Code, w.Body.String())
	}

	// Run the search.
	w = doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/search", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search: status %d: %s", w.Code, w.Body.String())
	}
	var snap store.Snapshot
	decode(t, w, &snap)
	if snap.Flights.State != store.StateReady || len(snap.Flights.Items) != 2 {
		t.Fatalf("flight results = %+v", snap.Flights)
	}
	if snap.Hotels.State != store.StateReady {
		t.Fatalf("hotel state = %q", snap.Hotels.State)
	}
	if snap.SummaryVisible {
		t.Error("summary should be hidden before any selection")
	}

	// Select a flight and a hotel.
	w = doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/selections/flight", gin.H{"id": "f1"})
	if w.Code != http.StatusOK {
		t.Fatalf("select flight: status %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/selections/hotel", gin.H{"id": "h1"})
	if w.Code != http.StatusOK {
		t.Fatalf("select hotel: status %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &snap)
	if !snap.SummaryVisible {
		t.Error("summary should be visible after selecting")
	}
	if snap.TripTotal == nil || snap.TripTotal.Formatted != "$592" {
		t.Errorf("trip total = %+v, want $592", snap.TripTotal)
	}

	// Summary endpoint.
	w = doJSON(t, r, http.MethodGet, "/api/sessions/"+id+"/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary: status %d: %s", w.Code, w.Body.String())
	}
	var summary struct {
		Flight *models.FlightItinerary `json:"flight"`
		Total  *models.Price           `json:"total"`
	}
	decode(t, w, &summary)
	if summary.Flight == nil || summary.Flight.ID != "f1" {
		t.Errorf("summary flight = %+v", summary.Flight)
	}
	if summary.Total == nil || summary.Total.Amount != 592 {
		t.Errorf("summary total = %+v", summary.Total)
	}

	// Dispatch the bookings.
	w = doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/bookings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("bookings: status %d: %s", w.Code, w.Body.String())
	}
	var booking struct {
		Links []string `json:"links"`
	}
	decode(t, w, &booking)
	if len(booking.Links) != 2 {
		t.Errorf("links = %v, want flight and hotel", booking.Links)
	}

	// Selections survive the dispatch.
	w = doJSON(t, r, http.MethodGet, "/api/sessions/"+id, nil)
	decode(t, w, &snap)
	if !snap.SummaryVisible || snap.SelectedFlight == nil {
		t.Error("dispatch must not clear selections")
	}
}

func TestSearchRejectsIncompleteCriteria(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/search", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestSearchPartialFailureKeepsResults(t *testing.T) {
	gw := defaultGateway()
	gw.hotelErr = errors.New("upstream 500")
	r := newTestRouter(gw, nil)
	id := createSession(t, r)

	doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", readyCriteria())
	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/search", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}

	var resp struct {
		Error   string         `json:"error"`
		Session store.Snapshot `json:"session"`
	}
	decode(t, w, &resp)
	if resp.Error == "" {
		t.Error("failure detail missing")
	}
	if resp.Session.Flights.State != store.StateReady {
		t.Errorf("flight state = %q, want ready despite the hotel failure", resp.Session.Flights.State)
	}
}

func TestSelectionUnknownIDIs404(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	id := createSession(t, r)

	doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", readyCriteria())
	doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/search", nil)

	w := doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/selections/flight", gin.H{"id": "nope"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/selections/boat", gin.H{"id": "f1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown category status = %d, want 400", w.Code)
	}
}

func TestSelectionNullClears(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	id := createSession(t, r)

	doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", readyCriteria())
	doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/search", nil)
	doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/selections/flight", gin.H{"id": "f1"})

	w := doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/selections/flight", gin.H{"id": nil})
	if w.Code != http.StatusOK {
		t.Fatalf("clear selection: status %d: %s", w.Code, w.Body.String())
	}
	var snap store.Snapshot
	decode(t, w, &snap)
	if snap.SelectedFlight != nil || snap.SummaryVisible {
		t.Error("null id should clear the selection and hide the summary")
	}
}

func TestSummaryHiddenWithoutSelection(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/"+id+"/summary", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSummaryPDFDownload(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	id := createSession(t, r)

	doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", readyCriteria())
	doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/search", nil)
	doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/selections/flight", gin.H{"id": "f1"})

	w := doJSON(t, r, http.MethodGet, "/api/sessions/"+id+"/summary.pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "rushed-trip-summary.pdf") {
		t.Errorf("content disposition = %q", w.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
}

func TestUpdateCriteriaValidation(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", gin.H{"adults": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero adults: status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", gin.H{"cabin_class": "luxury"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown cabin: status = %d, want 400", w.Code)
	}

	// Partial update leaves the rest untouched.
	w = doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/criteria", gin.H{"adults": 3})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var criteria models.TripCriteria
	decode(t, w, &criteria)
	if criteria.Adults != 3 || criteria.CabinClass != models.CabinEconomy || !criteria.IncludeHotel {
		t.Errorf("criteria = %+v", criteria)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/sessions/missing"},
		{http.MethodPost, "/api/sessions/missing/search"},
		{http.MethodGet, "/api/sessions/missing/summary"},
	} {
		w := doJSON(t, r, route.method, route.path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d, want 404", route.method, route.path, w.Code)
		}
	}
}

func TestLocationsQueryValidation(t *testing.T) {
	gw := defaultGateway()
	r := newTestRouter(gw, nil)

	w := doJSON(t, r, http.MethodGet, "/api/locations?query=l", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short query: status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/locations?query=london", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Locations []models.Airport `json:"locations"`
	}
	decode(t, w, &resp)
	if len(resp.Locations) != 1 || resp.Locations[0].IATA != "LHR" {
		t.Errorf("locations = %+v", resp.Locations)
	}

	gw.airportErr = fmt.Errorf("upstream timeout")
	w = doJSON(t, r, http.MethodGet, "/api/locations?query=london", nil)
	if w.Code != http.StatusBadGateway {
		t.Errorf("gateway error: status = %d, want 502", w.Code)
	}
}

func TestDateSuggestionsEndpoint(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/dates/suggestions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Suggestions []services.DateSuggestion `json:"suggestions"`
	}
	decode(t, w, &resp)
	if len(resp.Suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(resp.Suggestions))
	}
	if resp.Suggestions[0].Label != "This Weekend" {
		t.Errorf("first label = %q", resp.Suggestions[0].Label)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	repo := newFakePrefsRepo()
	r := newTestRouter(defaultGateway(), repo)

	body := gin.H{
		"home_airport":          gin.H{"sky_id": "LHR", "iata": "LHR", "name": "London Heathrow"},
		"preferred_airlines":    []string{"British Airways"},
		"preferred_cabin_class": "business",
		"direct_only":           true,
	}
	w := doJSON(t, r, http.MethodPut, "/api/preferences/client-1", body)
	if w.Code != http.StatusOK {
		t.Fatalf("put: status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/preferences/client-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d: %s", w.Code, w.Body.String())
	}
	var prefs models.SavedPreferences
	decode(t, w, &prefs)
	if prefs.HomeAirport == nil || prefs.HomeAirport.IATA != "LHR" {
		t.Errorf("home airport = %+v", prefs.HomeAirport)
	}
	if prefs.PreferredCabin != models.CabinBusiness || !prefs.DirectOnly {
		t.Errorf("prefs = %+v", prefs)
	}
}

func TestPreferencesValidation(t *testing.T) {
	repo := newFakePrefsRepo()
	r := newTestRouter(defaultGateway(), repo)

	w := doJSON(t, r, http.MethodPut, "/api/preferences/client-1", gin.H{"preferred_cabin_class": "luxury"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown cabin: status = %d, want 400", w.Code)
	}
}

func TestPreferencesUnavailableWithoutStorage(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/preferences/client-1", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestHealthReportsDatabaseState(t *testing.T) {
	r := newTestRouter(defaultGateway(), nil)
	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]string
	decode(t, w, &resp)
	if resp["database"] != "disabled" {
		t.Errorf("database = %q, want disabled", resp["database"])
	}

	repo := newFakePrefsRepo()
	r = newTestRouter(defaultGateway(), repo)
	w = doJSON(t, r, http.MethodGet, "/api/health", nil)
	decode(t, w, &resp)
	if resp["database"] != "ok" {
		t.Errorf("database = %q, want ok", resp["database"])
	}
}
