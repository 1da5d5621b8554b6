package store

import (
	"sync"

	"rushed/models"
)

// CategoryState is the per-category view state of a result list.
type CategoryState string

const (
	// StateIdle: no search has been issued for this category.
	StateIdle CategoryState = "idle"
	// StateSearching: a request is in flight.
	StateSearching CategoryState = "searching"
	// StateReady: results arrived and the list is non-empty.
	StateReady CategoryState = "ready"
	// StateEmpty: the search resolved with zero matches. Not an error.
	StateEmpty CategoryState = "empty"
)

// Session holds all per-session trip state: criteria, result lists,
// selections and the searching flag. Result lists own the entities;
// selections only reference items from those lists. Nothing here is
// persisted; a restart resets every session to defaults.
type Session struct {
	ID       string
	ClientID string

	mu          sync.Mutex
	criteria    models.TripCriteria
	isSearching bool

	flights []models.FlightItinerary
	hotels  []models.Hotel
	cars    []models.CarRental

	flightsResolved bool
	hotelsResolved  bool
	carsResolved    bool

	selectedFlight *models.FlightItinerary
	selectedHotel  *models.Hotel
	selectedCar    *models.CarRental
}

// Criteria returns a copy of the current trip criteria.
func (s *Session) Criteria() models.TripCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// UpdateCriteria merges a partial update into the criteria and returns the
// result. Only provided fields change.
func (s *Session) UpdateCriteria(u models.CriteriaUpdate) models.TripCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Merge(u)
	return s.criteria
}

// BeginSearch marks the session as searching and clears all three result
// lists and all selections, so stale results never linger alongside a new
// in-flight search.
func (s *Session) BeginSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSearching = true
	s.flights = nil
	s.hotels = nil
	s.cars = nil
	s.flightsResolved = false
	s.hotelsResolved = false
	s.carsResolved = false
	s.selectedFlight = nil
	s.selectedHotel = nil
	s.selectedCar = nil
}

// EndSearch clears the searching flag. Called on every exit path of a
// search, success or failure.
func (s *Session) EndSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSearching = false
}

// IsSearching reports whether a search is currently in flight.
func (s *Session) IsSearching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSearching
}

// SetFlights replaces the flight list wholesale.
func (s *Session) SetFlights(flights []models.FlightItinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = flights
	s.flightsResolved = true
}

// SetHotels replaces the hotel list wholesale.
func (s *Session) SetHotels(hotels []models.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels = hotels
	s.hotelsResolved = true
}

// SetCars replaces the car list wholesale.
func (s *Session) SetCars(cars []models.CarRental) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = cars
	s.carsResolved = true
}

// Flights returns the current flight results.
func (s *Session) Flights() []models.FlightItinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flights
}

// Hotels returns the current hotel results.
func (s *Session) Hotels() []models.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotels
}

// Cars returns the current car results.
func (s *Session) Cars() []models.CarRental {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cars
}
