package store

import (
	"rushed/models"
)

// Selection tracking: at most one chosen item per category, replaced
// outright on every call. There is deliberately no cross-category
// consistency check: a flight to one city may be paired with a hotel in
// another.

// SelectFlight replaces the flight selection. Nil clears it.
func (s *Session) SelectFlight(f *models.FlightItinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedFlight = f
}

// SelectHotel replaces the hotel selection. Nil clears it.
func (s *Session) SelectHotel(h *models.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedHotel = h
}

// SelectCar replaces the car selection. Nil clears it.
func (s *Session) SelectCar(c *models.CarRental) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCar = c
}

// FlightByID finds a flight in the owned result list.
func (s *Session) FlightByID(id string) *models.FlightItinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flights {
		if s.flights[i].ID == id {
			return &s.flights[i]
		}
	}
	return nil
}

// HotelByID finds a hotel in the owned result list.
func (s *Session) HotelByID(id string) *models.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotels {
		if s.hotels[i].ID == id {
			return &s.hotels[i]
		}
	}
	return nil
}

// CarByID finds a car in the owned result list.
func (s *Session) CarByID(id string) *models.CarRental {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cars {
		if s.cars[i].ID == id {
			return &s.cars[i]
		}
	}
	return nil
}

// Selections returns the current per-category selections.
func (s *Session) Selections() (*models.FlightItinerary, *models.Hotel, *models.CarRental) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedFlight, s.selectedHotel, s.selectedCar
}

// TripTotal sums the amounts of all current selections. A missing amount
// counts as zero.
func (s *Session) TripTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	if s.selectedFlight != nil {
		total += s.selectedFlight.Price.Amount
	}
	if s.selectedHotel != nil {
		total += s.selectedHotel.Price.Amount
	}
	if s.selectedCar != nil {
		total += s.selectedCar.Price.Amount
	}
	return total
}

// HasSelection reports whether at least one category is selected. The
// booking summary is shown if and only if this is true.
func (s *Session) HasSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedFlight != nil || s.selectedHotel != nil || s.selectedCar != nil
}

// BookingLinks collects the deep links of the current selections, skipping
// unselected categories and empty URLs. Opening them is a fire-and-forget
// handoff; selections are not cleared afterwards.
func (s *Session) BookingLinks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := make([]string, 0, 3)
	if s.selectedFlight != nil && s.selectedFlight.DeepLink != "" {
		links = append(links, s.selectedFlight.DeepLink)
	}
	if s.selectedHotel != nil && s.selectedHotel.DeepLink != "" {
		links = append(links, s.selectedHotel.DeepLink)
	}
	if s.selectedCar != nil && s.selectedCar.DeepLink != "" {
		links = append(links, s.selectedCar.DeepLink)
	}
	return links
}
