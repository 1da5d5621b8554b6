package store

import (
	"rushed/models"
)

// CategoryResults is one result list plus its view state.
type CategoryResults[T any] struct {
	State CategoryState `json:"state"`
	Items []T           `json:"items"`
}

// Snapshot is the JSON view of a session handed to the UI.
type Snapshot struct {
	ID             string                                  `json:"id"`
	Criteria       models.TripCriteria                     `json:"criteria"`
	IsSearching    bool                                    `json:"is_searching"`
	Flights        CategoryResults[models.FlightItinerary] `json:"flights"`
	Hotels         CategoryResults[models.Hotel]           `json:"hotels"`
	Cars           CategoryResults[models.CarRental]       `json:"cars"`
	SelectedFlight *models.FlightItinerary                 `json:"selected_flight"`
	SelectedHotel  *models.Hotel                           `json:"selected_hotel"`
	SelectedCar    *models.CarRental                       `json:"selected_car"`
	Steps          []models.TripStep                       `json:"steps"`
	SummaryVisible bool                                    `json:"summary_visible"`
	TripTotal      *models.Price                           `json:"trip_total"` // nil while the summary is hidden
}

// Snapshot builds a consistent view of the whole session under one lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.ID,
		Criteria:    s.criteria,
		IsSearching: s.isSearching,
		Flights: CategoryResults[models.FlightItinerary]{
			State: categoryState(s.isSearching, true, s.flightsResolved, len(s.flights)),
			Items: s.flights,
		},
		Hotels: CategoryResults[models.Hotel]{
			State: categoryState(s.isSearching, s.criteria.IncludeHotel, s.hotelsResolved, len(s.hotels)),
			Items: s.hotels,
		},
		Cars: CategoryResults[models.CarRental]{
			State: categoryState(s.isSearching, s.criteria.IncludeCar, s.carsResolved, len(s.cars)),
			Items: s.cars,
		},
		SelectedFlight: s.selectedFlight,
		SelectedHotel:  s.selectedHotel,
		SelectedCar:    s.selectedCar,
		Steps:          s.criteria.EnabledSteps(),
	}

	snap.SummaryVisible = s.selectedFlight != nil || s.selectedHotel != nil || s.selectedCar != nil
	if snap.SummaryVisible {
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
		price := models.NewPrice(total, "USD")
		snap.TripTotal = &price
	}

	return snap
}

func categoryState(searching, enabled, resolved bool, count int) CategoryState {
	switch {
	case resolved && count > 0:
		return StateReady
	case resolved:
		return StateEmpty
	case searching && enabled:
		return StateSearching
	default:
		return StateIdle
	}
}
