package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"rushed/metrics"
	"rushed/models"
	"rushed/store"
)

// ErrIncompleteCriteria is returned when a search is requested before
// origin, destination and departure date are all set. No request is issued
// and no session state changes.
var ErrIncompleteCriteria = errors.New("origin, destination and departure date are required")

// SearchGateway is the contract the aggregator depends on. The Skyscanner
// client is the production implementation.
type SearchGateway interface {
	SearchAirports(ctx context.Context, query string) ([]models.Airport, error)
	SearchFlights(ctx context.Context, q FlightQuery) ([]models.FlightItinerary, error)
	SearchHotels(ctx context.Context, q HotelQuery) ([]models.Hotel, error)
	SearchCars(ctx context.Context, q CarQuery) ([]models.CarRental, error)
}

// SearchHistory records executed searches into the persisted preferences.
type SearchHistory interface {
	RecordSearch(clientID string, criteria models.TripCriteria) error
}

// Aggregator fans a search out over the enabled categories and fans the
// results back into the session.
type Aggregator struct {
	Gateway SearchGateway
	History SearchHistory // optional
	Timeout time.Duration // bounds a whole search; a stalled upstream must not stall the session forever
}

const defaultSearchTimeout = 45 * time.Second

// RunSearch issues the flight search unconditionally and the hotel/car
// searches conditionally on the inclusion flags and the stay range. The
// three requests run concurrently with no ordering dependency; each
// category's result list is set only when its own request resolves, and one
// category's failure neither blanks nor blocks the others.
func (a *Aggregator) RunSearch(ctx context.Context, session *store.Session) error {
	criteria := session.Criteria()
	if !criteria.ReadyToSearch() {
		return ErrIncompleteCriteria
	}

	if a.History != nil {
		if err := a.History.RecordSearch(session.ClientID, criteria); err != nil {
			log.Printf("⚠️  Failed to record search history: %v", err)
		}
	}

	session.BeginSearch()
	defer session.EndSearch()

	timeout := a.Timeout
	if timeout == 0 {
		timeout = defaultSearchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(category string, err error) {
		metrics.SearchFailures.WithLabelValues(category).Inc()
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s: %w", category, err))
		mu.Unlock()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		metrics.SearchesTotal.WithLabelValues("flight").Inc()
		flights, err := a.Gateway.SearchFlights(ctx, FlightQuery{
			Origin:        criteria.Origin.IATA,
			Destination:   criteria.Destination.IATA,
			DepartureDate: criteria.DepartureDate,
			ReturnDate:    criteria.ReturnDate,
			Adults:        criteria.Adults,
			CabinClass:    criteria.CabinClass,
			DirectOnly:    criteria.DirectOnly,
		})
		if err != nil {
			fail("flight", err)
			return
		}
		session.SetFlights(flights)
	}()

	// Hotels need a full stay range; without one the list stays empty and
	// no request goes out.
	if criteria.IncludeHotel && criteria.HasStayRange() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics.SearchesTotal.WithLabelValues("hotel").Inc()
			hotels, err := a.Gateway.SearchHotels(ctx, HotelQuery{
				DestinationID: criteria.Destination.EntityID,
				CheckIn:       criteria.DepartureDate,
				CheckOut:      criteria.ReturnDate,
				Adults:        criteria.Adults,
			})
			if err != nil {
				fail("hotel", err)
				return
			}
			session.SetHotels(hotels)
		}()
	}

	if criteria.IncludeCar && criteria.HasStayRange() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics.SearchesTotal.WithLabelValues("car").Inc()
			cars, err := a.Gateway.SearchCars(ctx, CarQuery{
				PickupLocation: criteria.Destination.IATA,
				PickupDate:     criteria.DepartureDate,
				DropoffDate:    criteria.ReturnDate,
			})
			if err != nil {
				fail("car", err)
				return
			}
			session.SetCars(cars)
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}
