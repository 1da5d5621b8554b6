package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rushed/metrics"
	"rushed/models"
	"rushed/services"
	"rushed/store"
)

func tripTotalPrice(s *store.Session) models.Price {
	return models.NewPrice(s.TripTotal(), "USD")
}

type selectionRequest struct {
	ID *string `json:"id"` // null clears the selection
}

// UpdateSelection sets or clears the single selection for a category. The
// item must come from the session's own result list; each call replaces
// the prior selection outright.
func (h *Handler) UpdateSelection(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}

	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	category := c.Param("category")
	switch category {
	case "flight":
		if req.ID == nil {
			s.SelectFlight(nil)
			break
		}
		item := s.FlightByID(*req.ID)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found in current results"})
			return
		}
		s.SelectFlight(item)
	case "hotel":
		if req.ID == nil {
			s.SelectHotel(nil)
			break
		}
		item := s.HotelByID(*req.ID)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found in current results"})
			return
		}
		s.SelectHotel(item)
	case "car":
		if req.ID == nil {
			s.SelectCar(nil)
			break
		}
		item := s.CarByID(*req.ID)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found in current results"})
			return
		}
		s.SelectCar(item)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + category})
		return
	}

	c.JSON(http.StatusOK, s.Snapshot())
}

// DispatchBooking hands the current selections off to their external
// booking pages: every selected item with a non-empty deep link is
// returned for the client to open in its own tab. Selections stay put and
// no confirmation ever comes back.
func (h *Handler) DispatchBooking(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}

	links := s.BookingLinks()
	if len(links) > 0 {
		metrics.BookingDispatches.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}

// GetSummary returns the selected items and trip total. Hidden (404) until
// at least one selection exists.
func (h *Handler) GetSummary(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	if !s.HasSelection() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nothing selected yet"})
		return
	}

	snap := s.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"flight": snap.SelectedFlight,
		"hotel":  snap.SelectedHotel,
		"car":    snap.SelectedCar,
		"total":  snap.TripTotal,
	})
}

// SummaryPDF renders the current selections as a downloadable PDF.
func (h *Handler) SummaryPDF(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	if !s.HasSelection() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nothing selected yet"})
		return
	}

	flight, hotel, car := s.Selections()
	pdfBytes, err := services.GenerateSummaryPDF(services.SummaryData{
		Criteria:  s.Criteria(),
		Flight:    flight,
		Hotel:     hotel,
		Car:       car,
		TripTotal: tripTotalPrice(s),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=rushed-trip-summary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
