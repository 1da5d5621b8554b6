package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rushed/services"
)

// RunSearch triggers the aggregated search for the session. Incomplete
// criteria are rejected before any upstream request. When one or more
// categories fail, the results that did arrive are kept and the failure
// detail is surfaced alongside the snapshot.
func (h *Handler) RunSearch(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}

	err := h.Agg.RunSearch(c.Request.Context(), s)
	if errors.Is(err, services.ErrIncompleteCriteria) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("⚠️  Search partially failed for session %s: %v", s.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   err.Error(),
			"session": s.Snapshot(),
		})
		return
	}

	c.JSON(http.StatusOK, s.Snapshot())
}

// Locations resolves a free-text query to airport candidates for the
// origin/destination autocomplete. The client debounces keystrokes; this
// endpoint only enforces the minimum query length.
func (h *Handler) Locations(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must be at least 2 characters"})
		return
	}

	airports, err := h.Gateway.SearchAirports(c.Request.Context(), query)
	if err != nil {
		log.Printf("⚠️  Airport search failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Location search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": airports})
}

// DateSuggestions returns the three quick date picks derived from today.
func (h *Handler) DateSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": services.QuickDateSuggestions(time.Now())})
}
