package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rushed/models"
)

// GetPreferences returns a client's persisted preferences. Clients without
// a stored row get defaults.
func (h *Handler) GetPreferences(c *gin.Context) {
	if h.Prefs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Preference storage is disabled"})
		return
	}

	prefs, err := h.Prefs.GetPreferences(c.Param("clientID"))
	if err != nil {
		log.Printf("❌ Failed to load preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// PutPreferences replaces a client's persisted preferences. Only the
// allowlisted preference fields are accepted; session state never lands
// here.
func (h *Handler) PutPreferences(c *gin.Context) {
	if h.Prefs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Preference storage is disabled"})
		return
	}

	var prefs models.SavedPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if prefs.PreferredCabin != "" && !models.ValidCabinClass(prefs.PreferredCabin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown cabin class"})
		return
	}
	if len(prefs.RecentSearches) > 5 {
		prefs.RecentSearches = prefs.RecentSearches[:5]
	}

	if err := h.Prefs.SavePreferences(c.Param("clientID"), prefs); err != nil {
		log.Printf("❌ Failed to save preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
