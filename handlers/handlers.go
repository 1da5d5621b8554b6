package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rushed/models"
	"rushed/services"
	"rushed/store"
)

// PreferencesRepo is the persistence contract the handlers depend on.
// The database store is the production implementation.
type PreferencesRepo interface {
	GetPreferences(clientID string) (models.SavedPreferences, error)
	SavePreferences(clientID string, prefs models.SavedPreferences) error
	Ping() error
}

// Handler carries the application state. Everything is injected; there is
// no ambient global store.
type Handler struct {
	Sessions *store.Store
	Gateway  services.SearchGateway
	Agg      *services.Aggregator
	Prefs    PreferencesRepo // nil when the database is disabled
}

func New(sessions *store.Store, gateway services.SearchGateway, agg *services.Aggregator, prefs PreferencesRepo) *Handler {
	return &Handler{
		Sessions: sessions,
		Gateway:  gateway,
		Agg:      agg,
		Prefs:    prefs,
	}
}

// session resolves the :id path param, replying 404 on a miss.
func (h *Handler) session(c *gin.Context) *store.Session {
	s := h.Sessions.Get(c.Param("id"))
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	}
	return s
}
