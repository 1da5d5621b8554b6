package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rushed/models"
)

type createSessionRequest struct {
	ClientID string `json:"client_id"`
}

// CreateSession starts a new trip session with default criteria. A client
// id ties the session to persisted preferences; one is generated when the
// client does not supply its own.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	_ = c.ShouldBindJSON(&req) // empty body is fine

	if req.ClientID == "" {
		req.ClientID = uuid.New().String()
	}

	s := h.Sessions.Create(req.ClientID)
	c.JSON(http.StatusCreated, gin.H{
		"client_id": req.ClientID,
		"session":   s.Snapshot(),
	})
}

// GetSession returns the full session snapshot.
func (h *Handler) GetSession(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// UpdateCriteria merges a partial criteria update. Only provided fields
// change.
func (h *Handler) UpdateCriteria(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}

	var update models.CriteriaUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if update.Adults != nil && *update.Adults < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adult count must be at least 1"})
		return
	}
	if update.CabinClass != nil && !models.ValidCabinClass(*update.CabinClass) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown cabin class"})
		return
	}

	criteria := s.UpdateCriteria(update)
	c.JSON(http.StatusOK, criteria)
}
