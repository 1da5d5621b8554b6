package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	dbStatus := "disabled"
	if h.Prefs != nil {
		dbStatus = "ok"
		if err := h.Prefs.Ping(); err != nil {
			dbStatus = "error: " + err.Error()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Rushed API",
		"database": dbStatus,
	})
}
