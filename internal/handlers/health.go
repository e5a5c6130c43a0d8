package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	username string
}

func NewHealthHandler(username string) *HealthHandler {
	return &HealthHandler{username: username}
}

// Health reports that the server is up
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"username": h.username,
	})
}
