package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
)

type MeHandler struct {
	guestID string
	driver  string
}

func NewMeHandler(guestID, driver string) *MeHandler {
	return &MeHandler{guestID: guestID, driver: driver}
}

// GetMe tells the client who it is and where its data lives.
func (h *MeHandler) GetMe(c *gin.Context) {
	ownerID := middleware.OwnerID(c)

	store := h.driver
	if ownerID == h.guestID {
		store = "memory"
	}

	c.JSON(http.StatusOK, gin.H{
		"owner_id": ownerID,
		"guest":    ownerID == h.guestID,
		"store":    store,
	})
}
