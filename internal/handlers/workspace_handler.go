package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/httpresp"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/workspace"
)

type resetter interface {
	Reset()
}

type WorkspaceHandler struct {
	loader  *workspace.Loader
	guestID string
	guest   resetter
}

func NewWorkspaceHandler(loader *workspace.Loader, guestID string, guest resetter) *WorkspaceHandler {
	return &WorkspaceHandler{loader: loader, guestID: guestID, guest: guest}
}

// Get returns all five collections. A failed collection is reported in the
// body instead of failing the request.
func (h *WorkspaceHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.loader.Load(c.Request.Context(), middleware.OwnerID(c)))
}

// Reset restores the guest workspace to its seed data.
func (h *WorkspaceHandler) Reset(c *gin.Context) {
	if middleware.OwnerID(c) != h.guestID {
		httperr.Forbidden(c, "guest_only", "Only the guest workspace can be reset.")
		return
	}

	h.guest.Reset()
	c.Status(http.StatusNoContent)
}
