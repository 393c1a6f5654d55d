package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/httpresp"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/catalog"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/report"
)

// ClientHandler holds the client endpoints beyond plain catalog CRUD.
type ClientHandler struct {
	finished  *catalog.ToggleFinished
	retention *report.Retention
}

func NewClientHandler(finished *catalog.ToggleFinished, retention *report.Retention) *ClientHandler {
	return &ClientHandler{finished: finished, retention: retention}
}

// ======================================================
// FINISHED TREATMENTS
// ======================================================

func (h *ClientHandler) ToggleFinished(c *gin.Context) {
	client, finished, err := h.finished.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		c.Param("id"),
		c.Param("service_id"),
	)
	if err != nil {
		httperr.From(c, err, "client_finished_failed")
		return
	}

	httpresp.OK(c, gin.H{
		"client":   client,
		"finished": finished,
	})
}

// ======================================================
// RECOMMENDATIONS
// ======================================================

func (h *ClientHandler) Recommendations(c *gin.Context) {
	detail, err := h.retention.Client(
		c.Request.Context(),
		middleware.OwnerID(c),
		c.Param("id"),
		c.Query("today"),
	)
	if err != nil {
		httperr.From(c, err, "client_recommendations_failed")
		return
	}

	httpresp.OK(c, detail)
}
