package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain/calendar"
	"github.com/BruksfildServices01/clinic-agenda/internal/dto"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/httpresp"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list     *ucAppointment.ListAppointments
	save     *ucAppointment.SaveAppointment
	draft    *ucAppointment.DraftAppointment
	drop     *ucAppointment.DropAppointment
	resize   *ucAppointment.ResizeAppointment
	complete *ucAppointment.ChangeStatus
	cancel   *ucAppointment.ChangeStatus
	remove   *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	save *ucAppointment.SaveAppointment,
	draft *ucAppointment.DraftAppointment,
	drop *ucAppointment.DropAppointment,
	resize *ucAppointment.ResizeAppointment,
	complete *ucAppointment.ChangeStatus,
	cancel *ucAppointment.ChangeStatus,
	remove *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:     list,
		save:     save,
		draft:    draft,
		drop:     drop,
		resize:   resize,
		complete: complete,
		cancel:   cancel,
		remove:   remove,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		httperr.From(c, err, "appointment_list_failed")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	h.write(c, "", http.StatusCreated)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	h.write(c, c.Param("id"), http.StatusOK)
}

func (h *AppointmentHandler) write(c *gin.Context, id string, status int) {
	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap := req.Model(id)
	res, err := h.save.Execute(c.Request.Context(), middleware.OwnerID(c), &ap)
	if err != nil {
		httperr.From(c, err, "appointment_save_failed")
		return
	}

	c.JSON(status, res)
}

// ======================================================
// DRAFT
// ======================================================

func (h *AppointmentHandler) Draft(c *gin.Context) {
	draft, err := h.draft.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		c.Query("client_id"),
		c.Query("service_id"),
	)
	if err != nil {
		httperr.From(c, err, "appointment_draft_failed")
		return
	}

	httpresp.OK(c, draft)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err, "appointment_complete_failed")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err, "appointment_cancel_failed")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CALENDAR GESTURES
// ======================================================

func (h *AppointmentHandler) Drop(c *gin.Context) {
	var req dto.DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.drop.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		c.Param("id"),
		calendar.Slot{Date: req.Date, Hour: *req.Hour},
		calendar.DropMode(req.Mode),
	)
	if err != nil {
		httperr.From(c, err, "appointment_drop_failed")
		return
	}

	status := http.StatusOK
	if calendar.DropMode(req.Mode) == calendar.DropCopy {
		status = http.StatusCreated
	}
	c.JSON(status, res)
}

func (h *AppointmentHandler) Resize(c *gin.Context) {
	var req dto.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.resize.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		c.Param("id"),
		calendar.Edge(req.Edge),
		req.DeltaPixels,
	)
	if err != nil {
		httperr.From(c, err, "appointment_resize_failed")
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		httperr.From(c, err, "appointment_delete_failed")
		return
	}

	c.Status(http.StatusNoContent)
}
