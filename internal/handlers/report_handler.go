package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain/finance"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/httpresp"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/report"
)

type ReportHandler struct {
	retention *report.Retention
	finance   *report.Finance
}

func NewReportHandler(retention *report.Retention, finance *report.Finance) *ReportHandler {
	return &ReportHandler{retention: retention, finance: finance}
}

func (h *ReportHandler) Retention(c *gin.Context) {
	res, err := h.retention.Execute(c.Request.Context(), middleware.OwnerID(c), c.Query("today"))
	if err != nil {
		httperr.From(c, err, "retention_report_failed")
		return
	}

	httpresp.OK(c, res)
}

func (h *ReportHandler) Finance(c *gin.Context) {
	staffSort, ok := sortParam(c, "staff")
	if !ok {
		return
	}
	clientSort, ok := sortParam(c, "client")
	if !ok {
		return
	}

	res, err := h.finance.Execute(c.Request.Context(), middleware.OwnerID(c), report.FinanceQuery{
		From:       c.Query("from"),
		To:         c.Query("to"),
		StaffSort:  staffSort,
		ClientSort: clientSort,
	})
	if err != nil {
		httperr.From(c, err, "finance_report_failed")
		return
	}

	httpresp.OK(c, res)
}

// sortParam reads {prefix}_sort and {prefix}_desc as the current state.
// {prefix}_toggle applies a header click on top of it, so a client can echo
// back the returned sort and the key that was clicked.
func sortParam(c *gin.Context, prefix string) (finance.SortState, bool) {
	st := finance.SortState{Key: c.Query(prefix + "_sort")}

	if raw := c.Query(prefix + "_desc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", prefix+"_desc must be a boolean")
			return finance.SortState{}, false
		}
		st.Desc = desc
	}

	if key := c.Query(prefix + "_toggle"); key != "" {
		st = st.Toggle(key)
	}

	return st, true
}
