package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

// AuditLogsHandler reads the audit_logs table. It is only mounted when the
// postgres store is in use.
type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// auditFilter is one page of an owner's audit trail.
type auditFilter struct {
	ownerID  string
	action   string
	entity   string
	from, to time.Time
	page     int
	limit    int
}

func parseAuditFilter(c *gin.Context) auditFilter {
	f := auditFilter{
		ownerID: middleware.OwnerID(c),
		action:  c.Query("action"),
		entity:  c.Query("entity"),
	}

	f.page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.page <= 0 {
		f.page = 1
	}
	f.limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(auditDefaultLimit)))
	if f.limit <= 0 || f.limit > auditMaxLimit {
		f.limit = auditDefaultLimit
	}

	if from, err := timezone.ParseDate(c.Query("from")); err == nil {
		f.from = from
	}
	// "to" is inclusive: the whole day counts.
	if to, err := timezone.ParseDate(c.Query("to")); err == nil {
		f.to = to.Add(24 * time.Hour)
	}
	return f
}

func (f auditFilter) offset() int { return (f.page - 1) * f.limit }

// scope restricts a query to the owner and the optional filters.
func (f auditFilter) scope(db *gorm.DB) *gorm.DB {
	q := db.Model(&models.AuditLog{}).Where("owner_id = ?", f.ownerID)
	if f.action != "" {
		q = q.Where("action = ?", f.action)
	}
	if f.entity != "" {
		q = q.Where("entity = ?", f.entity)
	}
	if !f.from.IsZero() {
		q = q.Where("created_at >= ?", f.from)
	}
	if !f.to.IsZero() {
		q = q.Where("created_at < ?", f.to)
	}
	return q
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := parseAuditFilter(c)
	db := h.db.WithContext(c.Request.Context())

	var total int64
	if err := f.scope(db).Count(&total).Error; err != nil {
		httperr.From(c, err, "audit_count_failed")
		return
	}

	logs := []models.AuditLog{}
	if err := f.scope(db).
		Order("created_at DESC").
		Limit(f.limit).
		Offset(f.offset()).
		Find(&logs).Error; err != nil {
		httperr.From(c, err, "audit_list_failed")
		return
	}

	c.JSON(200, gin.H{
		"page":  f.page,
		"limit": f.limit,
		"total": total,
		"logs":  logs,
	})
}
