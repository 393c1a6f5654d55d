package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/config"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/calendar"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/finance"
	"github.com/BruksfildServices01/clinic-agenda/internal/handlers"
	"github.com/BruksfildServices01/clinic-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-agenda/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/catalog"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/report"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/workspace"
)

// Deps are the singletons built in main.
type Deps struct {
	Config   *config.Config
	Resolver domain.StoreResolver
	Guest    *repository.MemoryStore
	// DB is nil unless the postgres store is in use.
	DB      *gorm.DB
	Audit   *audit.Dispatcher
	Grid    calendar.Config
	Sorter  *finance.Sorter
	Metrics *middleware.Metrics
	Today   func() string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Handler())
	}

	// ======================================================
	// USE CASES
	// ======================================================
	policy := ucAppointment.Policy{RejectOverlaps: cfg.RejectOverlaps}
	loader := workspace.NewLoader(d.Resolver)
	retentionUC := report.NewRetention(loader, d.Today)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewListAppointments(d.Resolver),
		ucAppointment.NewSaveAppointment(d.Resolver, policy, d.Audit),
		ucAppointment.NewDraftAppointment(d.Resolver),
		ucAppointment.NewDropAppointment(d.Resolver, d.Grid, policy, d.Audit),
		ucAppointment.NewResizeAppointment(d.Resolver, d.Grid, policy, d.Audit),
		ucAppointment.NewCompleteAppointment(d.Resolver, d.Audit),
		ucAppointment.NewCancelAppointment(d.Resolver, d.Audit),
		ucAppointment.NewDeleteAppointment(d.Resolver, d.Audit),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg.JWTSecret, cfg.GuestOwnerID)
	meHandler := handlers.NewMeHandler(cfg.GuestOwnerID, cfg.StoreDriver)
	workspaceHandler := handlers.NewWorkspaceHandler(loader, cfg.GuestOwnerID, d.Guest)
	clientHandler := handlers.NewClientHandler(
		catalog.NewToggleFinished(d.Resolver, d.Audit),
		retentionUC,
	)
	reportHandler := handlers.NewReportHandler(
		retentionUC,
		report.NewFinance(loader, d.Sorter),
	)

	clients := catalogHandler[models.Client](d, catalog.Clients)
	services := catalogHandler[models.Service](d, catalog.Services)
	staff := catalogHandler[models.Staff](d, catalog.Staff)
	statuses := catalogHandler[models.AppStatus](d, catalog.Statuses)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		api.POST("/auth/guest", authHandler.Guest)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/workspace", workspaceHandler.Get)
			secured.POST("/me/workspace/reset", workspaceHandler.Reset)

			mountCatalog(secured, "/me/clients", clients)
			mountCatalog(secured, "/me/services", services)
			mountCatalog(secured, "/me/staff", staff)
			mountCatalog(secured, "/me/statuses", statuses)

			secured.POST("/me/clients/:id/finished/:service_id", clientHandler.ToggleFinished)
			secured.GET("/me/clients/:id/recommendations", clientHandler.Recommendations)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/draft", appointmentHandler.Draft)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/me/appointments/:id/drop", appointmentHandler.Drop)
			secured.POST("/me/appointments/:id/resize", appointmentHandler.Resize)

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/me/reports/retention", reportHandler.Retention)
			secured.GET("/me/reports/finance", reportHandler.Finance)

			if d.DB != nil {
				secured.GET("/me/audit-logs", handlers.NewAuditLogsHandler(d.DB).List)
			}
		}
	}
}

func catalogHandler[T any, P interface {
	*T
	domain.Entity
}](d Deps, entity catalog.Entity[T]) *handlers.CatalogHandler[T, P] {
	return handlers.NewCatalogHandler[T, P](
		entity.Name,
		catalog.NewList(entity, d.Resolver),
		catalog.NewSave(entity, d.Resolver, d.Audit),
		catalog.NewDelete(entity, d.Resolver, d.Audit, d.Today),
	)
}

func mountCatalog[T any, P interface {
	*T
	domain.Entity
}](g *gin.RouterGroup, path string, h *handlers.CatalogHandler[T, P]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
