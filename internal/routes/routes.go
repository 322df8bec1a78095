package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	"github.com/BruksfildServices01/cutcorp-booking/internal/authn"
	"github.com/BruksfildServices01/cutcorp-booking/internal/config"
	"github.com/BruksfildServices01/cutcorp-booking/internal/handlers"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/cutcorp-booking/internal/infra/repository"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/storage"
	"github.com/BruksfildServices01/cutcorp-booking/internal/links"
	"github.com/BruksfildServices01/cutcorp-booking/internal/logger"
	"github.com/BruksfildServices01/cutcorp-booking/internal/metrics"
	"github.com/BruksfildServices01/cutcorp-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/catalog"
	ucClient "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/dashboard"
	ucPlan "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/plan"
	ucSystem "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/system"
)

// Deps are the process-wide singletons built by main.
type Deps struct {
	DB      *gorm.DB
	Cache   cache.Cache
	Audit   *audit.Dispatcher
	Metrics *metrics.Metrics
	Log     *logger.Logger
	Config  *config.Config
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	tz := cfg.ShopTimezone

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewCachedAppointmentRepository(
		infraRepo.NewAppointmentGormRepository(d.DB), d.Cache, cfg.CacheTTL,
	)
	catalogRepo := infraRepo.NewCachedCatalogRepository(
		infraRepo.NewCatalogGormRepository(d.DB), d.Cache, cfg.CacheTTL,
	)
	planRepo := infraRepo.NewCachedPlanRepository(
		infraRepo.NewPlanGormRepository(d.DB), d.Cache,
	)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	systemRepo := infraRepo.NewSystemGormRepository(d.DB)

	var uploader storage.Uploader
	if cfg.UploadsEnabled() {
		uploader = storage.NewS3Uploader(cfg)
	}

	shop := links.Shop{
		Name:     cfg.ShopName,
		Address:  cfg.ShopAddress,
		WhatsApp: cfg.ShopWhatsApp,
	}

	tokens := authn.NewTokens(cfg.JWTSecret)
	sessions := authn.NewSessions(d.Cache, userRepo, cfg.CacheTTL)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	services := ucCatalog.NewServices(catalogRepo, d.Audit)
	barbers := ucCatalog.NewBarbers(catalogRepo, d.Audit, uploader)

	authService := ucAuth.NewService(userRepo, tokens, sessions, d.Audit)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, tz)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		services,
		barbers,
		ucAppointment.NewGetAvailability(appointmentRepo, catalogRepo, tz),
		ucAppointment.NewBookAppointment(appointmentRepo, catalogRepo, d.Audit, d.Metrics, shop, tz),
		ucAppointment.NewListByPhone(appointmentRepo),
		ucAppointment.NewCancelOwn(appointmentRepo, d.Audit, tz),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewListAgenda(appointmentRepo, tz),
		ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit, tz),
		cancelAppointmentUC,
		ucAppointment.NewRegisterWalkIn(appointmentRepo, catalogRepo, d.Audit, tz),
		ucAppointment.NewCreatePause(appointmentRepo, catalogRepo, d.Audit, tz),
		ucAppointment.NewReleasePause(appointmentRepo, d.Audit, tz),
	)

	planHandler := handlers.NewPlanHandler(
		ucPlan.NewListActivePlans(planRepo),
		ucPlan.NewCreatePlan(planRepo, catalogRepo, d.Audit, tz),
		ucPlan.NewCancelPlan(planRepo, d.Audit, tz),
	)

	catalogHandler := handlers.NewCatalogHandler(services, barbers)
	clientHandler := handlers.NewClientHandler(ucClient.NewListClients(appointmentRepo, catalogRepo))
	dashboardHandler := handlers.NewDashboardHandler(ucDashboard.NewGetSummary(appointmentRepo, catalogRepo, tz))
	authHandler := handlers.NewAuthHandler(authService)
	systemHandler := handlers.NewSystemHandler(
		ucSystem.NewWipe(systemRepo, authService, d.Cache, d.Audit, d.Metrics, d.Log),
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, tz)

	// ======================================================
	// 🔍 OPERAÇÃO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", d.Metrics.Handler())

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.Book)
			publicAPI.GET("/appointments", publicHandler.ListMine)
			publicAPI.PATCH("/appointments/:id/cancel", publicHandler.CancelMine)
			publicAPI.GET("/support", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"url": shop.Support()})
			})
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, sessions))
		{
			secured.GET("/me", authHandler.Me)
			secured.POST("/auth/logout", authHandler.Logout)
			secured.POST("/auth/reauthenticate", authHandler.Reauthenticate)
			secured.PUT("/auth/password", authHandler.ChangePassword)

			// AGENDA
			secured.GET("/admin/appointments", appointmentHandler.List)
			secured.PATCH("/admin/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.POST("/admin/walk-ins", appointmentHandler.WalkIn)
			secured.POST("/admin/pauses", appointmentHandler.CreatePause)
			secured.DELETE("/admin/pauses/:id", appointmentHandler.ReleasePause)

			// PLANOS
			secured.GET("/admin/plans", planHandler.List)
			secured.POST("/admin/plans", planHandler.Create)
			secured.PATCH("/admin/plans/:id/cancel", planHandler.Cancel)

			// CATÁLOGO
			secured.GET("/admin/services", catalogHandler.ListServices)
			secured.POST("/admin/services", catalogHandler.CreateService)
			secured.PATCH("/admin/services/:id/active", catalogHandler.SetServiceActive)
			secured.DELETE("/admin/services/:id", catalogHandler.DeleteService)

			secured.GET("/admin/barbers", catalogHandler.ListBarbers)
			secured.GET("/admin/barbers/:id", catalogHandler.GetBarber)
			secured.POST("/admin/barbers", catalogHandler.CreateBarber)
			secured.PATCH("/admin/barbers/:id/active", catalogHandler.SetBarberActive)
			secured.PUT("/admin/barbers/:id/schedule", catalogHandler.SetSchedule)
			secured.PUT("/admin/barbers/:id/lunch", catalogHandler.SetLunch)
			secured.POST("/admin/barbers/:id/photo", catalogHandler.UploadPhoto)
			secured.DELETE("/admin/barbers/:id", catalogHandler.DeleteBarber)

			// RELATÓRIOS
			secured.GET("/admin/clients", clientHandler.List)
			secured.GET("/admin/dashboard", dashboardHandler.Summary)
			secured.GET("/admin/audit-logs", auditLogsHandler.List)

			// SISTEMA
			secured.POST("/admin/system/wipe", systemHandler.Wipe)
		}
	}
}
