package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skibidi-db/config"
	"skibidi-db/handlers"
	"skibidi-db/helper"
	"skibidi-db/middleware"
	"skibidi-db/models"
	"skibidi-db/repositories"
	"skibidi-db/services"
)

// SetupRouter wires repositories, services and handlers over db and registers
// every route.
func SetupRouter(db *gorm.DB, mailer services.Mailer, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	// Initialize repositories
	tx := repositories.NewTransactor(db)
	profileRepo := repositories.NewProfileRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	termRepo := repositories.NewTermRepository(db)
	versionRepo := repositories.NewTermVersionRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	statsRepo := repositories.NewStatisticsRepository(db)

	// Initialize services
	authService := services.NewAuthService(profileRepo, tokenRepo, mailer, cfg, logger.Named("auth"))
	contributionService := services.NewContributionService(contributionRepo, logger.Named("contributions"))
	moderationService := services.NewModerationService(tx, contributionRepo, termRepo, versionRepo, logger.Named("moderation"))
	termService := services.NewTermService(tx, termRepo, versionRepo, logger.Named("terms"))
	reportService := services.NewReportService(tx, reportRepo, termRepo, contributionRepo, logger.Named("reports"))
	adminService := services.NewAdminService(profileRepo, statsRepo, authService, logger.Named("admin"))

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper(logger)
	authHandler := handlers.NewAuthHandler(authService, contributionService, httpHelper)
	contributionHandler := handlers.NewContributionHandler(contributionService, httpHelper)
	moderationHandler := handlers.NewModerationHandler(moderationService, httpHelper)
	termHandler := handlers.NewTermHandler(termService, reportService, httpHelper)
	adminHandler := handlers.NewAdminHandler(adminService, termService, reportService, httpHelper)

	requireAuth := middleware.AuthMiddleware(authService, httpHelper)
	optionalAuth := middleware.OptionalAuth(authService)
	requireAdmin := middleware.RequireRole(httpHelper, models.RoleAdmin)

	router := gin.New()
	router.Use(middleware.Recovery(logger), middleware.RequestLogger(logger.Named("http")))

	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			logger.Error("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/password-reset", authHandler.RequestPasswordReset)
			auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
			auth.POST("/verify-email", authHandler.VerifyEmail)
			auth.GET("/session", optionalAuth, authHandler.Session)
			auth.POST("/logout", requireAuth, authHandler.Logout)
		}

		// Public browsing
		terms := v1.Group("/terms")
		{
			terms.GET("", termHandler.List)
			terms.GET("/suggest", termHandler.Suggest)
			terms.GET("/:slug", termHandler.GetBySlug)
		}

		// Anonymous callers are answered with a sign-in prompt by the service.
		v1.POST("/contributions", optionalAuth, contributionHandler.Submit)

		protected := v1.Group("")
		protected.Use(requireAuth)
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/profile/contributions", authHandler.GetMyContributions)
			protected.POST("/terms/:id/reports", termHandler.Report)
		}

		moderation := v1.Group("/moderation")
		moderation.Use(requireAuth, requireAdmin)
		{
			moderation.GET("/contributions", moderationHandler.List)
			moderation.POST("/contributions/:id/approve", moderationHandler.Approve)
			moderation.POST("/contributions/:id/reject", moderationHandler.Reject)
		}

		admin := v1.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			admin.GET("/submissions", moderationHandler.List)
			admin.POST("/submissions/:id/approve", moderationHandler.Approve)
			admin.POST("/submissions/:id/reject", moderationHandler.Reject)
			admin.DELETE("/submissions/:id", moderationHandler.Delete)

			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/suspend", adminHandler.SetSuspended)
			admin.PUT("/users/:id/role", adminHandler.SetRole)
			admin.POST("/users/:id/reset-password", adminHandler.ResetUserPassword)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/terms", adminHandler.ListTerms)
			admin.PUT("/terms/:id", adminHandler.UpdateTerm)
			admin.DELETE("/terms/:id", adminHandler.DeleteTerm)
			admin.GET("/terms/:id/versions", adminHandler.TermVersions)

			admin.GET("/reports", adminHandler.ListReports)
			admin.PUT("/reports/:id/resolve", adminHandler.ResolveReport)
			admin.DELETE("/reports/:id/content", adminHandler.DeleteReportedContent)

			admin.GET("/statistics", adminHandler.Statistics)
		}
	}

	return router
}

// WithCORS wraps the engine with the configured CORS policy.
func WithCORS(handler http.Handler, cfg *config.Config) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(handler)
}
