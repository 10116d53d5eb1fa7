package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mavpath/advisor-backend/internal/config"
	"github.com/mavpath/advisor-backend/internal/handler"
	"github.com/mavpath/advisor-backend/internal/middleware"
	"github.com/mavpath/advisor-backend/internal/response"
	"github.com/mavpath/advisor-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Preference *handler.PreferenceHandler
	Advisor    *handler.AdvisorHandler
	Schedule   *handler.ScheduleHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", handlers.Health.Health)

	// Rate limiters: sign-in attempts and LLM-backed queries.
	authLimiter := middleware.NewRateLimiter(30, time.Minute)
	queryLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/student/login", handlers.Auth.Login)
		auth.POST("/student/register", handlers.Auth.Register)

		// Authenticated profile routes
		auth.POST("/student/logout", middleware.RequireStudentJWT(authService), handlers.Auth.Logout)
		auth.GET("/student/me", middleware.RequireStudentJWT(authService), handlers.Auth.Profile)
	}

	// ─── 2. Student Group (JWT + Single Device) ────────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireStudentJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		studentAPI.GET("/preferences", handlers.Preference.Get)
		studentAPI.PUT("/preferences", handlers.Preference.Update)

		studentAPI.POST("/advisor/query", queryLimiter.Middleware(), handlers.Advisor.Query)

		studentAPI.POST("/schedule/layout", handlers.Schedule.Layout)
		studentAPI.GET("/schedule/export.ics",
			middleware.CacheControl(300),
			handlers.Schedule.ExportICS,
		)
	}

	// ─── 3. WebSocket Group (Student WS Auth) ──────────────────────────
	wsGroup := router.Group("/ws/v1")
	wsGroup.Use(middleware.RequireStudentWSAuth(authService))
	{
		wsGroup.GET("/advisor/chat", handlers.WS.AdvisorChatStream)
	}

	return router
}
