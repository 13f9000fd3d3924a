package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fittogether/backend/config"
	"github.com/fittogether/backend/internal/database"
	"github.com/fittogether/backend/internal/middleware"
	"github.com/fittogether/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "FitTogether API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes wires services, handlers, and middleware onto the router
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, s3Config *config.S3Config) {
	router.GET("/health", HealthCheck)

	// Redis backs the coach rate limiter; run without limiting if it is
	// unavailable.
	var coachLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
	} else {
		coachLimiter = middleware.NewCoachRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db, s3Config)
	metricsService := service.NewMetricsService(db)
	insightsService := service.NewInsightsService(db)
	coachService := service.NewCoachService()

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService, authService)
	metricsHandler := NewMetricsHandler(metricsService, profileService)
	dashboardHandler := NewDashboardHandler(profileService, metricsService, insightsService)
	coachHandler := NewCoachHandler(coachService, profileService, metricsService)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	profileHandler.RegisterRoutes(protected)
	metricsHandler.RegisterRoutes(protected)
	dashboardHandler.RegisterRoutes(protected)

	coachGroup := protected.Group("")
	if coachLimiter != nil {
		// Quota status lives outside the limited group so checking it does
		// not spend quota.
		protected.GET("/coach/quota", coachLimiter.QuotaHandler())
		coachGroup.Use(coachLimiter.RateLimitMiddleware())
	}
	coachHandler.RegisterRoutes(coachGroup)
}
