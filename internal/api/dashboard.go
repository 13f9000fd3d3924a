package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fittogether/backend/internal/models"
	"github.com/fittogether/backend/internal/service"
)

// DashboardHandler assembles the daily overview
type DashboardHandler struct {
	profileService  *service.ProfileService
	metricsService  *service.MetricsService
	insightsService *service.InsightsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(profileService *service.ProfileService, metricsService *service.MetricsService, insightsService *service.InsightsService) *DashboardHandler {
	return &DashboardHandler{
		profileService:  profileService,
		metricsService:  metricsService,
		insightsService: insightsService,
	}
}

// RegisterRoutes registers the dashboard route on an authenticated group
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
}

// DashboardResponse is the daily overview for the signed-in user
type DashboardResponse struct {
	Profile           *models.UserProfile    `json:"profile"`
	Today             *models.DailyMetrics   `json:"today"`
	Activities        []models.ActivityEntry `json:"activities"`
	RemainingCalories int                    `json:"remaining_calories"`
	Alerts            []string               `json:"alerts"`
	Streak            int                    `json:"streak"`
}

// GetDashboard returns today's metrics, activities, remaining calories,
// alerts, and the current streak. Touching the dashboard lazily creates
// today's metrics row.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "complete the onboarding quiz first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	now := time.Now()
	today, err := h.metricsService.GetOrCreate(userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	activities, err := h.metricsService.ActivitiesForDay(userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	streak, err := h.insightsService.Streak(userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Profile:           profile,
		Today:             today,
		Activities:        activities,
		RemainingCalories: profile.TargetCalories - today.CaloriesConsumed + today.CaloriesBurned,
		Alerts:            service.Alerts(profile, today),
		Streak:            streak,
	})
}
