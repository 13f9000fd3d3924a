package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fittogether/backend/internal/service"
)

type ActivityRequest struct {
	ActivityType    string `json:"activity_type" binding:"required,max=50"`
	DurationMinutes int    `json:"duration_minutes" binding:"min=0"`
	Calories        int    `json:"calories" binding:"min=0"`
}

type MealRequest struct {
	Calories int `json:"calories" binding:"min=0"`
}

// MetricsHandler handles activity, meal, and growth routes
type MetricsHandler struct {
	metricsService *service.MetricsService
	profileService *service.ProfileService
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(metricsService *service.MetricsService, profileService *service.ProfileService) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
		profileService: profileService,
	}
}

// RegisterRoutes registers the metrics routes on an authenticated group
func (h *MetricsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/activities", h.ListActivities)
	router.POST("/activities", h.LogActivity)
	router.POST("/meals", h.LogMeal)
	router.GET("/growth", h.Growth)
}

// LogActivity appends a ledger entry and bumps today's metrics.
func (h *MetricsHandler) LogActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.metricsService.LogActivity(userID, time.Now(), req.ActivityType, req.DurationMinutes, req.Calories)
	if err != nil {
		if errors.Is(err, service.ErrNegativeInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log activity"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListActivities returns today's ledger entries.
func (h *MetricsHandler) ListActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.metricsService.ActivitiesForDay(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// LogMeal adds consumed calories to today's metrics.
func (h *MetricsHandler) LogMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	metrics, err := h.metricsService.LogMeal(userID, time.Now(), req.Calories)
	if err != nil {
		if errors.Is(err, service.ErrNegativeInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log meal"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// Growth summarizes calories over a period: ?period=YYYY-MM-DD for one day,
// ?period=YYYY-MM for a month, or the trailing 7 days when absent.
func (h *MetricsHandler) Growth(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if _, err := h.profileService.GetProfile(userID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "complete the onboarding quiz first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize"})
		return
	}

	now := time.Now()
	from, to := now.AddDate(0, 0, -6), now

	if period := c.Query("period"); period != "" {
		switch len(period) {
		case 10:
			day, err := time.ParseInLocation("2006-01-02", period, now.Location())
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
				return
			}
			from, to = day, day
		case 7:
			month, err := time.ParseInLocation("2006-01", period, now.Location())
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
				return
			}
			from, to = month, month.AddDate(0, 1, -1)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
			return
		}
	}

	summary, err := h.metricsService.Summarize(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
