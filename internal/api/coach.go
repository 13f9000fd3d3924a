package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fittogether/backend/internal/service"
)

// CoachHandler serves rule-based coach replies
type CoachHandler struct {
	coachService   *service.CoachService
	profileService *service.ProfileService
	metricsService *service.MetricsService
}

// NewCoachHandler creates a new CoachHandler
func NewCoachHandler(coachService *service.CoachService, profileService *service.ProfileService, metricsService *service.MetricsService) *CoachHandler {
	return &CoachHandler{
		coachService:   coachService,
		profileService: profileService,
		metricsService: metricsService,
	}
}

// RegisterRoutes registers the coach route on an authenticated group
func (h *CoachHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/coach", h.Ask)
}

// Ask answers a single free-text message. Today's metrics row is created
// lazily before the rules run, so the advice branch always has data.
func (h *CoachHandler) Ask(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load coach"})
		return
	}

	today, err := h.metricsService.GetOrCreate(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load coach"})
		return
	}

	advice := h.coachService.Reply(c.Query("message"), profile, today)
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
