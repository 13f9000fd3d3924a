package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fittogether/backend/internal/models"
)

// maxStreakDays caps the backward scan; streaks longer than a year are
// reported as 365. Known limitation, kept deliberately.
const maxStreakDays = 365

// InsightsService derives streaks and alerts from the stored daily metrics.
type InsightsService struct {
	db *gorm.DB
}

// NewInsightsService creates a new InsightsService instance
func NewInsightsService(db *gorm.DB) *InsightsService {
	return &InsightsService{db: db}
}

// Streak counts consecutive active days ending at today (inclusive). A day
// is active when its metrics row exists and has steps or consumed calories;
// the scan stops at the first missing or inactive day. If today itself is
// inactive the streak is 0.
func (s *InsightsService) Streak(userID uuid.UUID, today time.Time) (int, error) {
	today = models.DateOf(today)

	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		day := today.AddDate(0, 0, -i)

		var m models.DailyMetrics
		err := s.db.Where("user_id = ? AND day = ?", userID, day).First(&m).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				break
			}
			return 0, err
		}
		if m.Steps == 0 && m.CaloriesConsumed == 0 {
			break
		}
		streak++
	}
	return streak, nil
}

// Alerts compares today's metrics against the profile targets. The two
// checks are independent, so zero, one, or both alerts can come back.
// Being exactly on target produces nothing.
func Alerts(profile *models.UserProfile, today *models.DailyMetrics) []string {
	alerts := []string{}

	if net := today.NetCalories(); net > profile.TargetCalories {
		alerts = append(alerts, fmt.Sprintf("You're %d calories above target.", net-profile.TargetCalories))
	}
	if today.Steps < profile.TargetSteps {
		alerts = append(alerts, fmt.Sprintf("You're %d steps below today's goal.", profile.TargetSteps-today.Steps))
	}

	return alerts
}
