package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyMetrics holds one row per user per calendar day. Rows are created
// lazily the first time any route touches that day and counters only ever
// increase within a day. The composite unique index backs the retry-on-
// conflict recovery in the metrics service.
type DailyMetrics struct {
	ID               uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_metrics_user_day" json:"user_id"`
	Day              time.Time `gorm:"type:date;not null;uniqueIndex:idx_metrics_user_day" json:"day"`
	Steps            int       `gorm:"not null;default:0" json:"steps"`
	CaloriesConsumed int       `gorm:"not null;default:0" json:"calories_consumed"`
	CaloriesBurned   int       `gorm:"not null;default:0" json:"calories_burned"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (m *DailyMetrics) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// NetCalories is calories consumed minus calories burned for the day.
func (m *DailyMetrics) NetCalories() int {
	return m.CaloriesConsumed - m.CaloriesBurned
}

// ActivityEntry is an append-only record of a single logged activity.
// Inserting one also bumps the owning day's metrics; see
// MetricsService.LogActivity.
type ActivityEntry struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Day             time.Time `gorm:"type:date;not null;index" json:"day"`
	ActivityType    string    `gorm:"size:50;not null" json:"activity_type"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Calories        int       `gorm:"not null" json:"calories"`
	CreatedAt       time.Time `json:"created_at"`
}

func (a *ActivityEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// DateOf truncates t to its calendar day in t's location. All daily-metrics
// keys go through this so comparisons against the date column line up.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
