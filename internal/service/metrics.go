package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fittogether/backend/internal/models"
)

var ErrNegativeInput = errors.New("duration and calories must not be negative")

// MetricsService owns the per-user-per-day metrics rows and the append-only
// activity ledger that feeds them.
type MetricsService struct {
	db *gorm.DB
}

// NewMetricsService creates a new MetricsService instance
func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

// stepsFromDuration converts logged activity minutes into step credit.
// The mapping is 1:1, carried over from the product's original accounting.
func stepsFromDuration(durationMinutes int) int {
	return durationMinutes
}

// GetOrCreate returns the metrics row for (user, day), creating a zeroed one
// if none exists yet. Two first-visits racing on the same day both reach the
// create; the unique index rejects the loser and the read is retried, so the
// call is idempotent either way.
func (s *MetricsService) GetOrCreate(userID uuid.UUID, day time.Time) (*models.DailyMetrics, error) {
	return s.getOrCreate(s.db, userID, day)
}

func (s *MetricsService) getOrCreate(db *gorm.DB, userID uuid.UUID, day time.Time) (*models.DailyMetrics, error) {
	day = models.DateOf(day)

	var m models.DailyMetrics
	err := db.Where("user_id = ? AND day = ?", userID, day).First(&m).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = models.DailyMetrics{UserID: userID, Day: day}
	if err := db.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the creation race; the row exists now.
			var existing models.DailyMetrics
			if err := db.Where("user_id = ? AND day = ?", userID, day).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &m, nil
}

// Get returns the metrics row for (user, day) without creating one.
// A missing day comes back as (nil, nil).
func (s *MetricsService) Get(userID uuid.UUID, day time.Time) (*models.DailyMetrics, error) {
	var m models.DailyMetrics
	err := s.db.Where("user_id = ? AND day = ?", userID, models.DateOf(day)).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// LogMeal adds consumed calories to the day's metrics.
func (s *MetricsService) LogMeal(userID uuid.UUID, day time.Time, calories int) (*models.DailyMetrics, error) {
	if calories < 0 {
		return nil, ErrNegativeInput
	}

	var out *models.DailyMetrics
	err := s.db.Transaction(func(tx *gorm.DB) error {
		m, err := s.getOrCreate(tx, userID, day)
		if err != nil {
			return err
		}
		if err := tx.Model(m).
			Update("calories_consumed", gorm.Expr("calories_consumed + ?", calories)).Error; err != nil {
			return err
		}
		m.CaloriesConsumed += calories
		out = m
		return nil
	})
	return out, err
}

// LogActivity appends a ledger entry and applies its effect to the day's
// metrics as one transaction: steps grow by the duration-derived credit,
// burned calories by the entry's calories.
func (s *MetricsService) LogActivity(userID uuid.UUID, day time.Time, activityType string, durationMinutes, calories int) (*models.ActivityEntry, error) {
	if durationMinutes < 0 || calories < 0 {
		return nil, ErrNegativeInput
	}
	day = models.DateOf(day)

	entry := models.ActivityEntry{
		UserID:          userID,
		Day:             day,
		ActivityType:    activityType,
		DurationMinutes: durationMinutes,
		Calories:        calories,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		m, err := s.getOrCreate(tx, userID, day)
		if err != nil {
			return err
		}
		return tx.Model(m).Updates(map[string]interface{}{
			"steps":           gorm.Expr("steps + ?", stepsFromDuration(durationMinutes)),
			"calories_burned": gorm.Expr("calories_burned + ?", calories),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ActivitiesForDay lists the ledger entries for (user, day), oldest first.
func (s *MetricsService) ActivitiesForDay(userID uuid.UUID, day time.Time) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	err := s.db.
		Where("user_id = ? AND day = ?", userID, models.DateOf(day)).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// RangeSummary aggregates consumed and burned calories across [from, to].
type RangeSummary struct {
	From             string `json:"from"`
	To               string `json:"to"`
	Days             int    `json:"days"`
	CaloriesConsumed int    `json:"calories_consumed"`
	CaloriesBurned   int    `json:"calories_burned"`
}

// Summarize sums the daily metrics between from and to inclusive.
func (s *MetricsService) Summarize(userID uuid.UUID, from, to time.Time) (*RangeSummary, error) {
	from, to = models.DateOf(from), models.DateOf(to)

	var rows []models.DailyMetrics
	if err := s.db.
		Where("user_id = ? AND day BETWEEN ? AND ?", userID, from, to).
		Order("day ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := &RangeSummary{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		Days: len(rows),
	}
	for _, r := range rows {
		out.CaloriesConsumed += r.CaloriesConsumed
		out.CaloriesBurned += r.CaloriesBurned
	}
	return out, nil
}
