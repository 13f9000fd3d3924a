package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittogether/backend/internal/models"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	day := time.Now()

	first, err := svc.GetOrCreate(user.ID, day)
	require.NoError(t, err)
	assert.Zero(t, first.Steps)
	assert.Zero(t, first.CaloriesConsumed)
	assert.Zero(t, first.CaloriesBurned)

	second, err := svc.GetOrCreate(user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.DailyMetrics{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateSeparateDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	today, err := svc.GetOrCreate(user.ID, time.Now())
	require.NoError(t, err)
	yesterday, err := svc.GetOrCreate(user.ID, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)

	assert.NotEqual(t, today.ID, yesterday.ID)
}

func TestLogActivityAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	day := time.Now()

	_, err := svc.LogActivity(user.ID, day, "running", 30, 250)
	require.NoError(t, err)
	_, err = svc.LogActivity(user.ID, day, "cycling", 45, 400)
	require.NoError(t, err)

	m, err := svc.Get(user.ID, day)
	require.NoError(t, err)
	require.NotNil(t, m)
	// Activity minutes are credited 1:1 as steps.
	assert.Equal(t, 75, m.Steps)
	assert.Equal(t, 650, m.CaloriesBurned)
	assert.Zero(t, m.CaloriesConsumed)

	entries, err := svc.ActivitiesForDay(user.ID, day)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "running", entries[0].ActivityType)
	assert.Equal(t, "cycling", entries[1].ActivityType)
}

func TestLogActivityOrderIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	day := time.Now()

	a := createTestUser(t, db, "alice", "alice@example.com")
	b := createTestUser(t, db, "bob", "bob@example.com")

	_, err := svc.LogActivity(a.ID, day, "yoga", 20, 100)
	require.NoError(t, err)
	_, err = svc.LogActivity(a.ID, day, "swimming", 40, 300)
	require.NoError(t, err)

	_, err = svc.LogActivity(b.ID, day, "swimming", 40, 300)
	require.NoError(t, err)
	_, err = svc.LogActivity(b.ID, day, "yoga", 20, 100)
	require.NoError(t, err)

	ma, err := svc.Get(a.ID, day)
	require.NoError(t, err)
	mb, err := svc.Get(b.ID, day)
	require.NoError(t, err)

	assert.Equal(t, ma.Steps, mb.Steps)
	assert.Equal(t, ma.CaloriesBurned, mb.CaloriesBurned)
}

func TestLogMeal(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	day := time.Now()

	m, err := svc.LogMeal(user.ID, day, 600)
	require.NoError(t, err)
	assert.Equal(t, 600, m.CaloriesConsumed)

	m, err = svc.LogMeal(user.ID, day, 400)
	require.NoError(t, err)
	assert.Equal(t, 1000, m.CaloriesConsumed)
	assert.Zero(t, m.Steps)
}

func TestNegativeInputRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	day := time.Now()

	_, err := svc.LogMeal(user.ID, day, -1)
	assert.ErrorIs(t, err, ErrNegativeInput)

	_, err = svc.LogActivity(user.ID, day, "running", -5, 100)
	assert.ErrorIs(t, err, ErrNegativeInput)

	_, err = svc.LogActivity(user.ID, day, "running", 5, -100)
	assert.ErrorIs(t, err, ErrNegativeInput)

	m, err := svc.Get(user.ID, day)
	require.NoError(t, err)
	assert.Nil(t, m, "rejected input must not create a metrics row")
}

func TestGetMissingDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	m, err := svc.Get(user.ID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSummarize(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	now := time.Now()

	for i := 0; i < 3; i++ {
		day := now.AddDate(0, 0, -i)
		_, err := svc.LogMeal(user.ID, day, 500)
		require.NoError(t, err)
		_, err = svc.LogActivity(user.ID, day, "walking", 30, 100)
		require.NoError(t, err)
	}

	sum, err := svc.Summarize(user.ID, now.AddDate(0, 0, -6), now)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Days)
	assert.Equal(t, 1500, sum.CaloriesConsumed)
	assert.Equal(t, 300, sum.CaloriesBurned)

	sum, err = svc.Summarize(user.ID, now.AddDate(0, 0, -1), now)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Days)
	assert.Equal(t, 1000, sum.CaloriesConsumed)
}
