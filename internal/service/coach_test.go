package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittogether/backend/internal/models"
)

func coachFixtures() (*models.UserProfile, *models.DailyMetrics) {
	profile := &models.UserProfile{
		Goal:           models.GoalLose,
		TargetSteps:    10000,
		TargetCalories: 1800,
	}
	today := &models.DailyMetrics{
		Steps:            4000,
		CaloriesConsumed: 2500,
		CaloriesBurned:   300,
	}
	return profile, today
}

func TestCoachWelcome(t *testing.T) {
	svc := NewCoachService()
	profile, today := coachFixtures()

	for _, msg := range []string{"", "hi", "Hello", "  HEY  "} {
		reply := svc.Reply(msg, profile, today)
		require.Len(t, reply, 3, "message %q", msg)
		assert.Contains(t, reply[0], "FitTogether coach")
	}
}

func TestCoachFarewell(t *testing.T) {
	svc := NewCoachService()
	profile, today := coachFixtures()

	for _, msg := range []string{"bye", "thanks", "thank you", "ok", "done"} {
		reply := svc.Reply(msg, profile, today)
		require.Len(t, reply, 2, "message %q", msg)
		assert.Equal(t, "You're welcome!", reply[0])
	}
}

func TestCoachOutOfDomain(t *testing.T) {
	svc := NewCoachService()
	profile, today := coachFixtures()

	reply := svc.Reply("tell me a joke", profile, today)
	require.Len(t, reply, 2)
	assert.Contains(t, reply[0], "fitness-related topics")
}

func TestCoachSubstringMatching(t *testing.T) {
	svc := NewCoachService()
	profile, today := coachFixtures()

	// "eating" matches the "eat" keyword, so this reaches the advice branch.
	reply := svc.Reply("I love eating pizza", profile, today)
	require.Len(t, reply, 3)
	assert.Contains(t, reply[0], "Walk 6000 more steps today.")

	// Accidental overlaps count too: "weather" contains "eat", so a weather
	// question is treated as in-domain rather than refused.
	reply = svc.Reply("what's the weather", profile, today)
	require.Len(t, reply, 3)
	assert.Contains(t, reply[0], "Walk 6000 more steps today.")
}

func TestCoachHabitPriority(t *testing.T) {
	svc := NewCoachService()
	profile, today := coachFixtures()

	// "calories" also matches, but the habit rule wins.
	reply := svc.Reply("daily habit and calories", profile, today)
	require.Len(t, reply, 3)
	assert.Contains(t, reply[0], "Healthy daily habits")
}

func TestCoachAdviceStepGoalMet(t *testing.T) {
	svc := NewCoachService()
	profile, today := coachFixtures()
	today.Steps = 12000

	reply := svc.Reply("how are my steps", profile, today)
	assert.Equal(t, "Great job! You completed your step goal today.", reply[0])
}

func TestCoachAdviceByGoal(t *testing.T) {
	svc := NewCoachService()

	tests := []struct {
		name     string
		goal     string
		consumed int
		burned   int
		target   int
		want     string
	}{
		{"lose over", models.GoalLose, 2500, 300, 1800, "You exceeded your calorie limit. Prefer light meals and cardio."},
		{"lose on track", models.GoalLose, 1500, 300, 1800, "You are on track with calories for weight loss."},
		{"gain under", models.GoalGain, 2000, 300, 2500, "Increase calories with protein-rich foods."},
		{"gain enough", models.GoalGain, 3000, 300, 2500, "Good calorie intake for muscle gain."},
		{"maintain", models.GoalMaintain, 2000, 300, 2100, "Maintain balanced meals and regular activity."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.UserProfile{
				Goal:           tt.goal,
				TargetSteps:    8000,
				TargetCalories: tt.target,
			}
			today := &models.DailyMetrics{
				Steps:            1000,
				CaloriesConsumed: tt.consumed,
				CaloriesBurned:   tt.burned,
			}

			reply := svc.Reply("tell me about my calories", profile, today)
			require.Len(t, reply, 3)
			assert.Equal(t, tt.want, reply[1])
			assert.Equal(t, "Stay consistent. Small daily efforts give big results.", reply[2])
		})
	}
}
