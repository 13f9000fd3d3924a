package service

import (
	"fmt"
	"strings"

	"github.com/fittogether/backend/internal/models"
)

// CoachService produces rule-based replies to a single free-text message.
// Rules are evaluated in fixed priority order and the first match wins;
// there is no memory across turns.
type CoachService struct {
	rules []coachRule
}

// coachInput carries everything a responder may need. Profile and Today are
// guaranteed non-nil by the caller for the advice rule (quiz-gated route
// with lazy metrics creation done first).
type coachInput struct {
	message string
	profile *models.UserProfile
	today   *models.DailyMetrics
}

type coachRule struct {
	match func(msg string) bool
	reply func(in coachInput) []string
}

var (
	coachGreetings = []string{"hi", "hello", "hey"}
	coachClosings  = []string{"bye", "thanks", "thank you", "ok", "done"}

	// Keyword matching is substring-based on purpose: "eating" matches
	// "eat". Messages with none of these words are out of domain.
	coachKeywords = []string{
		"diet", "food", "eat", "workout", "exercise",
		"steps", "calories", "fitness", "health",
		"habit", "habits", "daily",
	}
)

// NewCoachService builds the ordered rule table.
func NewCoachService() *CoachService {
	return &CoachService{
		rules: []coachRule{
			{
				match: func(msg string) bool { return msg == "" || containsExact(coachGreetings, msg) },
				reply: func(coachInput) []string {
					return []string{
						"Hi! I'm your FitTogether coach.",
						"I can help with fitness, food, calories, and workouts.",
						"What would you like to work on today?",
					}
				},
			},
			{
				match: func(msg string) bool { return containsExact(coachClosings, msg) },
				reply: func(coachInput) []string {
					return []string{
						"You're welcome!",
						"Take care of your health and come back anytime.",
					}
				},
			},
			{
				match: func(msg string) bool { return !containsAnySubstring(msg, coachKeywords) },
				reply: func(coachInput) []string {
					return []string{
						"I can only help with fitness-related topics.",
						"Try asking about diet, calories, or workouts.",
					}
				},
			},
			{
				match: func(msg string) bool {
					return strings.Contains(msg, "habit") || strings.Contains(msg, "daily")
				},
				reply: func(coachInput) []string {
					return []string{
						"Healthy daily habits include regular walks, balanced meals, and proper sleep.",
						"Consistency matters more than intensity.",
						"Would you like tips on workouts or diet?",
					}
				},
			},
			{
				match: func(string) bool { return true },
				reply: personalizedAdvice,
			},
		},
	}
}

// Reply normalizes the message and dispatches it through the rule table.
func (s *CoachService) Reply(message string, profile *models.UserProfile, today *models.DailyMetrics) []string {
	in := coachInput{
		message: strings.ToLower(strings.TrimSpace(message)),
		profile: profile,
		today:   today,
	}
	for _, rule := range s.rules {
		if rule.match(in.message) {
			return rule.reply(in)
		}
	}
	return nil // unreachable, last rule always matches
}

// personalizedAdvice compares today's metrics against the profile targets:
// a step line, a goal-conditioned calorie line, and a fixed closer.
func personalizedAdvice(in coachInput) []string {
	var advice []string

	if in.today.Steps < in.profile.TargetSteps {
		advice = append(advice, fmt.Sprintf("Walk %d more steps today.", in.profile.TargetSteps-in.today.Steps))
	} else {
		advice = append(advice, "Great job! You completed your step goal today.")
	}

	net := in.today.NetCalories()

	switch in.profile.Goal {
	case models.GoalLose:
		if net > in.profile.TargetCalories {
			advice = append(advice, "You exceeded your calorie limit. Prefer light meals and cardio.")
		} else {
			advice = append(advice, "You are on track with calories for weight loss.")
		}
	case models.GoalGain:
		if net < in.profile.TargetCalories {
			advice = append(advice, "Increase calories with protein-rich foods.")
		} else {
			advice = append(advice, "Good calorie intake for muscle gain.")
		}
	default:
		advice = append(advice, "Maintain balanced meals and regular activity.")
	}

	advice = append(advice, "Stay consistent. Small daily efforts give big results.")
	return advice
}

func containsExact(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsAnySubstring(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
