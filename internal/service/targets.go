package service

import (
	"github.com/fittogether/backend/internal/models"
)

// CalculateTargets derives daily step and calorie targets from body weight
// and goal. Base intake is weight x 30 kcal; losing trims 300 kcal and asks
// for more steps, gaining adds 400 kcal and asks for fewer. The goal must
// already be validated; unknown values fall through to maintain.
func CalculateTargets(weightKG int, goal string) (targetSteps, targetCalories int) {
	base := weightKG * 30

	switch goal {
	case models.GoalLose:
		return 10000, base - 300
	case models.GoalGain:
		return 7000, base + 400
	default: // maintain
		return 8000, base
	}
}
