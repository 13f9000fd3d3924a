package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fittogether/backend/config"
	"github.com/fittogether/backend/internal/database"
	"github.com/fittogether/backend/internal/models"
	"github.com/fittogether/backend/internal/service"
)

// Seeds a set of demo accounts for local development: some fully
// onboarded with a week of metrics, some that never took the quiz.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	password := "testpassword123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	testUsers := []struct {
		username string
		email    string
		goal     string
		weightKG int
		onboard  bool
	}{
		{username: "johndoe", email: "john.doe@example.com", goal: models.GoalLose, weightKG: 90, onboard: true},
		{username: "janesmith", email: "jane.smith@example.com", goal: models.GoalGain, weightKG: 55, onboard: true},
		{username: "bobwilson", email: "bob.wilson@example.com", goal: models.GoalMaintain, weightKG: 75, onboard: true},
		{username: "newbie", email: "newbie@example.com", onboard: false},
	}

	metricsService := service.NewMetricsService(db)
	today := models.DateOf(time.Now())

	log.Println("Creating test users...")

	for _, userData := range testUsers {
		var existing models.User
		if err := db.Where("email = ?", userData.email).First(&existing).Error; err == nil {
			log.Printf("User %s already exists, skipping...", userData.email)
			continue
		}

		user := models.User{
			Username:      userData.username,
			Email:         userData.email,
			PasswordHash:  string(hashedPassword),
			QuizCompleted: userData.onboard,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", userData.email, err)
			continue
		}

		if !userData.onboard {
			log.Printf("Created user: %s (no quiz)", userData.username)
			continue
		}

		targetSteps, targetCalories := service.CalculateTargets(userData.weightKG, userData.goal)
		profile := models.UserProfile{
			UserID:         user.ID,
			Age:            30,
			HeightCM:       175,
			WeightKG:       userData.weightKG,
			Goal:           userData.goal,
			TargetSteps:    targetSteps,
			TargetCalories: targetCalories,
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("Failed to create profile for %s: %v", userData.email, err)
			continue
		}

		// A week of activity so streaks and growth charts have data.
		for offset := 0; offset < 7; offset++ {
			day := today.AddDate(0, 0, -offset)
			if _, err := metricsService.LogActivity(user.ID, day, "walking", 45, 180); err != nil {
				log.Printf("Failed to seed activity for %s: %v", userData.email, err)
				break
			}
			if _, err := metricsService.LogMeal(user.ID, day, 1900); err != nil {
				log.Printf("Failed to seed meal for %s: %v", userData.email, err)
				break
			}
		}

		log.Printf("Created user: %s (goal %s, %d kcal / %d steps)",
			userData.username, userData.goal, targetCalories, targetSteps)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	log.Printf("Total users: %d", count)
	log.Println("Password for all seeded accounts: " + password)
}
