package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Username        string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email           string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash    string         `gorm:"not null" json:"-"`
	ProfileImageURL string         `gorm:"size:255" json:"profile_image_url"`
	PhotoObjectKey  string         `gorm:"size:512" json:"-"`
	QuizCompleted   bool           `gorm:"not null;default:false" json:"quiz_completed"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Goal determines which target formula applies to a profile.
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// ValidGoal reports whether g is one of the three supported goals.
func ValidGoal(g string) bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

// UserProfile is created once, at quiz completion, and is immutable
// afterwards. Targets are fixed by the goal and weight at that point.
type UserProfile struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Age            int            `gorm:"not null" json:"age"`
	HeightCM       int            `gorm:"not null" json:"height_cm"`
	WeightKG       int            `gorm:"not null" json:"weight_kg"`
	Goal           string         `gorm:"size:20;not null" json:"goal"`
	TargetSteps    int            `gorm:"not null" json:"target_steps"`
	TargetCalories int            `gorm:"not null" json:"target_calories"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
