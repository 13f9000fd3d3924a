package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fittogether/backend/config"
	"github.com/fittogether/backend/internal/models"
)

var (
	ErrQuizCompleted   = errors.New("onboarding quiz already completed")
	ErrInvalidQuizData = errors.New("age, height, and weight must be positive and goal must be lose, maintain, or gain")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoPhoto         = errors.New("no profile photo uploaded")
)

// ProfileService handles onboarding and account settings
type ProfileService struct {
	db *gorm.DB
	s3 *config.S3Config
}

// NewProfileService creates a new ProfileService instance. s3Config may be
// nil; photo upload then reports an error instead of storing anything.
func NewProfileService(db *gorm.DB, s3Config *config.S3Config) *ProfileService {
	return &ProfileService{
		db: db,
		s3: s3Config,
	}
}

// CompleteQuiz validates the quiz answers, computes the targets, and
// creates the one-and-only profile for the user. A second attempt fails
// with ErrQuizCompleted.
func (s *ProfileService) CompleteQuiz(userID uuid.UUID, age, heightCM, weightKG int, goal string) (*models.UserProfile, error) {
	if age <= 0 || heightCM <= 0 || weightKG <= 0 || !models.ValidGoal(goal) {
		return nil, ErrInvalidQuizData
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if user.QuizCompleted {
		return nil, ErrQuizCompleted
	}

	targetSteps, targetCalories := CalculateTargets(weightKG, goal)

	profile := models.UserProfile{
		UserID:         userID,
		Age:            age,
		HeightCM:       heightCM,
		WeightKG:       weightKG,
		Goal:           goal,
		TargetSteps:    targetSteps,
		TargetCalories: targetCalories,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("quiz_completed", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetUser retrieves the account record
func (s *ProfileService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAccount changes username and email, keeping email unique across
// other accounts.
func (s *ProfileService) UpdateAccount(userID uuid.UUID, username, email string) (*models.User, error) {
	var other models.User
	if err := s.db.Where("email = ? AND id <> ?", email, userID).First(&other).Error; err == nil {
		return nil, ErrEmailTaken
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = email
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadPhoto stores a profile photo in S3 and records its public URL on
// the user.
func (s *ProfileService) UploadPhoto(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	if s.s3 == nil {
		return "", errors.New("photo storage is not configured")
	}

	ext := "jpg"
	if parts := strings.Split(contentType, "/"); len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}
	key := fmt.Sprintf("profile-photos/%s/%s.%s", userID, uuid.New(), ext)

	_, err := s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	url := s.s3.ObjectURL(key)
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"profile_image_url": url,
			"photo_object_key":  key,
		}).Error; err != nil {
		return "", err
	}

	log.Printf("Uploaded profile photo for user %s: %s", userID, url)
	return url, nil
}

// PhotoDownloadURL returns a short-lived presigned link to the stored
// photo, for deployments where the bucket is not publicly readable.
func (s *ProfileService) PhotoDownloadURL(ctx context.Context, userID uuid.UUID) (string, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return "", err
	}
	if user.PhotoObjectKey == "" {
		return "", ErrNoPhoto
	}
	if s.s3 == nil {
		return "", errors.New("photo storage is not configured")
	}
	return s.s3.GeneratePresignedURL(ctx, user.PhotoObjectKey, 15*time.Minute)
}
