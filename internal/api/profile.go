package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fittogether/backend/internal/middleware"
	"github.com/fittogether/backend/internal/service"
)

type QuizRequest struct {
	Age      int    `json:"age" binding:"required,gt=0"`
	HeightCM int    `json:"height_cm" binding:"required,gt=0"`
	WeightKG int    `json:"weight_kg" binding:"required,gt=0"`
	Goal     string `json:"goal" binding:"required,oneof=lose maintain gain"`
}

type UpdateAccountRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// maxPhotoBytes caps profile photo uploads at 5 MiB.
const maxPhotoBytes = 5 << 20

// ProfileHandler handles onboarding and account routes
type ProfileHandler struct {
	profileService *service.ProfileService
	authService    *service.AuthService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService, authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
	}
}

// RegisterRoutes registers the profile routes on an authenticated group
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/quiz", h.CompleteQuiz)
	router.GET("/plan", h.GetPlan)

	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateAccount)
		profile.DELETE("", h.DeleteAccount)
		profile.PUT("/password", h.ChangePassword)
		profile.POST("/photo", h.UploadPhoto)
		profile.GET("/photo", h.GetPhoto)
	}
}

// CompleteQuiz records the onboarding answers and fixes the targets.
func (h *ProfileHandler) CompleteQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profileService.CompleteQuiz(userID, req.Age, req.HeightCM, req.WeightKG, req.Goal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidQuizData):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete quiz"})
		}
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetPlan returns the fitness plan (profile with targets).
func (h *ProfileHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "complete the onboarding quiz first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get plan"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile returns the account plus the onboarding profile when present.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.profileService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	resp := gin.H{"user": user}
	if profile, err := h.profileService.GetProfile(userID); err == nil {
		resp["profile"] = profile
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAccount changes username and email.
func (h *ProfileHandler) UpdateAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.profileService.UpdateAccount(userID, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password before replacing it.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated successfully"})
}

// UploadPhoto stores a new profile photo.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file selected"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	if len(data) > maxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large"})
		return
	}

	url, err := h.profileService.UploadPhoto(c.Request.Context(), userID, data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image_url": url})
}

// GetPhoto returns a short-lived download link for the stored photo.
func (h *ProfileHandler) GetPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	url, err := h.profileService.PhotoDownloadURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoPhoto) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteAccount removes the user and all owned records.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteAccount(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// currentUserID pulls the authenticated user out of the gin context and
// answers 401 itself when the route somehow ran without AuthMiddleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return id, ok
}
