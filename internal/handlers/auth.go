package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/auth"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
	"github.com/workshophub-dev/workshophub/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name                    string `json:"name" binding:"required"`
	Email                   string `json:"email" binding:"required,email"`
	Password                string `json:"password" binding:"required,min=8"`
	Role                    string `json:"role" binding:"required,oneof=mentor learner"`
	NotificationPreferences *bool  `json:"notification_preferences"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid request"))
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", body.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Email already exists"))
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	notificationPreferences := true
	if body.NotificationPreferences != nil {
		notificationPreferences = *body.NotificationPreferences
	}

	newUser := models.User{
		Name:                    body.Name,
		Email:                   body.Email,
		PasswordHash:            string(passwordHash),
		Role:                    body.Role,
		NotificationPreferences: notificationPreferences,
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, newUser.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:                      newUser.ID,
			Name:                    newUser.Name,
			Email:                   newUser.Email,
			Role:                    newUser.Role,
			NotificationPreferences: newUser.NotificationPreferences,
		},
	})
}

func Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid request"))
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", body.Email).First(&existingUser).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid email or password"))
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(body.Password))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid email or password"))
		return
	}

	token, err := auth.GenerateJWT(existingUser.ID, existingUser.Email, existingUser.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:                      existingUser.ID,
			Name:                    existingUser.Name,
			Email:                   existingUser.Email,
			Role:                    existingUser.Role,
			NotificationPreferences: existingUser.NotificationPreferences,
		},
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:                      user.ID,
			Name:                    user.Name,
			Email:                   user.Email,
			Role:                    user.Role,
			NotificationPreferences: user.NotificationPreferences,
		},
	})
}
