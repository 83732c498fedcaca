package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/auth"
	"github.com/workshophub-dev/workshophub/internal/calendar"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
	"github.com/workshophub-dev/workshophub/internal/utils"
	"gorm.io/gorm"
)

// GoogleAuthURL returns the consent URL for connecting the caller's
// Google Calendar. The caller's identity travels through the redirect
// as a signed state token, since Google's callback carries no bearer
// header.
func GoogleAuthURL(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	state, err := auth.GenerateStateToken(userID)

	if err != nil {
		log.Printf("Failed to generate state token: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": calendarService.AuthCodeURL(state)})
}

// OAuth2Callback exchanges the authorization code for tokens and stores
// them on the state token's user.
func OAuth2Callback(ctx *gin.Context) {
	code := ctx.Query("code")

	if code == "" {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Missing authorization code"))
		return
	}

	state := ctx.Query("state")

	if state == "" {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Missing state parameter"))
		return
	}

	userID, err := auth.VerifyStateToken(state)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrInvalidCredential, "Invalid or expired state parameter"))
		return
	}

	token, err := calendarService.Exchange(ctx.Request.Context(), code)

	if err != nil {
		log.Printf("Failed to exchange authorization code: %v", err)
		ctx.JSON(http.StatusBadGateway, types.NewError(types.ErrUpstream, "Failed to exchange authorization code"))
		return
	}

	raw, err := calendar.MarshalToken(token)

	if err != nil {
		log.Printf("Failed to serialize token: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	var credential models.CalendarCredential

	err = db.DB.Where("user_id = ?", userID).First(&credential).Error

	switch {
	case err == nil:
		credential.Token = raw
		err = db.DB.Save(&credential).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		credential = models.CalendarCredential{UserID: userID, Token: raw}
		err = db.DB.Create(&credential).Error
	}

	if err != nil {
		log.Printf("Failed to store calendar credential: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Google Calendar connected successfully!"})
}
