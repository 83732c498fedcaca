package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/calendar"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
	"github.com/workshophub-dev/workshophub/internal/utils"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"gorm.io/gorm"
)

// loadCalendarToken fetches the caller's stored OAuth token, or writes
// the error response and returns nil.
func loadCalendarToken(ctx *gin.Context) *oauth2.Token {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return nil
	}

	var credential models.CalendarCredential

	if err := db.DB.Where("user_id = ?", userID).First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Google Calendar is not connected"))
		} else {
			log.Printf("Failed to load calendar credential: %v", err)
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		}
		return nil
	}

	token, err := calendar.UnmarshalToken(credential.Token)

	if err != nil {
		log.Printf("Failed to parse stored calendar credential: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Internal server error"))
		return nil
	}

	return token
}

func insertCalendarEvent(ctx *gin.Context, token *oauth2.Token, event *gcal.Event, message string) {
	created, err := calendarService.InsertEvent(ctx.Request.Context(), token, event)

	if err != nil {
		log.Printf("Failed to insert calendar event: %v", err)
		ctx.JSON(http.StatusBadGateway, types.NewError(types.ErrUpstream, "Failed to create calendar event"))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": message,
		"event":   created,
	})
}

func AddWorkshopToCalendar(ctx *gin.Context) {
	var workshop models.Workshop
	workshopID := ctx.Param("id")

	if err := db.DB.Where("id = ?", workshopID).First(&workshop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Workshop not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve workshop"))
		}
		return
	}

	token := loadCalendarToken(ctx)

	if token == nil {
		return
	}

	insertCalendarEvent(ctx, token, calendar.BuildWorkshopEvent(workshop), "Workshop added to Google Calendar")
}

func AddActivityToCalendar(ctx *gin.Context) {
	var activity models.Activity
	activityID := ctx.Param("id")

	// The event location comes from the parent workshop.
	if err := db.DB.Preload("Workshop").Where("id = ?", activityID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Activity not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve activity"))
		}
		return
	}

	token := loadCalendarToken(ctx)

	if token == nil {
		return
	}

	insertCalendarEvent(ctx, token, calendar.BuildActivityEvent(activity), "Activity added to Google Calendar")
}
