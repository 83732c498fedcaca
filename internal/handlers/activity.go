package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
	"github.com/workshophub-dev/workshophub/internal/utils"
	"gorm.io/gorm"
)

type CreateActivityRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	WorkshopID  uint      `json:"workshop_id" binding:"required"`
	DateTime    time.Time `json:"date_time" binding:"required"`
}

type UpdateActivityRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time" binding:"required"`
}

func activityResponse(activity models.Activity) types.ActivityResponse {
	return types.ActivityResponse{
		ID:          activity.ID,
		Title:       activity.Title,
		Description: activity.Description,
		WorkshopID:  activity.WorkshopID,
		DateTime:    activity.DateTime,
	}
}

func CreateActivity(ctx *gin.Context) {
	var body CreateActivityRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid request"))
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var workshop models.Workshop

	if err := db.DB.First(&workshop, body.WorkshopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Workshop does not exist"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to validate workshop"))
		}
		return
	}

	if workshop.MentorID != userID {
		ctx.JSON(http.StatusForbidden, types.NewError(types.ErrForbidden, "Workshop belongs to another mentor"))
		return
	}

	activity := models.Activity{
		Title:       body.Title,
		Description: body.Description,
		WorkshopID:  workshop.ID,
		DateTime:    body.DateTime,
	}

	if err := db.DB.Create(&activity).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to create activity"))
		return
	}

	ctx.JSON(http.StatusCreated, activityResponse(activity))
}

func ListActivities(ctx *gin.Context) {
	var activities []models.Activity

	query := db.DB

	if workshopID := ctx.Query("workshop_id"); workshopID != "" {
		query = query.Where("workshop_id = ?", workshopID)
	}

	if err := query.Find(&activities).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve activities"))
		return
	}

	response := make([]types.ActivityResponse, 0, len(activities))

	for _, activity := range activities {
		response = append(response, activityResponse(activity))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetActivity(ctx *gin.Context) {
	var activity models.Activity
	activityID := ctx.Param("id")

	if err := db.DB.Where("id = ?", activityID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Activity not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve activity"))
		}
		return
	}

	ctx.JSON(http.StatusOK, activityResponse(activity))
}

func UpdateActivity(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var body UpdateActivityRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid request"))
		return
	}

	var activity models.Activity
	activityID := ctx.Param("id")

	if err := db.DB.Preload("Workshop").Where("id = ?", activityID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Activity not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve activity"))
		}
		return
	}

	if activity.Workshop.MentorID != userID {
		ctx.JSON(http.StatusForbidden, types.NewError(types.ErrForbidden, "Workshop belongs to another mentor"))
		return
	}

	activity.Title = body.Title
	activity.Description = body.Description
	activity.DateTime = body.DateTime

	if err := db.DB.Save(&activity).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to update activity"))
		return
	}

	ctx.JSON(http.StatusOK, activityResponse(activity))
}

func DeleteActivity(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var activity models.Activity
	activityID := ctx.Param("id")

	if err := db.DB.Preload("Workshop").Where("id = ?", activityID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Activity not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve activity"))
		}
		return
	}

	if activity.Workshop.MentorID != userID {
		ctx.JSON(http.StatusForbidden, types.NewError(types.ErrForbidden, "Workshop belongs to another mentor"))
		return
	}

	if err := db.DB.Delete(&activity).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to delete activity"))
		return
	}

	ctx.Status(http.StatusNoContent)
}
