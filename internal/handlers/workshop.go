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

type CreateWorkshopRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	MentorID    uint      `json:"mentor_id"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"date_time" binding:"required"`
}

type UpdateWorkshopRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"date_time" binding:"required"`
}

func workshopResponse(workshop models.Workshop) types.WorkshopResponse {
	return types.WorkshopResponse{
		ID:          workshop.ID,
		Title:       workshop.Title,
		Description: workshop.Description,
		MentorID:    workshop.MentorID,
		Location:    workshop.Location,
		DateTime:    workshop.DateTime,
	}
}

func CreateWorkshop(ctx *gin.Context) {
	var body CreateWorkshopRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid request"))
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	// Default the owner to the caller; an explicit mentor_id must
	// reference an existing user with the mentor role.
	mentorID := body.MentorID
	if mentorID == 0 {
		mentorID = currentUser.ID
	}

	var mentor models.User

	if err := db.DB.First(&mentor, mentorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Mentor does not exist"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to validate mentor"))
		}
		return
	}

	if mentor.Role != types.RoleMentor {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Referenced user is not a mentor"))
		return
	}

	workshop := models.Workshop{
		Title:       body.Title,
		Description: body.Description,
		MentorID:    mentor.ID,
		Location:    body.Location,
		DateTime:    body.DateTime,
	}

	if err := db.DB.Create(&workshop).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to create workshop"))
		return
	}

	ctx.JSON(http.StatusCreated, workshopResponse(workshop))
}

func ListWorkshops(ctx *gin.Context) {
	var workshops []models.Workshop

	query := db.DB

	if mentorID := ctx.Query("mentor_id"); mentorID != "" {
		query = query.Where("mentor_id = ?", mentorID)
	}

	if err := query.Find(&workshops).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve workshops"))
		return
	}

	response := make([]types.WorkshopResponse, 0, len(workshops))

	for _, workshop := range workshops {
		response = append(response, workshopResponse(workshop))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetWorkshop(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, workshopResponse(workshop))
}

func UpdateWorkshop(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var body UpdateWorkshopRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid request"))
		return
	}

	var workshop models.Workshop
	workshopID := ctx.Param("id")

	if err := db.DB.Where("id = ? AND mentor_id = ?", workshopID, userID).First(&workshop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Workshop not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve workshop"))
		}
		return
	}

	workshop.Title = body.Title
	workshop.Description = body.Description
	workshop.Location = body.Location
	workshop.DateTime = body.DateTime

	if err := db.DB.Save(&workshop).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to update workshop"))
		return
	}

	ctx.JSON(http.StatusOK, workshopResponse(workshop))
}

func DeleteWorkshop(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var workshop models.Workshop
	workshopID := ctx.Param("id")

	if err := db.DB.Where("id = ? AND mentor_id = ?", workshopID, userID).First(&workshop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Workshop not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve workshop"))
		}
		return
	}

	// Activities and enrollments go with the workshop via FK cascade.
	if err := db.DB.Select("Activities", "Enrollments").Delete(&workshop).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to delete workshop"))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func ListWorkshopActivities(ctx *gin.Context) {
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

	var activities []models.Activity

	if err := db.DB.Where("workshop_id = ?", workshop.ID).Find(&activities).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve activities"))
		return
	}

	response := make([]types.ActivityResponse, 0, len(activities))

	for _, activity := range activities {
		response = append(response, activityResponse(activity))
	}

	ctx.JSON(http.StatusOK, response)
}
