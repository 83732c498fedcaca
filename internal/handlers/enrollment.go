package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
	"github.com/workshophub-dev/workshophub/internal/utils"
	"gorm.io/gorm"
)

type CreateEnrollmentRequest struct {
	WorkshopID uint `json:"workshop_id" binding:"required"`
}

func enrollmentResponse(enrollment models.Enrollment) types.EnrollmentResponse {
	return types.EnrollmentResponse{
		ID:         enrollment.ID,
		LearnerID:  enrollment.LearnerID,
		WorkshopID: enrollment.WorkshopID,
	}
}

func CreateEnrollment(ctx *gin.Context) {
	var body CreateEnrollmentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Invalid request"))
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var workshop models.Workshop

	if err := db.DB.Preload("Mentor").First(&workshop, body.WorkshopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Workshop does not exist"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to validate workshop"))
		}
		return
	}

	// Enrolling twice in the same workshop is allowed; existing clients
	// depend on the duplicate going through.
	enrollment := models.Enrollment{
		LearnerID:  currentUser.ID,
		WorkshopID: workshop.ID,
	}

	if err := db.DB.Create(&enrollment).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to create enrollment"))
		return
	}

	if workshop.Mentor.NotificationPreferences {
		BroadcastEnrollment(strconv.FormatUint(uint64(workshop.ID), 10), EnrollmentNotification{
			WorkshopID:  workshop.ID,
			LearnerID:   currentUser.ID,
			LearnerName: currentUser.Name,
		})
	}

	ctx.JSON(http.StatusCreated, enrollmentResponse(enrollment))
}

func ListEnrollments(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var enrollments []models.Enrollment

	if err := db.DB.Where("learner_id = ?", userID).Find(&enrollments).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve enrollments"))
		return
	}

	response := make([]types.EnrollmentResponse, 0, len(enrollments))

	for _, enrollment := range enrollments {
		response = append(response, enrollmentResponse(enrollment))
	}

	ctx.JSON(http.StatusOK, response)
}

func DeleteEnrollment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var enrollment models.Enrollment
	enrollmentID := ctx.Param("id")

	if err := db.DB.Where("id = ? AND learner_id = ?", enrollmentID, userID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Enrollment not found"))
		} else {
			ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve enrollment"))
		}
		return
	}

	if err := db.DB.Delete(&enrollment).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to delete enrollment"))
		return
	}

	ctx.Status(http.StatusNoContent)
}
