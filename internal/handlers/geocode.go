package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
	"gorm.io/gorm"
)

// WorkshopLocation resolves a workshop's free-text location through the
// geocoding service and returns the raw result set.
func WorkshopLocation(ctx *gin.Context) {
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

	if workshop.Location == "" {
		ctx.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Workshop has no location"))
		return
	}

	results, err := geocodingClient.Geocode(ctx.Request.Context(), workshop.Location)

	if err != nil {
		log.Printf("Failed to geocode workshop %s: %v", workshopID, err)
		ctx.JSON(http.StatusBadGateway, types.NewError(types.ErrUpstream, "Failed to geocode workshop location"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"location": results})
}
