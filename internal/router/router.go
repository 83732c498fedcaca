package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/workshophub-dev/workshophub/internal/handlers"
	"github.com/workshophub-dev/workshophub/internal/middleware"
	"github.com/workshophub-dev/workshophub/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		auth.GET("/google", middleware.AuthMiddleware(), handlers.GoogleAuthURL)
	}

	// Google redirects here without a bearer header; identity rides in
	// the signed state parameter.
	r.GET("/oauth2callback", handlers.OAuth2Callback)

	workshops := r.Group("/workshops", middleware.AuthMiddleware())
	{
		workshops.POST("", middleware.RequireRole(types.RoleMentor), handlers.CreateWorkshop)
		workshops.GET("", handlers.ListWorkshops)
		workshops.GET("/:id", handlers.GetWorkshop)
		workshops.PUT("/:id", middleware.RequireRole(types.RoleMentor), handlers.UpdateWorkshop)
		workshops.DELETE("/:id", middleware.RequireRole(types.RoleMentor), handlers.DeleteWorkshop)
		workshops.GET("/:id/activities", handlers.ListWorkshopActivities)
		workshops.POST("/:id/add-to-calendar", handlers.AddWorkshopToCalendar)
		workshops.GET("/:id/location", handlers.WorkshopLocation)
	}

	activities := r.Group("/activities", middleware.AuthMiddleware())
	{
		activities.POST("", middleware.RequireRole(types.RoleMentor), handlers.CreateActivity)
		activities.GET("", handlers.ListActivities)
		activities.GET("/:id", handlers.GetActivity)
		activities.PUT("/:id", middleware.RequireRole(types.RoleMentor), handlers.UpdateActivity)
		activities.DELETE("/:id", middleware.RequireRole(types.RoleMentor), handlers.DeleteActivity)
		activities.POST("/:id/add-to-calendar", handlers.AddActivityToCalendar)
	}

	enrollments := r.Group("/enrollments", middleware.AuthMiddleware())
	{
		enrollments.POST("", middleware.RequireRole(types.RoleLearner), handlers.CreateEnrollment)
		enrollments.GET("", handlers.ListEnrollments)
		enrollments.DELETE("/:id", middleware.RequireRole(types.RoleLearner), handlers.DeleteEnrollment)
	}

	r.GET("/ws/workshops/:workshop_id", middleware.AuthMiddleware(), middleware.RequireRole(types.RoleMentor), handlers.WorkshopSocket)

	return r
}
