package routes

import (
	"vitalog/internal/controllers"
	"vitalog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterHealthProfileRoutes(router *gin.Engine, profileController *controllers.HealthProfileController) {
	profileRoutes := router.Group("/health-profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.POST("/", profileController.SaveProfile)
		profileRoutes.GET("/", profileController.GetLatestProfile)
		profileRoutes.GET("/history", profileController.GetProfileHistory)
		profileRoutes.GET("/report", profileController.GetHealthReport)
	}
}
