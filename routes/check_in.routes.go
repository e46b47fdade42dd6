package routes

import (
	"vitalog/internal/controllers"
	"vitalog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCheckInRoutes(router *gin.Engine, checkInController *controllers.CheckInController) {
	checkInRoutes := router.Group("/check-in")
	checkInRoutes.Use(middleware.AuthMiddleware())
	{
		checkInRoutes.POST("/", checkInController.SaveCheckIn)
		checkInRoutes.GET("/today", checkInController.GetTodayCheckIn)
		checkInRoutes.GET("/streak", checkInController.GetStreak)
		checkInRoutes.GET("/recent", checkInController.GetRecentCheckIns)
		checkInRoutes.GET("/statistics", checkInController.GetStatistics)
	}
}
