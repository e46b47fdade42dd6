package routes

import (
	"vitalog/internal/controllers"
	"vitalog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/", userController.Register)
		userRoutesPublic.POST("/login", userController.Login)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
		userRoutesPrivate.PUT("/me/password", userController.ChangePassword)
		userRoutesPrivate.GET("/", userController.ListUsers)
		userRoutesPrivate.GET("/statistics", userController.GetStatistics)
		userRoutesPrivate.DELETE("/:id", userController.DeleteUser)
	}
}
