package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"vitalog/database"
	"vitalog/internal/cache"
	"vitalog/internal/controllers"
	"vitalog/internal/repository"
	"vitalog/internal/services"
	"vitalog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional: without it the streak is recomputed from history
	// on every request.
	var streakCache services.StreakCache
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Redis unavailable, streak caching disabled: %v", err)
	} else {
		defer redisClient.Close()
		streakCache = redisClient
		log.Println("Connected to Redis successfully")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewHealthProfileRepository(database.DB)
	checkInRepo := repository.NewCheckInRepository(database.DB)

	// Initialize services
	userService := services.NewUserAccountService(userRepo)
	profileService := services.NewHealthProfileService(profileRepo)
	checkInService := services.NewCheckInService(checkInRepo, streakCache)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	profileController := controllers.NewHealthProfileController(profileService)
	checkInController := controllers.NewCheckInController(checkInService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Vitalog API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterHealthProfileRoutes(router, profileController)
	routes.RegisterCheckInRoutes(router, checkInController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Vitalog API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
