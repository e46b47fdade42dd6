package controllers

import (
	"net/http"

	"vitalog/internal/services"

	"github.com/gin-gonic/gin"
)

type HealthProfileController struct {
	service *services.HealthProfileService
}

func NewHealthProfileController(service *services.HealthProfileService) *HealthProfileController {
	return &HealthProfileController{service: service}
}

type saveProfileRequest struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	TargetWeight  float64 `json:"target_weight"`
}

// SaveProfile godoc
// @Summary Save the current user's health profile
// @Tags health-profile
// @Accept json
// @Produce json
// @Router /health-profile [post]
func (hc *HealthProfileController) SaveProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result := hc.service.SaveProfile(userID, req.Weight, req.Height, req.Age, req.Gender, req.ActivityLevel, req.TargetWeight)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": result.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": result.Message,
		"data":    result.Profile,
	})
}

// GetLatestProfile godoc
// @Summary Get the current user's latest health profile
// @Tags health-profile
// @Produce json
// @Router /health-profile [get]
func (hc *HealthProfileController) GetLatestProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	profile, err := hc.service.LatestProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve health profile",
			"error":   err.Error(),
		})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No health profile yet",
			"error":   "Submit a health profile first",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health profile retrieved successfully",
		"data":    profile,
	})
}

// GetProfileHistory godoc
// @Summary Get the current user's health profile history
// @Tags health-profile
// @Produce json
// @Router /health-profile/history [get]
func (hc *HealthProfileController) GetProfileHistory(c *gin.Context) {
	userID := c.GetUint("user_id")

	profiles, err := hc.service.ProfileHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve health profile history",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health profile history retrieved successfully",
		"data":    profiles,
	})
}

// GetHealthReport godoc
// @Summary Render the current user's health report as plain text
// @Tags health-profile
// @Produce plain
// @Router /health-profile/report [get]
func (hc *HealthProfileController) GetHealthReport(c *gin.Context) {
	userID := c.GetUint("user_id")

	report, err := hc.service.HealthReport(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to render health report",
			"error":   err.Error(),
		})
		return
	}

	c.String(http.StatusOK, report)
}
