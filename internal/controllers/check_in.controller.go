package controllers

import (
	"net/http"
	"strconv"

	"vitalog/internal/services"

	"github.com/gin-gonic/gin"
)

type CheckInController struct {
	service *services.CheckInService
}

func NewCheckInController(service *services.CheckInService) *CheckInController {
	return &CheckInController{service: service}
}

type saveCheckInRequest struct {
	Mood            string  `json:"mood"`
	SleepHours      float64 `json:"sleep_hours"`
	WaterIntake     int     `json:"water_intake"`
	ExerciseMinutes int     `json:"exercise_minutes"`
	Notes           string  `json:"notes"`
}

// SaveCheckIn godoc
// @Summary Save today's check-in for the current user
// @Tags check-in
// @Accept json
// @Produce json
// @Router /check-in [post]
func (cc *CheckInController) SaveCheckIn(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req saveCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result := cc.service.SaveCheckIn(userID, req.Mood, req.SleepHours, req.WaterIntake, req.ExerciseMinutes, req.Notes)
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
		"data":    result.CheckIn,
	})
}

// GetTodayCheckIn godoc
// @Summary Get today's check-in, if any
// @Tags check-in
// @Produce json
// @Router /check-in/today [get]
func (cc *CheckInController) GetTodayCheckIn(c *gin.Context) {
	userID := c.GetUint("user_id")

	checkIn, err := cc.service.TodayCheckIn(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve today's check-in",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Today's check-in retrieved successfully",
		"data": gin.H{
			"checked_in": checkIn != nil,
			"check_in":   checkIn,
		},
	})
}

// GetStreak godoc
// @Summary Get the current consecutive-day check-in streak
// @Tags check-in
// @Produce json
// @Router /check-in/streak [get]
func (cc *CheckInController) GetStreak(c *gin.Context) {
	userID := c.GetUint("user_id")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Streak retrieved successfully",
		"data": gin.H{
			"consecutive_days": cc.service.ConsecutiveDays(userID),
		},
	})
}

// GetRecentCheckIns godoc
// @Summary List check-ins from the last N days
// @Tags check-in
// @Produce json
// @Param days query int false "Window size in days" default(7)
// @Router /check-in/recent [get]
func (cc *CheckInController) GetRecentCheckIns(c *gin.Context) {
	userID := c.GetUint("user_id")
	days := parseDays(c.DefaultQuery("days", "7"))

	checkIns, err := cc.service.RecentCheckIns(userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recent check-ins",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recent check-ins retrieved successfully",
		"data":    checkIns,
	})
}

// GetStatistics godoc
// @Summary Aggregate check-in statistics over the last N days
// @Tags check-in
// @Produce json
// @Param days query int false "Window size in days" default(7)
// @Router /check-in/statistics [get]
func (cc *CheckInController) GetStatistics(c *gin.Context) {
	userID := c.GetUint("user_id")
	days := parseDays(c.DefaultQuery("days", "7"))

	stats, err := cc.service.Statistics(userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve check-in statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Check-in statistics retrieved successfully",
		"data":    stats,
	})
}

func parseDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 7
	}
	return days
}
