package controllers

import (
	"net/http"
	"strconv"

	"vitalog/internal/middleware"
	"vitalog/internal/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserAccountService
}

func NewUserController(service *services.UserAccountService) *UserController {
	return &UserController{service: service}
}

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register godoc
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Router /users [post]
func (uc *UserController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result := uc.service.Register(req.Username, req.Password, req.ConfirmPassword)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": result.Message,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": result.Message,
		"data":    nil,
	})
}

// Login godoc
// @Summary Log in and receive a session token
// @Tags users
// @Accept json
// @Produce json
// @Router /users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result := uc.service.Login(req.Username, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": result.Message,
		})
		return
	}

	token, err := middleware.GenerateToken(result.User.ID, result.User.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue session token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": result.Message,
		"data": gin.H{
			"token": token,
			"user":  result.User,
		},
	})
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags users
// @Accept json
// @Produce json
// @Router /users/me/password [put]
func (uc *UserController) ChangePassword(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result := uc.service.ChangePassword(userID, req.OldPassword, req.NewPassword, req.ConfirmPassword)
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
		"data":    nil,
	})
}

// GetCurrentUser godoc
// @Summary Get the authenticated account
// @Tags users
// @Produce json
// @Router /users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := uc.service.UserInfo(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve user",
			"error":   err.Error(),
		})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// ListUsers godoc
// @Summary List all accounts
// @Tags users
// @Produce json
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.service.AllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve users",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags users
// @Produce json
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := uc.service.DeleteUser(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   "Database deletion failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
		"data":    nil,
	})
}

// GetStatistics godoc
// @Summary Aggregate account statistics
// @Tags users
// @Produce json
// @Router /users/statistics [get]
func (uc *UserController) GetStatistics(c *gin.Context) {
	stats, err := uc.service.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Statistics retrieved successfully",
		"data":    stats,
	})
}
