package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitalog/internal/controllers"
	"vitalog/internal/models"
	"vitalog/internal/repository/mocks"
	"vitalog/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func addUserAuthStub(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func TestSaveCheckInEndpoint(t *testing.T) {
	t.Run("validation failure", func(t *testing.T) {
		repo := new(mocks.MockCheckInRepository)
		controller := controllers.NewCheckInController(services.NewCheckInService(repo, nil))

		router := setupUserTestRouter()
		router.POST("/check-in", addUserAuthStub(1), controller.SaveCheckIn)

		body, _ := json.Marshal(map[string]interface{}{
			"mood":        "meh",
			"sleep_hours": 8,
		})
		req := httptest.NewRequest(http.MethodPost, "/check-in", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "mood must be one of: great, good, normal, bad, terrible", response["message"])
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("successful check-in", func(t *testing.T) {
		repo := new(mocks.MockCheckInRepository)
		controller := controllers.NewCheckInController(services.NewCheckInService(repo, nil))

		repo.On("FindByUserIDAndDate", uint(1), mock.Anything).Return(nil, nil)
		repo.On("Create", mock.Anything).Return(nil)
		repo.On("FindAllByUserIDDateDesc", uint(1)).Return([]models.CheckIn{
			{UserID: 1, CheckInDate: today(), Mood: "good"},
		}, nil)

		router := setupUserTestRouter()
		router.POST("/check-in", addUserAuthStub(1), controller.SaveCheckIn)

		body, _ := json.Marshal(map[string]interface{}{
			"mood":             "good",
			"sleep_hours":      7.5,
			"water_intake":     2000,
			"exercise_minutes": 45,
			"notes":            "morning run",
		})
		req := httptest.NewRequest(http.MethodPost, "/check-in", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Checked in successfully! 1 consecutive day(s)", response["message"])
	})
}

func TestGetStreakEndpoint(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	controller := controllers.NewCheckInController(services.NewCheckInService(repo, nil))

	repo.On("FindAllByUserIDDateDesc", uint(1)).Return([]models.CheckIn{
		{UserID: 1, CheckInDate: today(), Mood: "good"},
		{UserID: 1, CheckInDate: today().AddDate(0, 0, -1), Mood: "normal"},
	}, nil)

	router := setupUserTestRouter()
	router.GET("/check-in/streak", addUserAuthStub(1), controller.GetStreak)

	req := httptest.NewRequest(http.MethodGet, "/check-in/streak", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["consecutive_days"])
}
