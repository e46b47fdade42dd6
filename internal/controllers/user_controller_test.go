package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"vitalog/internal/controllers"
	"vitalog/internal/models"
	"vitalog/internal/repository/mocks"
	"vitalog/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupUserControllerWithMocks() (*controllers.UserController, *mocks.MockUserRepository) {
	mockUserRepo := new(mocks.MockUserRepository)
	service := services.NewUserAccountService(mockUserRepo)
	controller := controllers.NewUserController(service)
	return controller, mockUserRepo
}

func TestRegisterEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"username":         "valid_user1",
				"password":         "secret1",
				"confirm_password": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("UsernameExists", "valid_user1").Return(false, nil)
				userRepo.On("Create", mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Registration successful! Welcome to Vitalog",
		},
		{
			name: "username too short",
			requestBody: map[string]interface{}{
				"username":         "ab",
				"password":         "secret1",
				"confirm_password": "secret1",
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "username must be between 3 and 20 characters",
		},
		{
			name: "duplicate username",
			requestBody: map[string]interface{}{
				"username":         "valid_user1",
				"password":         "secret1",
				"confirm_password": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("UsernameExists", "valid_user1").Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username already exists, please choose another one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo := setupUserControllerWithMocks()
			tt.setupMocks(userRepo)

			router := setupUserTestRouter()
			router.POST("/users", controller.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
		checkToken     bool
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"username": "valid_user1",
				"password": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				user := &models.User{ID: 1, Username: "valid_user1", Password: "secret1"}
				userRepo.On("UsernameExists", "valid_user1").Return(true, nil)
				userRepo.On("Authenticate", "valid_user1", "secret1").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Login successful!",
			checkToken:     true,
		},
		{
			name: "unknown username",
			requestBody: map[string]interface{}{
				"username": "ghost",
				"password": "secret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("UsernameExists", "ghost").Return(false, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "User does not exist, check the username or register first",
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"username": "valid_user1",
				"password": "wrong",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("UsernameExists", "valid_user1").Return(true, nil)
				userRepo.On("Authenticate", "valid_user1", "wrong").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Incorrect password, please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo := setupUserControllerWithMocks()
			tt.setupMocks(userRepo)

			router := setupUserTestRouter()
			router.POST("/users/login", controller.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.checkToken {
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}
		})
	}
}
