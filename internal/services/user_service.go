package services

import (
	"regexp"
	"strings"

	"vitalog/internal/models"
	"vitalog/internal/repository"
)

const (
	registerSuccessMessage     = "Registration successful! Welcome to Vitalog"
	registerRetryMessage       = "Registration failed, please try again later"
	usernameTakenMessage       = "Username already exists, please choose another one"
	loginSuccessMessage        = "Login successful!"
	unknownUserMessage         = "User does not exist, check the username or register first"
	wrongPasswordMessage       = "Incorrect password, please try again"
	passwordChangedMessage     = "Password changed successfully!"
	passwordChangeRetryMessage = "Failed to change password, please try again later"
	wrongOldPasswordMessage    = "Old password is incorrect"
	userNotFoundMessage        = "User does not exist"
	loginUnavailableMessage    = "Login is temporarily unavailable, please try again later"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// AccountResult is the outcome of an account operation that carries no
// entity (registration, password change).
type AccountResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthResult is the outcome of a login attempt.
type AuthResult struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user,omitempty"`
	Message string       `json:"message"`
}

// UserStatistics is the aggregate view over all accounts.
type UserStatistics struct {
	TotalUsers int64         `json:"total_users"`
	Users      []models.User `json:"users"`
}

// UserAccountService manages registration, login, password changes and
// account administration.
type UserAccountService struct {
	users repository.UserRepository
}

func NewUserAccountService(users repository.UserRepository) *UserAccountService {
	return &UserAccountService{users: users}
}

// Register validates the submitted credentials and creates the account.
// The uniqueness check runs only after format validation passes, and a
// collision gets its own message distinct from format failures.
func (s *UserAccountService) Register(username, password, confirmPassword string) AccountResult {
	if msg := validateRegistrationInput(username, password, confirmPassword); msg != "" {
		return AccountResult{Success: false, Message: msg}
	}

	exists, err := s.users.UsernameExists(username)
	if err != nil {
		return AccountResult{Success: false, Message: registerRetryMessage}
	}
	if exists {
		return AccountResult{Success: false, Message: usernameTakenMessage}
	}

	user := &models.User{Username: username, Password: password}
	if err := s.users.Create(user); err != nil {
		return AccountResult{Success: false, Message: registerRetryMessage}
	}
	return AccountResult{Success: true, Message: registerSuccessMessage}
}

// Login checks the credentials in stages with a distinct message per
// failure: unknown username, then wrong password.
func (s *UserAccountService) Login(username, password string) AuthResult {
	if strings.TrimSpace(username) == "" {
		return AuthResult{Success: false, Message: "username cannot be empty"}
	}
	if strings.TrimSpace(password) == "" {
		return AuthResult{Success: false, Message: "password cannot be empty"}
	}

	exists, err := s.users.UsernameExists(username)
	if err != nil {
		return AuthResult{Success: false, Message: loginUnavailableMessage}
	}
	if !exists {
		return AuthResult{Success: false, Message: unknownUserMessage}
	}

	user, err := s.users.Authenticate(username, password)
	if err != nil {
		return AuthResult{Success: false, Message: loginUnavailableMessage}
	}
	if user == nil {
		return AuthResult{Success: false, Message: wrongPasswordMessage}
	}

	return AuthResult{Success: true, User: user, Message: loginSuccessMessage}
}

// ChangePassword verifies the old password before validating the new one,
// then persists the change.
func (s *UserAccountService) ChangePassword(userID uint, oldPassword, newPassword, confirmPassword string) AccountResult {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return AccountResult{Success: false, Message: passwordChangeRetryMessage}
	}
	if user == nil {
		return AccountResult{Success: false, Message: userNotFoundMessage}
	}

	if user.Password != oldPassword {
		return AccountResult{Success: false, Message: wrongOldPasswordMessage}
	}

	if msg := validatePasswordChange(newPassword, confirmPassword); msg != "" {
		return AccountResult{Success: false, Message: msg}
	}

	user.Password = newPassword
	if err := s.users.Update(user); err != nil {
		return AccountResult{Success: false, Message: passwordChangeRetryMessage}
	}
	return AccountResult{Success: true, Message: passwordChangedMessage}
}

// UserInfo returns the account, or (nil, nil) when it does not exist.
func (s *UserAccountService) UserInfo(userID uint) (*models.User, error) {
	return s.users.FindByID(userID)
}

func (s *UserAccountService) AllUsers() ([]models.User, error) {
	return s.users.FindAll()
}

func (s *UserAccountService) DeleteUser(userID uint) error {
	return s.users.Delete(userID)
}

// Statistics returns the total account count alongside the full listing.
func (s *UserAccountService) Statistics() (*UserStatistics, error) {
	total, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	return &UserStatistics{TotalUsers: total, Users: users}, nil
}

func validateRegistrationInput(username, password, confirmPassword string) string {
	if strings.TrimSpace(username) == "" {
		return "username cannot be empty"
	}
	if len(username) < 3 || len(username) > 20 {
		return "username must be between 3 and 20 characters"
	}
	if !usernamePattern.MatchString(username) {
		return "username may only contain letters, digits and underscores"
	}
	if strings.TrimSpace(password) == "" {
		return "password cannot be empty"
	}
	if len(password) < 6 {
		return "password must be at least 6 characters"
	}
	if password != confirmPassword {
		return "passwords do not match"
	}
	return ""
}

func validatePasswordChange(newPassword, confirmPassword string) string {
	if strings.TrimSpace(newPassword) == "" {
		return "new password cannot be empty"
	}
	if len(newPassword) < 6 {
		return "new password must be at least 6 characters"
	}
	if newPassword != confirmPassword {
		return "new passwords do not match"
	}
	return ""
}
