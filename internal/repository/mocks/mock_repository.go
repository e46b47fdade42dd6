package mocks

import (
	"time"

	"vitalog/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Authenticate(username, password string) (*models.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockHealthProfileRepository
type MockHealthProfileRepository struct {
	mock.Mock
}

func (m *MockHealthProfileRepository) Create(profile *models.HealthProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockHealthProfileRepository) Update(profile *models.HealthProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockHealthProfileRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockHealthProfileRepository) FindLatestByUserID(userID uint) (*models.HealthProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

func (m *MockHealthProfileRepository) FindAllByUserID(userID uint) ([]models.HealthProfile, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.HealthProfile), args.Error(1)
}

// Shared MockCheckInRepository
type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) Create(checkIn *models.CheckIn) error {
	args := m.Called(checkIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) Update(checkIn *models.CheckIn) error {
	args := m.Called(checkIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.CheckIn, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.CheckIn, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindAllByUserIDDateDesc(userID uint) ([]models.CheckIn, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) GetStatistics(userID uint, startDate, endDate time.Time) (*models.CheckInStatistics, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckInStatistics), args.Error(1)
}
