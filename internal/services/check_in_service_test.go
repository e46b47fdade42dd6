package services

import (
	"errors"
	"testing"
	"time"

	"vitalog/internal/models"
	"vitalog/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

func newCheckInServiceAt(repo *mocks.MockCheckInRepository, cache StreakCache, now time.Time) *CheckInService {
	service := NewCheckInService(repo, cache)
	service.now = func() time.Time { return now }
	return service
}

func checkInOn(date time.Time) models.CheckIn {
	return models.CheckIn{UserID: 1, CheckInDate: date, Mood: models.MoodGood}
}

func TestSaveCheckInValidation(t *testing.T) {
	tests := []struct {
		name            string
		mood            string
		sleepHours      float64
		waterIntake     int
		exerciseMinutes int
		expectedMsg     string
	}{
		{"bad mood", "meh", 8, 2000, 30, "mood must be one of: great, good, normal, bad, terrible"},
		{"negative sleep", "good", -1, 2000, 30, "sleep hours must be between 0 and 24"},
		{"sleep too high", "good", 24.5, 2000, 30, "sleep hours must be between 0 and 24"},
		{"water too high", "good", 8, 10001, 30, "water intake must be between 0 and 10000 ml"},
		{"negative exercise", "good", 8, 2000, -10, "exercise minutes must be between 0 and 1440"},
		{"exercise too high", "good", 8, 2000, 1441, "exercise minutes must be between 0 and 1440"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCheckInRepository)
			service := newCheckInServiceAt(repo, nil, fixedNow)

			result := service.SaveCheckIn(1, tt.mood, tt.sleepHours, tt.waterIntake, tt.exerciseMinutes, "")

			assert.False(t, result.Success)
			assert.Nil(t, result.CheckIn)
			assert.Equal(t, tt.expectedMsg, result.Message)
			repo.AssertNotCalled(t, "Create", mock.Anything)
			repo.AssertNotCalled(t, "Update", mock.Anything)
		})
	}
}

func TestSaveCheckInInsertsAndReportsStreak(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	service := newCheckInServiceAt(repo, nil, fixedNow)

	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	repo.On("FindByUserIDAndDate", uint(1), today).Return(nil, nil)
	repo.On("Create", mock.MatchedBy(func(ci *models.CheckIn) bool {
		return ci.UserID == 1 && ci.CheckInDate.Equal(today) && ci.Mood == "good"
	})).Return(nil)
	repo.On("FindAllByUserIDDateDesc", uint(1)).Return([]models.CheckIn{
		checkInOn(today),
		checkInOn(yesterday),
	}, nil)

	result := service.SaveCheckIn(1, "good", 7.5, 2000, 45, "morning run")

	assert.True(t, result.Success)
	assert.Equal(t, "Checked in successfully! 2 consecutive day(s)", result.Message)
	repo.AssertNotCalled(t, "Update", mock.Anything)
	repo.AssertExpectations(t)
}

func TestSaveCheckInOverwritesSameDay(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	service := newCheckInServiceAt(repo, nil, fixedNow)

	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	existing := &models.CheckIn{ID: 3, UserID: 1, CheckInDate: today, Mood: "bad"}

	repo.On("FindByUserIDAndDate", uint(1), today).Return(existing, nil)
	repo.On("Update", mock.MatchedBy(func(ci *models.CheckIn) bool {
		return ci.ID == 3 && ci.Mood == "great"
	})).Return(nil)
	repo.On("FindAllByUserIDDateDesc", uint(1)).Return([]models.CheckIn{checkInOn(today)}, nil)

	result := service.SaveCheckIn(1, "great", 8, 2500, 60, "")

	assert.True(t, result.Success)
	repo.AssertNotCalled(t, "Create", mock.Anything)
	repo.AssertExpectations(t)
}

func TestSaveCheckInStorageFailureIsANormalResult(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	service := newCheckInServiceAt(repo, nil, fixedNow)

	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	repo.On("FindByUserIDAndDate", uint(1), today).Return(nil, nil)
	repo.On("Create", mock.Anything).Return(errors.New("connection refused"))

	result := service.SaveCheckIn(1, "good", 8, 2000, 30, "")

	assert.False(t, result.Success)
	assert.Nil(t, result.CheckIn)
	assert.Equal(t, checkInSaveRetryMessage, result.Message)
}

func TestConsecutiveDays(t *testing.T) {
	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	tests := []struct {
		name     string
		history  []models.CheckIn
		expected int
	}{
		{"no history", []models.CheckIn{}, 0},
		{"today only", []models.CheckIn{checkInOn(day(0))}, 1},
		{"three consecutive days", []models.CheckIn{checkInOn(day(0)), checkInOn(day(-1)), checkInOn(day(-2))}, 3},
		{"gap after today", []models.CheckIn{checkInOn(day(0)), checkInOn(day(-3))}, 1},
		{"anchored at yesterday", []models.CheckIn{checkInOn(day(-1)), checkInOn(day(-2))}, 2},
		{"most recent too old", []models.CheckIn{checkInOn(day(-2)), checkInOn(day(-3))}, 0},
		{"run continues past a gap only up to it", []models.CheckIn{checkInOn(day(0)), checkInOn(day(-1)), checkInOn(day(-3))}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCheckInRepository)
			service := newCheckInServiceAt(repo, nil, fixedNow)

			repo.On("FindAllByUserIDDateDesc", uint(1)).Return(tt.history, nil)

			assert.Equal(t, tt.expected, service.ConsecutiveDays(1))
		})
	}
}

type fakeStreakCache struct {
	values map[uint]int
}

func newFakeStreakCache() *fakeStreakCache {
	return &fakeStreakCache{values: make(map[uint]int)}
}

func (c *fakeStreakCache) GetStreak(userID uint) (int, bool) {
	days, ok := c.values[userID]
	return days, ok
}

func (c *fakeStreakCache) SetStreak(userID uint, days int) {
	c.values[userID] = days
}

func (c *fakeStreakCache) InvalidateStreak(userID uint) {
	delete(c.values, userID)
}

func TestConsecutiveDaysServedFromCache(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	streakCache := newFakeStreakCache()
	streakCache.SetStreak(1, 5)
	service := newCheckInServiceAt(repo, streakCache, fixedNow)

	assert.Equal(t, 5, service.ConsecutiveDays(1))
	repo.AssertNotCalled(t, "FindAllByUserIDDateDesc", mock.Anything)
}

func TestSaveCheckInInvalidatesAndRepopulatesCache(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	streakCache := newFakeStreakCache()
	streakCache.SetStreak(1, 99)
	service := newCheckInServiceAt(repo, streakCache, fixedNow)

	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	repo.On("FindByUserIDAndDate", uint(1), today).Return(nil, nil)
	repo.On("Create", mock.Anything).Return(nil)
	repo.On("FindAllByUserIDDateDesc", uint(1)).Return([]models.CheckIn{checkInOn(today)}, nil)

	result := service.SaveCheckIn(1, "normal", 7, 1800, 20, "")

	assert.True(t, result.Success)
	assert.Equal(t, "Checked in successfully! 1 consecutive day(s)", result.Message)
	cached, ok := streakCache.GetStreak(1)
	assert.True(t, ok)
	assert.Equal(t, 1, cached)
}

func TestRecentCheckInsWindow(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	service := newCheckInServiceAt(repo, nil, fixedNow)

	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

	expected := []models.CheckIn{checkInOn(today), checkInOn(today.AddDate(0, 0, -2))}
	repo.On("FindByUserIDAndDateRange", uint(1), start, today).Return(expected, nil)

	checkIns, err := service.RecentCheckIns(1, 7)

	assert.NoError(t, err)
	assert.Equal(t, expected, checkIns)
	repo.AssertExpectations(t)
}

func TestStatisticsWindow(t *testing.T) {
	repo := new(mocks.MockCheckInRepository)
	service := newCheckInServiceAt(repo, nil, fixedNow)

	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

	repo.On("GetStatistics", uint(1), start, today).Return(&models.CheckInStatistics{
		CheckInCount:       4,
		AvgSleepHours:      7.2,
		AvgWaterIntake:     1900,
		AvgExerciseMinutes: 32,
		MoodCounts:         map[string]int{"good": 3, "bad": 1},
	}, nil)

	stats, err := service.Statistics(1, 7)

	assert.NoError(t, err)
	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, 4, stats.CheckInCount)
	assert.Equal(t, 3, stats.MoodCounts["good"])
	repo.AssertExpectations(t)
}

func TestHasCheckedInToday(t *testing.T) {
	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("checked in", func(t *testing.T) {
		repo := new(mocks.MockCheckInRepository)
		service := newCheckInServiceAt(repo, nil, fixedNow)
		existing := checkInOn(today)
		repo.On("FindByUserIDAndDate", uint(1), today).Return(&existing, nil)

		checked, err := service.HasCheckedInToday(1)
		assert.NoError(t, err)
		assert.True(t, checked)
	})

	t.Run("not checked in", func(t *testing.T) {
		repo := new(mocks.MockCheckInRepository)
		service := newCheckInServiceAt(repo, nil, fixedNow)
		repo.On("FindByUserIDAndDate", uint(1), today).Return(nil, nil)

		checked, err := service.HasCheckedInToday(1)
		assert.NoError(t, err)
		assert.False(t, checked)
	})
}
