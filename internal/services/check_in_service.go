package services

import (
	"fmt"
	"time"

	"vitalog/internal/models"
	"vitalog/internal/repository"
)

const checkInSaveRetryMessage = "Failed to save check-in, please try again later"

// CheckInResult is the outcome of a check-in save. Validation and storage
// failures are reported here, never as errors.
type CheckInResult struct {
	Success bool            `json:"success"`
	CheckIn *models.CheckIn `json:"check_in,omitempty"`
	Message string          `json:"message"`
}

// StreakCache caches the computed consecutive-day streak per user. The
// cached value is anchored to the day it was computed, so implementations
// must not serve it past midnight.
type StreakCache interface {
	GetStreak(userID uint) (int, bool)
	SetStreak(userID uint, days int)
	InvalidateStreak(userID uint)
}

// CheckInService validates and upserts daily check-ins and derives the
// consecutive-day streak from the stored history.
type CheckInService struct {
	checkIns repository.CheckInRepository
	cache    StreakCache

	// now is the clock used to resolve "today"; swapped out in tests.
	now func() time.Time
}

// NewCheckInService creates a CheckInService. cache may be nil, in which
// case the streak is recomputed from history on every request.
func NewCheckInService(checkIns repository.CheckInRepository, cache StreakCache) *CheckInService {
	return &CheckInService{checkIns: checkIns, cache: cache, now: time.Now}
}

// SaveCheckIn validates the submitted fields and upserts the entry for
// (user, today). On success the recomputed streak is embedded in the
// confirmation message.
func (s *CheckInService) SaveCheckIn(userID uint, mood string, sleepHours float64, waterIntake, exerciseMinutes int, notes string) CheckInResult {
	if msg := validateCheckInInput(mood, sleepHours, waterIntake, exerciseMinutes); msg != "" {
		return CheckInResult{Success: false, Message: msg}
	}

	today := dateOnly(s.now())
	existing, err := s.checkIns.FindByUserIDAndDate(userID, today)
	if err != nil {
		return CheckInResult{Success: false, Message: checkInSaveRetryMessage}
	}

	checkIn := &models.CheckIn{
		UserID:          userID,
		CheckInDate:     today,
		Mood:            mood,
		SleepHours:      sleepHours,
		WaterIntake:     waterIntake,
		ExerciseMinutes: exerciseMinutes,
		Notes:           notes,
	}

	if existing != nil {
		checkIn.ID = existing.ID
		checkIn.CreatedAt = existing.CreatedAt
		err = s.checkIns.Update(checkIn)
	} else {
		err = s.checkIns.Create(checkIn)
	}
	if err != nil {
		return CheckInResult{Success: false, Message: checkInSaveRetryMessage}
	}

	if s.cache != nil {
		s.cache.InvalidateStreak(userID)
	}
	streak := s.ConsecutiveDays(userID)
	message := fmt.Sprintf("Checked in successfully! %d consecutive day(s)", streak)
	return CheckInResult{Success: true, CheckIn: checkIn, Message: message}
}

// TodayCheckIn returns today's entry, or (nil, nil) when the user has not
// checked in yet today.
func (s *CheckInService) TodayCheckIn(userID uint) (*models.CheckIn, error) {
	return s.checkIns.FindByUserIDAndDate(userID, dateOnly(s.now()))
}

func (s *CheckInService) HasCheckedInToday(userID uint) (bool, error) {
	checkIn, err := s.TodayCheckIn(userID)
	return checkIn != nil, err
}

// RecentCheckIns returns entries in the window [today-days+1, today],
// newest first. Missing days are not filled in.
func (s *CheckInService) RecentCheckIns(userID uint, days int) ([]models.CheckIn, error) {
	today := dateOnly(s.now())
	start := today.AddDate(0, 0, -(days - 1))
	return s.checkIns.FindByUserIDAndDateRange(userID, start, today)
}

// Statistics aggregates sleep, water, exercise and mood over the window
// [today-days+1, today].
func (s *CheckInService) Statistics(userID uint, days int) (*models.CheckInStatistics, error) {
	today := dateOnly(s.now())
	start := today.AddDate(0, 0, -(days - 1))
	stats, err := s.checkIns.GetStatistics(userID, start, today)
	if err != nil {
		return nil, err
	}
	stats.Days = days
	return stats, nil
}

// ConsecutiveDays counts the unbroken run of daily check-ins anchored at
// today or yesterday. A most recent record older than yesterday means the
// streak is broken and the count is 0.
func (s *CheckInService) ConsecutiveDays(userID uint) int {
	if s.cache != nil {
		if days, ok := s.cache.GetStreak(userID); ok {
			return days
		}
	}

	history, err := s.checkIns.FindAllByUserIDDateDesc(userID)
	if err != nil || len(history) == 0 {
		return 0
	}

	today := dateOnly(s.now())
	latest := dateOnly(history[0].CheckInDate)
	if latest.Before(today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	prev := latest
	for _, checkIn := range history[1:] {
		date := dateOnly(checkIn.CheckInDate)
		if !date.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = date
	}

	if s.cache != nil {
		s.cache.SetStreak(userID, streak)
	}
	return streak
}

// validateCheckInInput applies the check-in rules in order and returns the
// first violation's message, or "" when everything passes.
func validateCheckInInput(mood string, sleepHours float64, waterIntake, exerciseMinutes int) string {
	if !isValidMood(mood) {
		return "mood must be one of: great, good, normal, bad, terrible"
	}
	if sleepHours < 0 || sleepHours > 24 {
		return "sleep hours must be between 0 and 24"
	}
	if waterIntake < 0 || waterIntake > 10000 {
		return "water intake must be between 0 and 10000 ml"
	}
	if exerciseMinutes < 0 || exerciseMinutes > 1440 {
		return "exercise minutes must be between 0 and 1440"
	}
	return ""
}

var validMoods = []string{
	models.MoodGreat,
	models.MoodGood,
	models.MoodNormal,
	models.MoodBad,
	models.MoodTerrible,
}

func isValidMood(mood string) bool {
	for _, valid := range validMoods {
		if mood == valid {
			return true
		}
	}
	return false
}

// dateOnly truncates a timestamp to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
