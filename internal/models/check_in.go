package models

import (
	"time"

	"gorm.io/gorm"
)

// Moods accepted on a daily check-in.
const (
	MoodGreat    = "great"
	MoodGood     = "good"
	MoodNormal   = "normal"
	MoodBad      = "bad"
	MoodTerrible = "terrible"
)

// CheckIn is one user's entry for one calendar day. The composite unique
// index enforces at most one row per (user, date); a second submission on
// the same day updates the existing row.
type CheckIn struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	UserID          uint           `gorm:"uniqueIndex:idx_user_check_in_date" json:"user_id" example:"1"`
	CheckInDate     time.Time      `gorm:"uniqueIndex:idx_user_check_in_date" json:"check_in_date" example:"2023-01-01"`
	Mood            string         `json:"mood" example:"good"`
	SleepHours      float64        `json:"sleep_hours" example:"7.5"`
	WaterIntake     int            `json:"water_intake" example:"2000"`
	ExerciseMinutes int            `json:"exercise_minutes" example:"45"`
	Notes           string         `json:"notes" example:"morning run"`
}

// CheckInStatistics aggregates check-ins over a trailing window of days.
// Days without a record are simply absent from the averages.
type CheckInStatistics struct {
	Days               int            `json:"days"`
	CheckInCount       int            `json:"check_in_count"`
	AvgSleepHours      float64        `json:"avg_sleep_hours"`
	AvgWaterIntake     float64        `json:"avg_water_intake"`
	AvgExerciseMinutes float64        `json:"avg_exercise_minutes"`
	MoodCounts         map[string]int `json:"mood_counts"`
}
