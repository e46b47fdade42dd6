package repository

import (
	"errors"
	"time"

	"vitalog/internal/models"

	"gorm.io/gorm"
)

type CheckInRepository interface {
	Create(checkIn *models.CheckIn) error
	Update(checkIn *models.CheckIn) error
	FindByUserIDAndDate(userID uint, date time.Time) (*models.CheckIn, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.CheckIn, error)
	FindAllByUserIDDateDesc(userID uint) ([]models.CheckIn, error)
	GetStatistics(userID uint, startDate, endDate time.Time) (*models.CheckInStatistics, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db}
}

func (r *checkInRepository) Create(checkIn *models.CheckIn) error {
	return r.db.Create(checkIn).Error
}

func (r *checkInRepository) Update(checkIn *models.CheckIn) error {
	return r.db.Save(checkIn).Error
}

func (r *checkInRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := r.db.Where("user_id = ? AND check_in_date = ?", userID, date).First(&checkIn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

func (r *checkInRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := r.db.Where("user_id = ? AND check_in_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("check_in_date DESC").
		Find(&checkIns).Error
	return checkIns, err
}

func (r *checkInRepository) FindAllByUserIDDateDesc(userID uint) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := r.db.Where("user_id = ?", userID).
		Order("check_in_date DESC").
		Find(&checkIns).Error
	return checkIns, err
}

// GetStatistics aggregates check-ins in [startDate, endDate] inclusive.
// Days with no record contribute nothing to the averages.
func (r *checkInRepository) GetStatistics(userID uint, startDate, endDate time.Time) (*models.CheckInStatistics, error) {
	var row struct {
		CheckInCount       int
		AvgSleepHours      float64
		AvgWaterIntake     float64
		AvgExerciseMinutes float64
	}
	err := r.db.Model(&models.CheckIn{}).
		Select("COUNT(*) AS check_in_count, "+
			"COALESCE(AVG(sleep_hours), 0) AS avg_sleep_hours, "+
			"COALESCE(AVG(water_intake), 0) AS avg_water_intake, "+
			"COALESCE(AVG(exercise_minutes), 0) AS avg_exercise_minutes").
		Where("user_id = ? AND check_in_date BETWEEN ? AND ?", userID, startDate, endDate).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	var moodRows []struct {
		Mood  string
		Count int
	}
	err = r.db.Model(&models.CheckIn{}).
		Select("mood, COUNT(*) AS count").
		Where("user_id = ? AND check_in_date BETWEEN ? AND ?", userID, startDate, endDate).
		Group("mood").
		Scan(&moodRows).Error
	if err != nil {
		return nil, err
	}

	moodCounts := make(map[string]int, len(moodRows))
	for _, m := range moodRows {
		moodCounts[m.Mood] = m.Count
	}

	return &models.CheckInStatistics{
		CheckInCount:       row.CheckInCount,
		AvgSleepHours:      row.AvgSleepHours,
		AvgWaterIntake:     row.AvgWaterIntake,
		AvgExerciseMinutes: row.AvgExerciseMinutes,
		MoodCounts:         moodCounts,
	}, nil
}
