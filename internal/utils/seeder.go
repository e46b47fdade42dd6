package utils

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"vitalog/database"
	"vitalog/internal/models"
)

const DefaultNumUsers = 10

var seedMoods = []string{
	models.MoodGreat,
	models.MoodGood,
	models.MoodNormal,
	models.MoodBad,
	models.MoodTerrible,
}

var seedActivityLevels = []string{
	models.ActivitySedentary,
	models.ActivityLight,
	models.ActivityModerate,
	models.ActivityActive,
	models.ActivityVeryActive,
}

// SeedUsers creates numUsers demo accounts, each with a health profile and
// a run of daily check-ins ending today.
func SeedUsers(numUsers int) error {
	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Username: fmt.Sprintf("demo_user_%d", i),
			Password: "demo_password",
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %d: %v", i, err)
		}

		gender := models.GenderMale
		if i%2 == 0 {
			gender = models.GenderFemale
		}
		profile := models.HealthProfile{
			UserID:        user.ID,
			Weight:        55 + rand.Float64()*40,
			Height:        155 + rand.Float64()*35,
			Age:           20 + rand.Intn(40),
			Gender:        gender,
			ActivityLevel: seedActivityLevels[rand.Intn(len(seedActivityLevels))],
			TargetWeight:  60 + rand.Float64()*20,
		}
		if err := database.DB.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile for user %d: %v", user.ID, err)
		}

		if err := seedCheckIns(user.ID, 1+rand.Intn(14)); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo users with profiles and check-ins", numUsers)
	return nil
}

func seedCheckIns(userID uint, days int) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for d := 0; d < days; d++ {
		checkIn := models.CheckIn{
			UserID:          userID,
			CheckInDate:     today.AddDate(0, 0, -d),
			Mood:            seedMoods[rand.Intn(len(seedMoods))],
			SleepHours:      5 + rand.Float64()*4,
			WaterIntake:     1000 + rand.Intn(2000),
			ExerciseMinutes: rand.Intn(90),
			Notes:           "seeded entry",
		}
		if err := database.DB.Create(&checkIn).Error; err != nil {
			return fmt.Errorf("failed to seed check-in for user %d: %v", userID, err)
		}
	}
	return nil
}

// CleanupDemoUsers deletes seeded accounts along with their profiles and
// check-ins.
func CleanupDemoUsers() error {
	var users []models.User
	if err := database.DB.Where("username LIKE ?", "demo_user_%").Find(&users).Error; err != nil {
		return fmt.Errorf("failed to list demo users: %v", err)
	}

	for _, user := range users {
		if err := database.DB.Unscoped().Where("user_id = ?", user.ID).Delete(&models.CheckIn{}).Error; err != nil {
			return fmt.Errorf("failed to delete check-ins for user %d: %v", user.ID, err)
		}
		if err := database.DB.Unscoped().Where("user_id = ?", user.ID).Delete(&models.HealthProfile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profiles for user %d: %v", user.ID, err)
		}
		if err := database.DB.Unscoped().Delete(&models.User{}, user.ID).Error; err != nil {
			return fmt.Errorf("failed to delete user %d: %v", user.ID, err)
		}
	}

	log.Printf("Deleted %d demo users", len(users))
	return nil
}

func GetUserCount() (int64, error) {
	var count int64
	if err := database.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}
	return count, nil
}
