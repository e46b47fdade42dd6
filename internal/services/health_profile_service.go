package services

import (
	"fmt"
	"math"
	"strings"

	"vitalog/internal/models"
	"vitalog/internal/repository"
)

const (
	profileSavedMessage     = "Health profile saved successfully!"
	profileSaveRetryMessage = "Failed to save health profile, please try again later"
	noProfileReportMessage  = "No health data yet. Please complete your health profile first."
)

// ProfileResult is the outcome of a profile operation. Validation and
// storage failures are reported here, never as errors.
type ProfileResult struct {
	Success bool                  `json:"success"`
	Profile *models.HealthProfile `json:"profile,omitempty"`
	Message string                `json:"message"`
}

// HealthProfileService validates and upserts health profiles and renders
// the derived-metrics report.
type HealthProfileService struct {
	profiles repository.HealthProfileRepository
}

func NewHealthProfileService(profiles repository.HealthProfileRepository) *HealthProfileService {
	return &HealthProfileService{profiles: profiles}
}

// SaveProfile validates the submitted fields and upserts the user's
// current profile: if a profile already exists its identity is carried
// over and the row is updated, otherwise a new row is inserted.
func (s *HealthProfileService) SaveProfile(userID uint, weight, height float64, age int, gender, activityLevel string, targetWeight float64) ProfileResult {
	if msg := validateProfileInput(weight, height, age, gender, activityLevel, targetWeight); msg != "" {
		return ProfileResult{Success: false, Message: msg}
	}

	existing, err := s.profiles.FindLatestByUserID(userID)
	if err != nil {
		return ProfileResult{Success: false, Message: profileSaveRetryMessage}
	}

	profile := &models.HealthProfile{
		UserID:        userID,
		Weight:        weight,
		Height:        height,
		Age:           age,
		Gender:        gender,
		ActivityLevel: activityLevel,
		TargetWeight:  targetWeight,
	}

	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		err = s.profiles.Update(profile)
	} else {
		err = s.profiles.Create(profile)
	}
	if err != nil {
		return ProfileResult{Success: false, Message: profileSaveRetryMessage}
	}

	return ProfileResult{Success: true, Profile: profile, Message: profileSavedMessage}
}

// LatestProfile returns the user's current profile, or (nil, nil) when the
// user has not submitted one yet.
func (s *HealthProfileService) LatestProfile(userID uint) (*models.HealthProfile, error) {
	return s.profiles.FindLatestByUserID(userID)
}

// ProfileHistory returns all stored profiles for the user, newest first.
func (s *HealthProfileService) ProfileHistory(userID uint) ([]models.HealthProfile, error) {
	return s.profiles.FindAllByUserID(userID)
}

// HealthReport renders the user's report: basic info, derived metrics, the
// goal section when a target weight is set, and rule-based advice.
func (s *HealthProfileService) HealthReport(userID uint) (string, error) {
	profile, err := s.profiles.FindLatestByUserID(userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return noProfileReportMessage, nil
	}

	var report strings.Builder
	report.WriteString("=== Personal Health Report ===\n\n")

	report.WriteString("Basic Information:\n")
	fmt.Fprintf(&report, "  Height: %.1f cm\n", profile.Height)
	fmt.Fprintf(&report, "  Weight: %.1f kg\n", profile.Weight)
	fmt.Fprintf(&report, "  Age: %d\n", profile.Age)
	if profile.Gender == models.GenderMale {
		report.WriteString("  Gender: Male\n")
	} else {
		report.WriteString("  Gender: Female\n")
	}
	fmt.Fprintf(&report, "  Activity Level: %s\n\n", profile.ActivityLevelDescription())

	report.WriteString("Health Metrics:\n")
	fmt.Fprintf(&report, "  BMI: %.1f (%s)\n", profile.BMI(), profile.BMICategory())
	fmt.Fprintf(&report, "  BMR: %.0f kcal/day\n", profile.BMR())
	fmt.Fprintf(&report, "  TDEE: %.0f kcal/day\n", profile.TDEE())
	fmt.Fprintf(&report, "  Ideal Weight Range: %s\n\n", profile.IdealWeightRange())

	if profile.TargetWeight > 0 {
		diff := profile.WeightDifference()
		report.WriteString("Weight Goal:\n")
		switch {
		case math.Abs(diff) < 0.5:
			report.WriteString("  Congratulations! You have reached your target weight\n")
		case diff > 0:
			fmt.Fprintf(&report, "  Weight to lose: %.1f kg\n", diff)
		default:
			fmt.Fprintf(&report, "  Weight to gain: %.1f kg\n", math.Abs(diff))
		}
		report.WriteString("\n")
	}

	report.WriteString("Health Advice:\n")
	report.WriteString(healthAdvice(profile))

	report.WriteString("==============================")
	return report.String(), nil
}

func healthAdvice(profile *models.HealthProfile) string {
	var advice strings.Builder
	bmi := profile.BMI()

	if bmi < 18.5 {
		advice.WriteString("  - Your BMI is on the low side, try to increase nutrition intake\n")
		advice.WriteString("  - Consider asking a nutritionist for a weight gain plan\n")
	} else if bmi >= 28 {
		advice.WriteString("  - Your BMI is high, watch your diet and increase cardio exercise\n")
		advice.WriteString("  - Aim for at least 30 minutes of aerobic exercise every day\n")
		advice.WriteString("  - Cut back on high-calorie foods\n")
	} else {
		advice.WriteString("  - Your BMI is normal, keep up the healthy lifestyle\n")
	}

	fmt.Fprintf(&advice, "  - Eat around %.0f kcal per day to maintain your current weight\n", profile.TDEE())

	advice.WriteString("  - Keep a regular daily routine\n")
	advice.WriteString("  - Get enough sleep every night (7-8 hours)\n")
	advice.WriteString("  - Exercise in moderation, at least 150 minutes per week at moderate intensity\n")
	advice.WriteString("  - Drink plenty of water, at least 1500-2000 ml per day\n")
	advice.WriteString("  - Monitor your weight and health metrics regularly\n")

	return advice.String()
}

// validateProfileInput applies the profile rules in order and returns the
// first violation's message, or "" when everything passes.
func validateProfileInput(weight, height float64, age int, gender, activityLevel string, targetWeight float64) string {
	if weight <= 0 || weight > 300 {
		return "weight must be between 0 and 300 kg"
	}
	if height <= 0 || height > 250 {
		return "height must be between 0 and 250 cm"
	}
	if age <= 0 || age > 150 {
		return "age must be between 0 and 150"
	}
	if gender != models.GenderMale && gender != models.GenderFemale {
		return "gender must be M or F"
	}
	if !isValidActivityLevel(activityLevel) {
		return "activity level must be one of: sedentary, light, moderate, active, very_active"
	}
	if targetWeight < 0 || targetWeight > 300 {
		return "target weight must be between 0 and 300 kg"
	}
	return ""
}

var validActivityLevels = []string{
	models.ActivitySedentary,
	models.ActivityLight,
	models.ActivityModerate,
	models.ActivityActive,
	models.ActivityVeryActive,
}

func isValidActivityLevel(level string) bool {
	for _, valid := range validActivityLevels {
		if level == valid {
			return true
		}
	}
	return false
}
