package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Gender values accepted on a health profile.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Activity levels accepted on a health profile, in increasing order of
// daily energy expenditure.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// activityMultipliers maps an activity level to the factor applied to BMR
// when estimating total daily energy expenditure.
var activityMultipliers = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

type HealthProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	Weight        float64        `json:"weight" example:"70.5"`
	Height        float64        `json:"height" example:"175"`
	Age           int            `json:"age" example:"30"`
	Gender        string         `json:"gender" example:"M"`
	ActivityLevel string         `json:"activity_level" example:"moderate"`
	TargetWeight  float64        `json:"target_weight" example:"68"`
}

// BMI returns weight in kg divided by the square of height in meters.
func (p *HealthProfile) BMI() float64 {
	heightM := p.Height / 100
	return p.Weight / (heightM * heightM)
}

// BMICategory classifies the profile's BMI. Bands: <18.5 underweight,
// 18.5-23.9 normal, 24.0-27.9 overweight, >=28 obese.
func (p *HealthProfile) BMICategory() string {
	bmi := p.BMI()
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24:
		return "Normal"
	case bmi < 28:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR estimates the basal metabolic rate in kcal/day using the
// Mifflin-St Jeor equation.
func (p *HealthProfile) BMR() float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the profile's activity multiplier.
func (p *HealthProfile) TDEE() float64 {
	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[ActivitySedentary]
	}
	return p.BMR() * multiplier
}

// IdealWeightRange renders the weight band corresponding to a BMI of
// 18.5-24 at the profile's height.
func (p *HealthProfile) IdealWeightRange() string {
	heightM := p.Height / 100
	low := 18.5 * heightM * heightM
	high := 24 * heightM * heightM
	return fmt.Sprintf("%.1f - %.1f kg", low, high)
}

// WeightDifference returns current weight minus target weight. Positive
// means weight to lose, negative means weight to gain. Only meaningful
// when a target weight is set.
func (p *HealthProfile) WeightDifference() float64 {
	return p.Weight - p.TargetWeight
}

// ActivityLevelDescription returns a human-readable label for the
// profile's activity level.
func (p *HealthProfile) ActivityLevelDescription() string {
	switch p.ActivityLevel {
	case ActivitySedentary:
		return "Sedentary (desk job, little exercise)"
	case ActivityLight:
		return "Lightly active (exercise 1-3 times a week)"
	case ActivityModerate:
		return "Moderately active (exercise 3-5 times a week)"
	case ActivityActive:
		return "Very active (exercise 6-7 times a week)"
	case ActivityVeryActive:
		return "Extremely active (hard exercise every day)"
	default:
		return "Unknown"
	}
}
