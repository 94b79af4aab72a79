package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	// Calorie debt system
	CalorieDebt        float64 `gorm:"default:0"`
	DailyCalorieTarget float64 `gorm:"default:2000"`

	// Sleep tracking
	LastSleepHours        float64 `gorm:"default:8"`
	AdjustedCalorieTarget float64 `gorm:"default:2000"`

	// Social penalties, owned by this user
	Penalties []Penalty

	// Streaks and gamification
	CurrentStreak int
	LongestStreak int
	TotalMeals    int
}
