package models

import (
	"time"

	"gorm.io/gorm"
)

// One analyzed meal photo
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"` // FK → users.id
	ImageURL string    `gorm:"not null"`
	AteAt    time.Time `gorm:"index;not null"`

	Calories float64
	MealType string `gorm:"index"` // "breakfast"|"lunch"|"dinner"|"snack"
	Items    []FoodItem

	// Macronutrient breakdown, grams
	Protein float64
	Carbs   float64
	Fats    float64

	// Debt tracking for this meal, fixed at creation time
	ContributedToDebt float64
	WithinTarget      bool

	// AI analysis details
	AnalysisText string
	Confidence   string `gorm:"default:Medium"` // "High"|"Medium"|"Low"
	HealthNotes  string
}

// Each FoodItem is one recognized food with its portion snapshot
type FoodItem struct {
	gorm.Model
	MealID   uint `gorm:"index;not null"`
	Name     string
	Portion  string // e.g. "1 cup"
	Calories float64
}

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}
