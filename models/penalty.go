package models

import (
	"time"

	"gorm.io/gorm"
)

// Penalty is a consequence for a large single-day calorie overage.
// Lifecycle: pending → active → paid, or pending → paid directly.
// paid is terminal.
type Penalty struct {
	gorm.Model
	UserID uint `gorm:"index;not null"` // FK → users.id

	Date         time.Time
	CaloriesOver float64
	PenaltyType  string `gorm:"not null"` // "charity"|"social_media_lock"
	Status       string `gorm:"default:pending"`
	EndDate      *time.Time
	Amount       float64 // currency units, charity only
}

const (
	PenaltyCharity         = "charity"
	PenaltySocialMediaLock = "social_media_lock"

	PenaltyStatusPending = "pending"
	PenaltyStatusActive  = "active"
	PenaltyStatusPaid    = "paid"
)
