package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	ActivityType   string `gorm:"not null"`
	Duration       int    // minutes
	CaloriesBurned float64
	DebtRepaid     float64
	Notes          string
	PerformedAt    time.Time `gorm:"index"`
}
