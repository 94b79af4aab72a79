package services

import (
	"errors"
	"math"

	"github.com/Suchith04/Calorie-Catcher/models"

	"gorm.io/gorm"
)

type SleepService struct{ db *gorm.DB }

func NewSleepService(db *gorm.DB) *SleepService { return &SleepService{db: db} }

type SleepUpdate struct {
	SleepHours     float64 `json:"sleepHours"`
	SleepDeficit   float64 `json:"sleepDeficit"`
	OriginalTarget float64 `json:"originalTarget"`
	AdjustedTarget float64 `json:"adjustedTarget"`
	Adjustment     float64 `json:"adjustment"`
	Recommendation string  `json:"recommendation"`
}

// UpdateSleep records last night's sleep and recomputes the adjusted
// calorie target: 100 calories off the base target per hour short of 8.
// No floor is enforced; a low base target plus severe deprivation can
// drive the adjusted target negative.
func (s *SleepService) UpdateSleep(userID uint, sleepHours float64) (*SleepUpdate, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	const optimalSleep = 8
	deficit := math.Max(0, optimalSleep-sleepHours)
	adjustment := deficit * 100

	user.LastSleepHours = sleepHours
	user.AdjustedCalorieTarget = user.DailyCalorieTarget - adjustment
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &SleepUpdate{
		SleepHours:     sleepHours,
		SleepDeficit:   deficit,
		OriginalTarget: user.DailyCalorieTarget,
		AdjustedTarget: user.AdjustedCalorieTarget,
		Adjustment:     adjustment,
		Recommendation: sleepRecommendation(sleepHours),
	}, nil
}

func sleepRecommendation(sleepHours float64) string {
	switch {
	case sleepHours >= 8:
		return "Excellent! Your calorie target remains unchanged."
	case sleepHours >= 6:
		return "Moderate sleep deficit. Target reduced to help your recovery."
	case sleepHours >= 4:
		return "Significant sleep deficit. Focus on rest and lighter meals today."
	default:
		return "Severe sleep deficit. Priority should be rest. Calorie target heavily reduced."
	}
}

type SleepStats struct {
	LastSleepHours float64 `json:"lastSleepHours"`
	CurrentTarget  float64 `json:"currentTarget"`
	BaseTarget     float64 `json:"baseTarget"`
	IsAdjusted     bool    `json:"isAdjusted"`
	SleepQuality   string  `json:"sleepQuality"` // Good|Fair|Poor
}

func (s *SleepService) SleepStats(userID uint) (*SleepStats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	quality := "Poor"
	switch {
	case user.LastSleepHours >= 7:
		quality = "Good"
	case user.LastSleepHours >= 5:
		quality = "Fair"
	}

	return &SleepStats{
		LastSleepHours: user.LastSleepHours,
		CurrentTarget:  user.AdjustedCalorieTarget,
		BaseTarget:     user.DailyCalorieTarget,
		IsAdjusted:     user.AdjustedCalorieTarget != user.DailyCalorieTarget,
		SleepQuality:   quality,
	}, nil
}
