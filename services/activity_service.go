package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Suchith04/Calorie-Catcher/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	db      *gorm.DB
	debtSvc *DebtService
	hub     *RealtimeHub
}

func NewActivityService(db *gorm.DB, debtSvc *DebtService, hub *RealtimeHub) *ActivityService {
	return &ActivityService{db: db, debtSvc: debtSvc, hub: hub}
}

// LogActivity records an exercise entry and repays calorie debt with the
// burned calories. DebtRepaid is stamped on the entry once, at creation.
func (s *ActivityService) LogActivity(userID uint, activityType string, duration int, caloriesBurned float64, notes string) (*models.Activity, float64, error) {
	if strings.TrimSpace(activityType) == "" {
		return nil, 0, fmt.Errorf("%w: activity type is required", ErrValidation)
	}
	if duration <= 0 {
		return nil, 0, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if caloriesBurned <= 0 {
		return nil, 0, fmt.Errorf("%w: calories burned must be positive", ErrValidation)
	}

	activity := models.Activity{
		UserID:         userID,
		ActivityType:   activityType,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
		DebtRepaid:     caloriesBurned,
		Notes:          notes,
		PerformedAt:    time.Now(),
	}
	if err := s.db.Create(&activity).Error; err != nil {
		return nil, 0, err
	}

	remaining, err := s.debtSvc.RepayDebt(userID, caloriesBurned)
	if err != nil {
		return nil, 0, err
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, "debt.updated", map[string]any{"totalDebt": remaining, "repaid": caloriesBurned})
	}

	return &activity, remaining, nil
}

func (s *ActivityService) ListActivities(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.
		Where("user_id = ?", userID).
		Order("performed_at DESC").
		Limit(20).
		Find(&activities).Error
	return activities, err
}
